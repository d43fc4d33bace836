package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/dto"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
	"github.com/wifgroup/todaysus-backend/internal/utils"
)

// GetPage serves an active static page with its full content blocks.
func (h *Handler) GetPage(c *gin.Context) {
	page, err := h.Pages.GetActive(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, page)
}

func (h *Handler) CreatePage(c *gin.Context) {
	var req dto.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	page, err := h.Pages.Create(c.Request.Context(), models.PageInput{
		Slug:           req.Slug,
		Title:          req.Title,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Content:        req.Content,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.CreatedResponse(c, page)
}

// AdminListPages lists page metadata without the content blocks.
func (h *Handler) AdminListPages(c *gin.Context) {
	pages, err := h.Pages.List(c.Request.Context())
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": pages, "total": len(pages)})
}

func (h *Handler) UpdatePage(c *gin.Context) {
	var req dto.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	upd := repository.PageUpdate{
		Title:          req.Title,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Content:        req.Content,
		IsActive:       req.IsActive,
	}

	if err := h.Pages.Update(c.Request.Context(), c.Param("slug"), upd); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "page updated"})
}
