package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/dto"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
	"github.com/wifgroup/todaysus-backend/internal/utils"
)

// ListCategories serves the public navigation: active categories in display
// order.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context(), true)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": categories})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	category, err := h.Categories.Create(c.Request.Context(), models.CategoryInput{
		Name:           req.Name,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Order:          req.Order,
		IsActive:       req.IsActive,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.CreatedResponse(c, category)
}

func (h *Handler) AdminListCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context(), false)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": categories, "total": len(categories)})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	upd := repository.CategoryUpdate{
		Name:           req.Name,
		Description:    req.Description,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Order:          req.Order,
		IsActive:       req.IsActive,
	}

	if err := h.Categories.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "category updated"})
}

func (h *Handler) DisableCategory(c *gin.Context) {
	if err := h.Categories.Disable(c.Request.Context(), c.Param("id")); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "category disabled"})
}
