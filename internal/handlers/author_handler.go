package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/dto"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
	"github.com/wifgroup/todaysus-backend/internal/utils"
)

func (h *Handler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	author, err := h.Authors.Create(c.Request.Context(), models.AuthorInput{
		Slug:            req.Slug,
		Name:            req.Name,
		DisplayName:     req.DisplayName,
		Role:            req.Role,
		Type:            req.Type,
		Bio:             req.Bio,
		ShortBio:        req.ShortBio,
		Expertise:       req.Expertise,
		Education:       req.Education,
		ExperienceYears: req.ExperienceYears,
		Credentials:     req.Credentials,
		Email:           req.Email,
		Social:          req.Social,
		Photo:           req.Photo,
		SEOTitle:        req.SEOTitle,
		SEODescription:  req.SEODescription,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.CreatedResponse(c, author)
}

func (h *Handler) AdminListAuthors(c *gin.Context) {
	authors, err := h.Authors.List(c.Request.Context())
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": authors, "total": len(authors)})
}

func (h *Handler) AdminGetAuthor(c *gin.Context) {
	author, err := h.Authors.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, author)
}

func (h *Handler) UpdateAuthor(c *gin.Context) {
	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	upd := repository.AuthorUpdate{
		Name:            req.Name,
		DisplayName:     req.DisplayName,
		Role:            req.Role,
		Type:            req.Type,
		Bio:             req.Bio,
		ShortBio:        req.ShortBio,
		Expertise:       req.Expertise,
		Education:       req.Education,
		ExperienceYears: req.ExperienceYears,
		Credentials:     req.Credentials,
		Email:           req.Email,
		Social:          req.Social,
		Photo:           req.Photo,
		SEOTitle:        req.SEOTitle,
		SEODescription:  req.SEODescription,
		IsActive:        req.IsActive,
		IsVerified:      req.IsVerified,
		IsPublic:        req.IsPublic,
	}

	if err := h.Authors.Update(c.Request.Context(), c.Param("slug"), upd); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "author updated"})
}

func (h *Handler) DeactivateAuthor(c *gin.Context) {
	if err := h.Authors.Deactivate(c.Request.Context(), c.Param("slug")); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "author deactivated"})
}
