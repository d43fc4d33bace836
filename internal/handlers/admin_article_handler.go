package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/dto"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/services"
	"github.com/wifgroup/todaysus-backend/internal/utils"
)

func (h *Handler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	in := models.ArticleInput{
		Title:          req.Title,
		Excerpt:        req.Excerpt,
		ContentHTML:    req.ContentHTML,
		FeaturedImage:  req.FeaturedImage,
		ImageCaption:   req.ImageCaption,
		Type:           req.Type,
		Status:         req.Status,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Author:         req.Author,
		Category:       req.Category,
		Topics:         req.Topics,
		IsFeatured:     req.IsFeatured,
	}
	if req.PublishedAt != "" {
		t, ok := models.ParseFlexible(req.PublishedAt)
		if !ok {
			utils.ErrorResponse(c, 400, "invalid published_at date")
			return
		}
		in.PublishedAt = &models.Timestamp{Time: t}
	}

	article, err := h.Articles.Create(c.Request.Context(), in)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.CreatedResponse(c, article)
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	edit := services.ArticleEdit{
		Title:          req.Title,
		Excerpt:        req.Excerpt,
		ContentHTML:    req.ContentHTML,
		FeaturedImage:  req.FeaturedImage,
		ImageCaption:   req.ImageCaption,
		Type:           req.Type,
		Status:         req.Status,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Author:         req.Author,
		Category:       req.Category,
		Topics:         req.Topics,
		IsFeatured:     req.IsFeatured,
		UpdateNote:     req.UpdateNote,
	}
	if req.PublishedAt != nil {
		t, ok := models.ParseFlexible(*req.PublishedAt)
		if !ok {
			utils.ErrorResponse(c, 400, "invalid published_at date")
			return
		}
		edit.PublishedAt = &models.Timestamp{Time: t}
	}

	if err := h.Articles.Edit(c.Request.Context(), c.Param("id"), edit); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "article updated"})
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	if err := h.Articles.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "article deleted"})
}

// AdminListArticles lists non-deleted articles of every status, optionally
// narrowed with ?status=draft|published.
func (h *Handler) AdminListArticles(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != models.StatusDraft && status != models.StatusPublished {
		utils.ErrorResponse(c, 400, "invalid status filter")
		return
	}

	articles, err := h.Queries.AdminList(c.Request.Context(), status)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": articles, "total": len(articles)})
}

// CreateSearchIndex provisions the weighted text index. Safe to repeat.
func (h *Handler) CreateSearchIndex(c *gin.Context) {
	if err := h.Articles.EnsureSearchIndex(c.Request.Context()); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "search index ready"})
}
