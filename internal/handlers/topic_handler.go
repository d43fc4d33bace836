package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/dto"
	"github.com/wifgroup/todaysus-backend/internal/repository"
	"github.com/wifgroup/todaysus-backend/internal/utils"
)

func (h *Handler) ListTopics(c *gin.Context) {
	topics, err := h.Topics.List(c.Request.Context(), true)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": topics})
}

// TrendingTopics serves the cached top-N topics by published article volume.
func (h *Handler) TrendingTopics(c *gin.Context) {
	trends, err := h.Sitemaps.TrendingTopics(c.Request.Context(), getLimit(c, 10))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": trends})
}

func (h *Handler) AdminListTopics(c *gin.Context) {
	topics, err := h.Topics.List(c.Request.Context(), false)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": topics, "total": len(topics)})
}

func (h *Handler) UpdateTopic(c *gin.Context) {
	var req dto.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	upd := repository.TopicUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}

	if err := h.Topics.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "topic updated"})
}

func (h *Handler) DisableTopic(c *gin.Context) {
	if err := h.Topics.Disable(c.Request.Context(), c.Param("id")); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "topic disabled"})
}
