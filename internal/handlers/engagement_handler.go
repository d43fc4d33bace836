package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/dto"
	"github.com/wifgroup/todaysus-backend/internal/services"
	"github.com/wifgroup/todaysus-backend/internal/utils"
)

// Subscribe registers a newsletter address. Repeat submissions are
// acknowledged rather than rejected so the form never leaks who is already
// on the list.
func (h *Handler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	outcome, err := h.Subscribers.Subscribe(c.Request.Context(), req.Email, req.Source, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		utils.FromError(c, err)
		return
	}

	switch outcome {
	case services.Subscribed:
		utils.CreatedResponse(c, gin.H{"message": "subscribed"})
	case services.Reactivated:
		utils.SuccessResponse(c, gin.H{"message": "subscription reactivated"})
	default:
		utils.SuccessResponse(c, gin.H{"message": "already subscribed"})
	}
}

func (h *Handler) AdminListSubscribers(c *gin.Context) {
	subs, err := h.Subscribers.List(c.Request.Context())
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": subs, "total": len(subs)})
}

func (h *Handler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	err := h.Contacts.Submit(c.Request.Context(), req.Name, req.Email, req.Message, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.CreatedResponse(c, gin.H{"message": "message received"})
}

func (h *Handler) AdminListContactMessages(c *gin.Context) {
	messages, err := h.Contacts.List(c.Request.Context())
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": messages, "total": len(messages)})
}

func (h *Handler) UpdateContactStatus(c *gin.Context) {
	var req dto.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	if err := h.Contacts.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "message updated"})
}
