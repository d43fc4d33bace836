package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/utils"
)

// SitemapFeed serves the full URL inventory the frontend renders into
// sitemap XML.
func (h *Handler) SitemapFeed(c *gin.Context) {
	snapshot, err := h.Sitemaps.Snapshot(c.Request.Context())
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, snapshot)
}

// NewsSitemapFeed serves the Google-News window: last seven days, capped.
func (h *Handler) NewsSitemapFeed(c *gin.Context) {
	entries, err := h.Sitemaps.NewsSnapshot(c.Request.Context())
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": entries})
}
