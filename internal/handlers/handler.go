package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/services"
	"github.com/wifgroup/todaysus-backend/internal/utils"
)

const maxPageSize = 50

// Handler carries the service set behind every route.
type Handler struct {
	Articles    *services.ArticleService
	Queries     *services.QueryService
	Authors     *services.AuthorService
	Categories  *services.CategoryService
	Topics      *services.TopicService
	Pages       *services.PageService
	Subscribers *services.SubscriberService
	Contacts    *services.ContactService
	Sitemaps    *services.SitemapService
}

func New(
	articles *services.ArticleService,
	queries *services.QueryService,
	authors *services.AuthorService,
	categories *services.CategoryService,
	topics *services.TopicService,
	pages *services.PageService,
	subscribers *services.SubscriberService,
	contacts *services.ContactService,
	sitemaps *services.SitemapService,
) *Handler {
	return &Handler{
		Articles:    articles,
		Queries:     queries,
		Authors:     authors,
		Categories:  categories,
		Topics:      topics,
		Pages:       pages,
		Subscribers: subscribers,
		Contacts:    contacts,
		Sitemaps:    sitemaps,
	}
}

func getPaginationParams(c *gin.Context) (page, limit int64, err error) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")

	page, err = strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page <= 0 {
		utils.ErrorResponse(c, 400, "invalid page number")
		return 0, 0, fmt.Errorf("invalid page number")
	}

	limit, err = strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 {
		utils.ErrorResponse(c, 400, "invalid page size")
		return 0, 0, fmt.Errorf("invalid page size")
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, nil
}

// getLimit reads an optional ?limit= for the fixed-size rails, clamping to
// the same ceiling as paginated lists.
func getLimit(c *gin.Context, def int64) int64 {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.FormatInt(def, 10)), 10, 64)
	if err != nil || limit <= 0 {
		return def
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return limit
}
