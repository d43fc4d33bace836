package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/repository"
	"github.com/wifgroup/todaysus-backend/internal/services"
	"github.com/wifgroup/todaysus-backend/internal/utils"
)

// ListArticles serves the public article feed. Scope filters compose:
// ?category=, ?topic=, ?author=, ?featured=true|false.
func (h *Handler) ListArticles(c *gin.Context) {
	page, limit, err := getPaginationParams(c)
	if err != nil {
		return
	}

	opts := services.ListOptions{
		CategorySlug: c.Query("category"),
		TopicSlug:    c.Query("topic"),
		AuthorSlug:   c.Query("author"),
		Page:         page,
		Limit:        limit,
	}
	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			utils.ErrorResponse(c, 400, "invalid featured value")
			return
		}
		opts.Featured = &featured
	}

	result, err := h.Queries.PublicList(c.Request.Context(), opts)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// GetArticle serves a published article by slug and counts the view.
func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.Articles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, article)
}

// GetCategoryArticle is the category-scoped article page: the slug must
// belong to the named category or the response is a 404.
func (h *Handler) GetCategoryArticle(c *gin.Context) {
	article, err := h.Articles.GetByCategoryAndSlug(c.Request.Context(), c.Param("slug"), c.Param("article"))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, article)
}

func (h *Handler) LatestArticles(c *gin.Context) {
	articles, err := h.Queries.Latest(c.Request.Context(), getLimit(c, 10))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": articles})
}

func (h *Handler) MostReadArticles(c *gin.Context) {
	articles, err := h.Queries.MostRead(c.Request.Context(), c.Query("category"), getLimit(c, 10))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": articles})
}

func (h *Handler) RecentlyRevisedArticles(c *gin.Context) {
	articles, err := h.Queries.RecentlyRevised(c.Request.Context(), getLimit(c, 10))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": articles})
}

func (h *Handler) SearchArticles(c *gin.Context) {
	page, limit, err := getPaginationParams(c)
	if err != nil {
		return
	}

	result, err := h.Queries.Search(c.Request.Context(), c.Query("q"), page, limit)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// RelatedArticles returns the rail for an article page. The lookup does not
// count a view: the reader is already on the article.
func (h *Handler) RelatedArticles(c *gin.Context) {
	ctx := c.Request.Context()

	article, err := h.Queries.GetPublicBySlug(ctx, c.Param("slug"))
	if err != nil {
		utils.FromError(c, err)
		return
	}

	related, err := h.Queries.Related(ctx, article, getLimit(c, 4))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"data": related})
}

// CategoryArticles pages through a category's published articles, 404ing on
// unknown or disabled categories so stale links fall off search indexes.
func (h *Handler) CategoryArticles(c *gin.Context) {
	ctx := c.Request.Context()

	category, err := h.Categories.GetActive(ctx, c.Param("slug"))
	if err != nil {
		utils.FromError(c, err)
		return
	}

	page, limit, err := getPaginationParams(c)
	if err != nil {
		return
	}

	result, err := h.Queries.PublicList(ctx, services.ListOptions{
		CategorySlug: category.Slug,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"category": category, "articles": result})
}

// TopicArticles pages through a topic's published articles.
func (h *Handler) TopicArticles(c *gin.Context) {
	page, limit, err := getPaginationParams(c)
	if err != nil {
		return
	}

	result, err := h.Queries.PublicList(c.Request.Context(), services.ListOptions{
		TopicSlug: c.Param("slug"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// AuthorProfile is the public author page: the profile plus their most
// recent published work.
func (h *Handler) AuthorProfile(c *gin.Context) {
	ctx := c.Request.Context()

	author, err := h.Authors.GetPublic(ctx, c.Param("slug"))
	if err != nil {
		utils.FromError(c, err)
		return
	}

	page, limit, err := getPaginationParams(c)
	if err != nil {
		return
	}

	articles, err := h.Queries.PublicList(ctx, services.ListOptions{
		AuthorSlug: author.Slug,
		Sort:       repository.SortPublishedDesc,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"author": author, "articles": articles})
}
