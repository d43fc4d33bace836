package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/handlers"
)

// SetupRoutes wires the public and admin surfaces onto the engine.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	v1 := r.Group("/api/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", h.ListArticles)
			articles.GET("/latest", h.LatestArticles)
			articles.GET("/most-read", h.MostReadArticles)
			articles.GET("/recently-revised", h.RecentlyRevisedArticles)
			articles.GET("/search", h.SearchArticles)
			articles.GET("/:slug", h.GetArticle)
			articles.GET("/:slug/related", h.RelatedArticles)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", h.ListCategories)
			categories.GET("/:slug/articles", h.CategoryArticles)
			categories.GET("/:slug/articles/:article", h.GetCategoryArticle)
		}

		topics := v1.Group("/topics")
		{
			topics.GET("", h.ListTopics)
			topics.GET("/trending", h.TrendingTopics)
			topics.GET("/:slug/articles", h.TopicArticles)
		}

		v1.GET("/authors/:slug", h.AuthorProfile)
		v1.GET("/pages/:slug", h.GetPage)

		v1.POST("/subscribe", h.Subscribe)
		v1.POST("/contact", h.SubmitContact)

		sitemap := v1.Group("/sitemap")
		{
			sitemap.GET("/feed", h.SitemapFeed)
			sitemap.GET("/news", h.NewsSitemapFeed)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/articles", h.CreateArticle)
			admin.GET("/articles", h.AdminListArticles)
			admin.PUT("/articles/:id", h.UpdateArticle)
			admin.DELETE("/articles/:id", h.DeleteArticle)
			admin.POST("/articles/search-index", h.CreateSearchIndex)

			admin.POST("/authors", h.CreateAuthor)
			admin.GET("/authors", h.AdminListAuthors)
			admin.GET("/authors/:slug", h.AdminGetAuthor)
			admin.PUT("/authors/:slug", h.UpdateAuthor)
			admin.DELETE("/authors/:slug", h.DeactivateAuthor)

			admin.POST("/categories", h.CreateCategory)
			admin.GET("/categories", h.AdminListCategories)
			admin.PUT("/categories/:id", h.UpdateCategory)
			admin.DELETE("/categories/:id", h.DisableCategory)

			admin.GET("/topics", h.AdminListTopics)
			admin.PUT("/topics/:id", h.UpdateTopic)
			admin.DELETE("/topics/:id", h.DisableTopic)

			admin.POST("/pages", h.CreatePage)
			admin.GET("/pages", h.AdminListPages)
			admin.PUT("/pages/:slug", h.UpdatePage)

			admin.GET("/subscribers", h.AdminListSubscribers)

			admin.GET("/contact-messages", h.AdminListContactMessages)
			admin.PUT("/contact-messages/:id", h.UpdateContactStatus)
		}
	}

	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
