package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/wifgroup/todaysus-backend/internal/cache"
	"github.com/wifgroup/todaysus-backend/internal/config"
	"github.com/wifgroup/todaysus-backend/internal/database"
	"github.com/wifgroup/todaysus-backend/internal/handlers"
	"github.com/wifgroup/todaysus-backend/internal/logger"
	"github.com/wifgroup/todaysus-backend/internal/middleware"
	"github.com/wifgroup/todaysus-backend/internal/repository"
	"github.com/wifgroup/todaysus-backend/internal/routes"
	"github.com/wifgroup/todaysus-backend/internal/services"
)

func main() {
	// .env is a development convenience; in production configuration comes
	// from the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg)

	ctx := context.Background()

	client, db, err := database.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.DatabaseName).Msg("mongodb connected")

	// Redis is optional: without it trending reads hit the store directly.
	var articleCache *cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err := database.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without cache")
		} else {
			articleCache = cache.New(rdb)
			log.Info().Str("addr", cfg.RedisAddr).Msg("redis connected")
		}
	}

	articleRepo := repository.NewArticleRepo(db)
	topicRepo := repository.NewTopicRepo(db)
	authorRepo := repository.NewAuthorRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	pageRepo := repository.NewPageRepo(db)
	subscriberRepo := repository.NewSubscriberRepo(db)
	contactRepo := repository.NewContactRepo(db)

	topicService := services.NewTopicService(topicRepo, log)
	articleService := services.NewArticleService(articleRepo, topicService, log)
	queryService := services.NewQueryService(articleRepo, log)
	authorService := services.NewAuthorService(authorRepo, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	pageService := services.NewPageService(pageRepo, log)
	subscriberService := services.NewSubscriberService(subscriberRepo, log)
	contactService := services.NewContactService(contactRepo, log)
	sitemapService := services.NewSitemapService(articleRepo, articleCache, log)

	// Keep the trending aggregation warm so public reads rarely pay for it.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		sitemapService.WarmTrendingCache(context.Background())
	}); err != nil {
		log.Fatal().Err(err).Msg("scheduler setup failed")
	}
	scheduler.Start()
	defer scheduler.Stop()

	h := handlers.New(
		articleService,
		queryService,
		authorService,
		categoryService,
		topicService,
		pageService,
		subscriberService,
		contactService,
		sitemapService,
	)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())

	routes.SetupRoutes(r, h)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
