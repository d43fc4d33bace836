package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/cache"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
)

// staticPageSlugs are the fixed public pages every sitemap carries.
var staticPageSlugs = []string{
	"about",
	"contact",
	"editorial-policy",
	"ethics",
	"corrections",
	"privacy-policy",
	"terms-of-use",
}

const (
	newsWindow          = 7 * 24 * time.Hour
	newsLimit           = 100
	trendingTTL         = time.Hour
	defaultTrendingSize = 10
)

// SitemapService derives the URL sets and trending-topic counts that feed
// sitemap generation. It hands out plain data; XML assembly happens
// elsewhere.
type SitemapService struct {
	articles repository.ArticleRepository
	cache    *cache.Cache
	log      zerolog.Logger
}

func NewSitemapService(articles repository.ArticleRepository, c *cache.Cache, log zerolog.Logger) *SitemapService {
	return &SitemapService{articles: articles, cache: c, log: log}
}

type SitemapEntry struct {
	CategorySlug string    `json:"category_slug"`
	Slug         string    `json:"slug"`
	LastMod      time.Time `json:"lastmod"`
}

type SitemapSnapshot struct {
	GeneratedAt time.Time      `json:"generated_at"`
	StaticPages []string       `json:"static_pages"`
	Categories  []string       `json:"categories"`
	Articles    []SitemapEntry `json:"articles"`
}

type NewsEntry struct {
	CategorySlug string    `json:"category_slug"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	PublishedAt  time.Time `json:"published_at"`
}

// Snapshot builds the full sitemap feed: static pages, the distinct active
// category slugs referenced by published articles, and one entry per
// published article with its last-modified instant.
func (s *SitemapService) Snapshot(ctx context.Context) (*SitemapSnapshot, error) {
	now := time.Now().UTC()

	categories, err := s.articles.PublishedCategorySlugs(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("sitemap category aggregation failed")
		return nil, apperr.Internal(err, "could not build sitemap feed")
	}

	articles, err := s.articles.Find(ctx, repository.PublishedFilter(), repository.SortPublishedDesc, 0, 0)
	if err != nil {
		s.log.Error().Err(err).Msg("sitemap article scan failed")
		return nil, apperr.Internal(err, "could not build sitemap feed")
	}

	entries := make([]SitemapEntry, 0, len(articles))
	for _, a := range articles {
		if a.Slug == "" || a.Category.Slug == "" {
			continue
		}
		entries = append(entries, SitemapEntry{
			CategorySlug: a.Category.Slug,
			Slug:         a.Slug,
			LastMod:      lastModified(&a, now),
		})
	}

	return &SitemapSnapshot{
		GeneratedAt: now,
		StaticPages: staticPageSlugs,
		Categories:  categories,
		Articles:    entries,
	}, nil
}

// NewsSnapshot covers the Google-News window: articles published in the last
// seven days, newest first, capped at 100.
func (s *SitemapService) NewsSnapshot(ctx context.Context) ([]NewsEntry, error) {
	f := repository.PublishedFilter()
	f.PublishedSince = time.Now().UTC().Add(-newsWindow)

	articles, err := s.articles.Find(ctx, f, repository.SortPublishedDesc, 0, newsLimit)
	if err != nil {
		s.log.Error().Err(err).Msg("news sitemap scan failed")
		return nil, apperr.Internal(err, "could not build news sitemap feed")
	}

	entries := make([]NewsEntry, 0, len(articles))
	for _, a := range articles {
		if a.Slug == "" || a.Category.Slug == "" || a.PublishedAt == nil {
			continue
		}
		entries = append(entries, NewsEntry{
			CategorySlug: a.Category.Slug,
			Slug:         a.Slug,
			Title:        a.Title,
			PublishedAt:  a.PublishedAt.Time,
		})
	}
	return entries, nil
}

// TrendingTopics returns the top-N topics by article count across published
// articles. Results are cached in Redis for an hour; on a cache miss the
// aggregation runs against the store and the cache is refilled.
func (s *SitemapService) TrendingTopics(ctx context.Context, limit int64) ([]models.TopicTrend, error) {
	if limit < 1 {
		limit = defaultTrendingSize
	}
	key := trendingKey(limit)

	var cached []models.TopicTrend
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("trending cache read failed")
	}
	if hit {
		return cached, nil
	}

	trends, err := s.articles.TrendingTopics(ctx, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("trending topic aggregation failed")
		return nil, apperr.Internal(err, "could not compute trending topics")
	}

	if err := s.cache.SetJSON(ctx, key, trends, trendingTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("trending cache write failed")
	}
	return trends, nil
}

// WarmTrendingCache recomputes and caches the trending aggregation. Run
// hourly by the scheduler so public reads rarely pay for the pipeline.
func (s *SitemapService) WarmTrendingCache(ctx context.Context) {
	trends, err := s.articles.TrendingTopics(ctx, defaultTrendingSize)
	if err != nil {
		s.log.Error().Err(err).Msg("trending cache warm failed")
		return
	}
	if err := s.cache.SetJSON(ctx, trendingKey(defaultTrendingSize), trends, trendingTTL); err != nil {
		s.log.Warn().Err(err).Msg("trending cache write failed")
		return
	}
	s.log.Info().Int("topics", len(trends)).Msg("trending cache warmed")
}

func trendingKey(limit int64) string {
	return fmt.Sprintf("trending:topics:%d", limit)
}

// lastModified picks updated_at, then published_at, then now.
func lastModified(a *models.Article, now time.Time) time.Time {
	if !a.UpdatedAt.IsZero() {
		return a.UpdatedAt.Time
	}
	if a.PublishedAt != nil && !a.PublishedAt.IsZero() {
		return a.PublishedAt.Time
	}
	return now
}
