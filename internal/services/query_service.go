package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
)

const defaultPageSize = 10

// QueryService produces the filtered, sorted, paginated, date-normalized
// article projections behind every public and admin listing view.
type QueryService struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func NewQueryService(articles repository.ArticleRepository, log zerolog.Logger) *QueryService {
	return &QueryService{articles: articles, log: log}
}

// ListOptions scopes a public listing. All filters are composable.
type ListOptions struct {
	CategorySlug string
	TopicSlug    string
	AuthorSlug   string
	Featured     *bool
	ExcludeID    primitive.ObjectID

	Sort  repository.Sort
	Page  int64
	Limit int64
}

type Paginated struct {
	Data    []models.Article `json:"data"`
	Page    int64            `json:"page"`
	Limit   int64            `json:"limit"`
	Total   int64            `json:"total"`
	HasMore bool             `json:"has_more"`
}

// normalizeArticle applies the display-side published_at fallback so no
// consumer ever sees a dateless article. The stored field is untouched.
func normalizeArticle(a *models.Article) {
	if a.PublishedAt == nil || a.PublishedAt.IsZero() {
		created := a.CreatedAt
		a.PublishedAt = &created
	}
}

func normalizeArticles(items []models.Article) {
	for i := range items {
		normalizeArticle(&items[i])
	}
}

func (o ListOptions) filter() repository.ArticleFilter {
	f := repository.PublishedFilter()
	f.CategorySlug = o.CategorySlug
	f.TopicSlug = o.TopicSlug
	f.AuthorSlug = o.AuthorSlug
	f.Featured = o.Featured
	f.ExcludeID = o.ExcludeID
	return f
}

// PublicList pages through published, non-deleted articles under the given
// scope. Total is always the full count of the filtered set.
func (s *QueryService) PublicList(ctx context.Context, opts ListOptions) (*Paginated, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	f := opts.filter()
	skip := (page - 1) * limit

	items, err := s.articles.Find(ctx, f, opts.Sort, skip, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("article list failed")
		return nil, apperr.Internal(err, "could not list articles")
	}

	total, err := s.articles.Count(ctx, f)
	if err != nil {
		s.log.Error().Err(err).Msg("article count failed")
		return nil, apperr.Internal(err, "could not list articles")
	}

	normalizeArticles(items)

	return &Paginated{
		Data:    items,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: total > page*limit,
	}, nil
}

// AdminList returns non-deleted articles regardless of status, newest
// created first, with an optional exact status filter.
func (s *QueryService) AdminList(ctx context.Context, status string) ([]models.Article, error) {
	f := repository.ArticleFilter{Status: status}

	items, err := s.articles.Find(ctx, f, repository.SortCreatedDesc, 0, 0)
	if err != nil {
		s.log.Error().Err(err).Msg("admin article list failed")
		return nil, apperr.Internal(err, "could not list articles")
	}
	normalizeArticles(items)
	return items, nil
}

// Search runs the weighted free-text query, ordered by relevance. Requires
// the text index to exist; a missing index surfaces as an internal error.
func (s *QueryService) Search(ctx context.Context, query string, page, limit int64) (*Paginated, error) {
	if query == "" {
		return nil, apperr.Validation("search query is required")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	items, total, err := s.articles.Search(ctx, query, repository.PublishedFilter(), (page-1)*limit, limit)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("article search failed")
		return nil, apperr.Internal(err, "search is unavailable")
	}

	normalizeArticles(items)

	return &Paginated{
		Data:    items,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: total > page*limit,
	}, nil
}

// GetPublicBySlug fetches a published article without counting a view, for
// internal lookups like building the related-articles rail. Should slugs
// ever collide it picks the most recently created match.
func (s *QueryService) GetPublicBySlug(ctx context.Context, slug string) (*models.Article, error) {
	f := repository.PublishedFilter()
	f.Slug = slug

	article, err := s.articles.FindOne(ctx, f, repository.SortCreatedDesc)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("article not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("article lookup failed")
		return nil, apperr.Internal(err, "could not fetch article")
	}
	normalizeArticle(article)
	return article, nil
}

// Latest returns the newest published articles.
func (s *QueryService) Latest(ctx context.Context, limit int64) ([]models.Article, error) {
	return s.topN(ctx, repository.PublishedFilter(), repository.SortPublishedDesc, limit)
}

// MostRead returns published articles by view count, optionally scoped to a
// category.
func (s *QueryService) MostRead(ctx context.Context, categorySlug string, limit int64) ([]models.Article, error) {
	f := repository.PublishedFilter()
	f.CategorySlug = categorySlug
	return s.topN(ctx, f, repository.SortViewCountDesc, limit)
}

// RecentlyRevised returns published articles by last modification.
func (s *QueryService) RecentlyRevised(ctx context.Context, limit int64) ([]models.Article, error) {
	return s.topN(ctx, repository.PublishedFilter(), repository.SortUpdatedDesc, limit)
}

// Related returns the articles most relevant to the given one: same
// category, overlapping topics, excluding the article itself, most read
// first with recency as tiebreaker.
func (s *QueryService) Related(ctx context.Context, article *models.Article, limit int64) ([]models.Article, error) {
	if len(article.Topics) == 0 {
		return []models.Article{}, nil
	}

	topicSlugs := make([]string, 0, len(article.Topics))
	for _, t := range article.Topics {
		topicSlugs = append(topicSlugs, t.Slug)
	}

	f := repository.PublishedFilter()
	f.CategorySlug = article.Category.Slug
	f.TopicSlugsAny = topicSlugs
	f.ExcludeID = article.ID

	return s.topN(ctx, f, repository.SortViewsThenPublishedDesc, limit)
}

func (s *QueryService) topN(ctx context.Context, f repository.ArticleFilter, sort repository.Sort, limit int64) ([]models.Article, error) {
	if limit < 1 {
		limit = defaultPageSize
	}
	items, err := s.articles.Find(ctx, f, sort, 0, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("article query failed")
		return nil, apperr.Internal(err, "could not list articles")
	}
	normalizeArticles(items)
	return items, nil
}
