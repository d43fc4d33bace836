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

// ArticleService owns the article lifecycle: create, edit, soft-delete and
// the view-count-incrementing fetch.
type ArticleService struct {
	articles repository.ArticleRepository
	topics   *TopicService
	log      zerolog.Logger
}

func NewArticleService(articles repository.ArticleRepository, topics *TopicService, log zerolog.Logger) *ArticleService {
	return &ArticleService{articles: articles, topics: topics, log: log}
}

// ArticleEdit is the partial-field edit accepted by Edit. Nil fields are
// left untouched.
type ArticleEdit struct {
	Title         *string
	Excerpt       *string
	ContentHTML   *string
	FeaturedImage *string
	ImageCaption  *string

	Type   *string
	Status *string

	SEOTitle       *string
	SEODescription *string

	Author   *models.AuthorRef
	Category *models.CategoryRef
	Topics   *[]models.TopicRef

	IsFeatured  *bool
	UpdateNote  *string
	PublishedAt *models.Timestamp
}

// Create builds the canonical record, rejects duplicate slugs, persists it
// and syncs topic counters.
func (s *ArticleService) Create(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	article, err := models.NewArticle(in)
	if err != nil {
		return nil, err
	}

	// Slug uniqueness is enforced here, matching authors/categories/pages.
	// The check spans deleted articles too: their slugs stay reserved.
	existing, err := s.articles.Count(ctx, repository.ArticleFilter{Slug: article.Slug, IncludeDeleted: true})
	if err != nil {
		s.log.Error().Err(err).Str("slug", article.Slug).Msg("article slug check failed")
		return nil, apperr.Internal(err, "could not create article")
	}
	if existing > 0 {
		return nil, apperr.Conflict("article with slug %q already exists", article.Slug)
	}

	if err := s.articles.Insert(ctx, article); err != nil {
		s.log.Error().Err(err).Str("slug", article.Slug).Msg("article insert failed")
		return nil, apperr.Internal(err, "could not create article")
	}

	if len(article.Topics) > 0 {
		s.topics.Sync(ctx, article.Topics)
	}

	return article, nil
}

// Edit merges the supplied fields into a non-deleted article. An edit that
// touches content_html marks the article as editorially updated. Editing an
// unknown or deleted id is a NotFound, not a silent success.
func (s *ArticleService) Edit(ctx context.Context, id string, edit ArticleEdit) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid article id")
	}

	upd := repository.ArticleUpdate{
		Title:          edit.Title,
		Excerpt:        edit.Excerpt,
		ContentHTML:    edit.ContentHTML,
		FeaturedImage:  edit.FeaturedImage,
		ImageCaption:   edit.ImageCaption,
		Type:           edit.Type,
		Status:         edit.Status,
		SEOTitle:       edit.SEOTitle,
		SEODescription: edit.SEODescription,
		Author:         edit.Author,
		Category:       edit.Category,
		Topics:         edit.Topics,
		IsFeatured:     edit.IsFeatured,
		UpdateNote:     edit.UpdateNote,
		PublishedAt:    edit.PublishedAt,
		UpdatedAt:      models.Now(),
	}

	if edit.ContentHTML != nil {
		hasUpdate := true
		upd.HasUpdate = &hasUpdate
		if upd.UpdateNote == nil {
			note := models.DefaultUpdateNote
			upd.UpdateNote = &note
		}
	}

	matched, err := s.articles.Update(ctx, oid, upd)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("article update failed")
		return apperr.Internal(err, "could not update article")
	}
	if matched == 0 {
		return apperr.NotFound("article not found")
	}
	return nil
}

// SoftDelete marks the article deleted. Idempotent: the second delete is a
// no-op, and there is no undelete.
func (s *ArticleService) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid article id")
	}
	if err := s.articles.SoftDelete(ctx, oid); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("article soft delete failed")
		return apperr.Internal(err, "could not delete article")
	}
	return nil
}

// GetBySlug atomically fetches a published article and counts the view.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	f := repository.PublishedFilter()
	f.Slug = slug
	return s.fetchAndIncrement(ctx, f)
}

// GetByCategoryAndSlug is the category-scoped variant used by article pages.
func (s *ArticleService) GetByCategoryAndSlug(ctx context.Context, categorySlug, slug string) (*models.Article, error) {
	f := repository.PublishedFilter()
	f.Slug = slug
	f.CategorySlug = categorySlug
	return s.fetchAndIncrement(ctx, f)
}

func (s *ArticleService) fetchAndIncrement(ctx context.Context, f repository.ArticleFilter) (*models.Article, error) {
	article, err := s.articles.FindOneAndIncrementViews(ctx, f)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("article not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("slug", f.Slug).Msg("article fetch failed")
		return nil, apperr.Internal(err, "could not fetch article")
	}

	normalizeArticle(article)
	return article, nil
}

// EnsureSearchIndex creates the weighted text index behind free-text search.
// One-time administrative operation, exposed on the admin surface.
func (s *ArticleService) EnsureSearchIndex(ctx context.Context) error {
	if err := s.articles.EnsureSearchIndex(ctx); err != nil {
		s.log.Error().Err(err).Msg("search index creation failed")
		return apperr.Internal(err, "could not create search index")
	}
	return nil
}
