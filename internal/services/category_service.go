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

type CategoryService struct {
	categories repository.CategoryRepository
	log        zerolog.Logger
}

func NewCategoryService(categories repository.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) Create(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	category, err := models.NewCategory(in)
	if err != nil {
		return nil, err
	}

	_, err = s.categories.FindBySlug(ctx, category.Slug)
	if err == nil {
		return nil, apperr.Conflict("category with this slug already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.log.Error().Err(err).Str("slug", category.Slug).Msg("category slug check failed")
		return nil, apperr.Internal(err, "could not create category")
	}

	if err := s.categories.Insert(ctx, category); err != nil {
		s.log.Error().Err(err).Str("slug", category.Slug).Msg("category insert failed")
		return nil, apperr.Internal(err, "could not create category")
	}
	return category, nil
}

func (s *CategoryService) GetActive(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categories.FindActiveBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("category not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("category fetch failed")
		return nil, apperr.Internal(err, "could not fetch category")
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	categories, err := s.categories.List(ctx, activeOnly)
	if err != nil {
		s.log.Error().Err(err).Msg("category list failed")
		return nil, apperr.Internal(err, "could not list categories")
	}
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, upd repository.CategoryUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid category id")
	}

	upd.UpdatedAt = models.Now()
	matched, err := s.categories.Update(ctx, oid, upd)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("category update failed")
		return apperr.Internal(err, "could not update category")
	}
	if matched == 0 {
		return apperr.NotFound("category not found")
	}
	return nil
}

// Disable soft-disables; articles keep their embedded category snapshot.
func (s *CategoryService) Disable(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid category id")
	}
	if err := s.categories.Disable(ctx, oid); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("category disable failed")
		return apperr.Internal(err, "could not disable category")
	}
	return nil
}
