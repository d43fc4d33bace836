package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
)

type PageService struct {
	pages repository.PageRepository
	log   zerolog.Logger
}

func NewPageService(pages repository.PageRepository, log zerolog.Logger) *PageService {
	return &PageService{pages: pages, log: log}
}

func (s *PageService) Create(ctx context.Context, in models.PageInput) (*models.Page, error) {
	if in.Content == nil {
		return nil, apperr.Validation("content is required")
	}

	page, err := models.NewPage(in)
	if err != nil {
		return nil, err
	}

	_, err = s.pages.FindBySlug(ctx, page.Slug)
	if err == nil {
		return nil, apperr.Conflict("page with this slug already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.log.Error().Err(err).Str("slug", page.Slug).Msg("page slug check failed")
		return nil, apperr.Internal(err, "could not create page")
	}

	if err := s.pages.Insert(ctx, page); err != nil {
		s.log.Error().Err(err).Str("slug", page.Slug).Msg("page insert failed")
		return nil, apperr.Internal(err, "could not create page")
	}
	return page, nil
}

// GetActive returns an active page for public rendering.
func (s *PageService) GetActive(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.pages.FindActiveBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("page not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("page fetch failed")
		return nil, apperr.Internal(err, "could not fetch page")
	}
	return page, nil
}

func (s *PageService) List(ctx context.Context) ([]models.Page, error) {
	pages, err := s.pages.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("page list failed")
		return nil, apperr.Internal(err, "could not list pages")
	}
	return pages, nil
}

func (s *PageService) Update(ctx context.Context, slug string, upd repository.PageUpdate) error {
	upd.UpdatedAt = models.Now()

	matched, err := s.pages.Update(ctx, slug, upd)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("page update failed")
		return apperr.Internal(err, "could not update page")
	}
	if matched == 0 {
		return apperr.NotFound("page not found")
	}
	return nil
}
