package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
)

type AuthorService struct {
	authors repository.AuthorRepository
	log     zerolog.Logger
}

func NewAuthorService(authors repository.AuthorRepository, log zerolog.Logger) *AuthorService {
	return &AuthorService{authors: authors, log: log}
}

func (s *AuthorService) Create(ctx context.Context, in models.AuthorInput) (*models.Author, error) {
	author, err := models.NewAuthor(in)
	if err != nil {
		return nil, err
	}

	_, err = s.authors.FindBySlug(ctx, author.Slug)
	if err == nil {
		return nil, apperr.Conflict("author with this slug already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.log.Error().Err(err).Str("slug", author.Slug).Msg("author slug check failed")
		return nil, apperr.Internal(err, "could not create author")
	}

	if err := s.authors.Insert(ctx, author); err != nil {
		s.log.Error().Err(err).Str("slug", author.Slug).Msg("author insert failed")
		return nil, apperr.Internal(err, "could not create author")
	}
	return author, nil
}

func (s *AuthorService) Get(ctx context.Context, slug string) (*models.Author, error) {
	author, err := s.authors.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("author not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("author fetch failed")
		return nil, apperr.Internal(err, "could not fetch author")
	}
	return author, nil
}

// GetPublic only returns active, public authors: the shape the public
// author page needs.
func (s *AuthorService) GetPublic(ctx context.Context, slug string) (*models.Author, error) {
	author, err := s.authors.FindPublicBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("author not found")
	}
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("author fetch failed")
		return nil, apperr.Internal(err, "could not fetch author")
	}
	return author, nil
}

func (s *AuthorService) List(ctx context.Context) ([]models.Author, error) {
	authors, err := s.authors.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("author list failed")
		return nil, apperr.Internal(err, "could not list authors")
	}
	return authors, nil
}

func (s *AuthorService) Update(ctx context.Context, slug string, upd repository.AuthorUpdate) error {
	upd.UpdatedAt = models.Now()

	matched, err := s.authors.Update(ctx, slug, upd)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("author update failed")
		return apperr.Internal(err, "could not update author")
	}
	if matched == 0 {
		return apperr.NotFound("author not found")
	}
	return nil
}

// Deactivate soft-deactivates instead of deleting: the author drops off the
// public site but embedded snapshots in articles remain intact.
func (s *AuthorService) Deactivate(ctx context.Context, slug string) error {
	matched, err := s.authors.Deactivate(ctx, slug)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("author deactivation failed")
		return apperr.Internal(err, "could not deactivate author")
	}
	if matched == 0 {
		return apperr.NotFound("author not found")
	}
	return nil
}
