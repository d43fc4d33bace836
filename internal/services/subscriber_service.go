package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
)

// SubscribeOutcome tells the caller what Subscribe actually did.
type SubscribeOutcome int

const (
	Subscribed SubscribeOutcome = iota
	Reactivated
	AlreadySubscribed
)

type SubscriberService struct {
	subscribers repository.SubscriberRepository
	log         zerolog.Logger
}

func NewSubscriberService(subscribers repository.SubscriberRepository, log zerolog.Logger) *SubscriberService {
	return &SubscriberService{subscribers: subscribers, log: log}
}

// Subscribe registers an email, treating addresses case-insensitively.
// Unsubscribed addresses are reactivated rather than duplicated.
func (s *SubscriberService) Subscribe(ctx context.Context, email, source, ip, userAgent string) (SubscribeOutcome, error) {
	sub, err := models.NewSubscriber(email, source, ip, userAgent)
	if err != nil {
		return 0, err
	}

	existing, err := s.subscribers.FindByEmail(ctx, sub.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.log.Error().Err(err).Msg("subscriber lookup failed")
		return 0, apperr.Internal(err, "could not subscribe")
	}

	if existing != nil {
		if existing.Status == models.SubscriberUnsubscribed {
			if err := s.subscribers.SetStatus(ctx, existing.ID, models.SubscriberActive); err != nil {
				s.log.Error().Err(err).Msg("subscriber reactivation failed")
				return 0, apperr.Internal(err, "could not subscribe")
			}
			return Reactivated, nil
		}
		return AlreadySubscribed, nil
	}

	if err := s.subscribers.Insert(ctx, sub); err != nil {
		s.log.Error().Err(err).Msg("subscriber insert failed")
		return 0, apperr.Internal(err, "could not subscribe")
	}
	return Subscribed, nil
}

func (s *SubscriberService) List(ctx context.Context) ([]models.Subscriber, error) {
	subs, err := s.subscribers.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("subscriber list failed")
		return nil, apperr.Internal(err, "could not list subscribers")
	}
	return subs, nil
}
