package services

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
)

type ContactService struct {
	contacts repository.ContactRepository
	log      zerolog.Logger
}

func NewContactService(contacts repository.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{contacts: contacts, log: log}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message, ip, userAgent string) error {
	msg, err := models.NewContactMessage(name, email, message, ip, userAgent)
	if err != nil {
		return err
	}
	if err := s.contacts.Insert(ctx, msg); err != nil {
		s.log.Error().Err(err).Msg("contact message insert failed")
		return apperr.Internal(err, "could not submit message")
	}
	return nil
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.contacts.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("contact message list failed")
		return nil, apperr.Internal(err, "could not list messages")
	}
	return messages, nil
}

func (s *ContactService) SetStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid message id")
	}
	if !models.ValidContactStatus(status) {
		return apperr.Validation("invalid status %q", status)
	}

	matched, err := s.contacts.SetStatus(ctx, oid, status)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("contact status update failed")
		return apperr.Internal(err, "could not update message")
	}
	if matched == 0 {
		return apperr.NotFound("message not found")
	}
	return nil
}
