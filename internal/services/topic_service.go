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

type TopicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func NewTopicService(topics repository.TopicRepository, log zerolog.Logger) *TopicService {
	return &TopicService{topics: topics, log: log}
}

// Sync reconciles an article's embedded topic references against the topics
// collection: known topics get their article_count bumped in place, unknown
// ones are created with a count of 1. Topics are processed independently so
// one failure never blocks the rest. Invoked once per article creation;
// edits do not resync, so counts are creation-time approximations.
func (s *TopicService) Sync(ctx context.Context, refs []models.TopicRef) {
	for _, ref := range refs {
		if ref.Slug == "" {
			continue
		}

		err := s.topics.IncrementArticleCount(ctx, ref.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warn().Err(err).Str("topic", ref.Slug).Msg("topic count increment failed")
			continue
		}

		topic, err := models.NewTopic(ref.Name)
		if err != nil {
			s.log.Warn().Err(err).Str("topic", ref.Slug).Msg("skipping invalid topic reference")
			continue
		}
		if err := s.topics.Insert(ctx, topic); err != nil {
			s.log.Warn().Err(err).Str("topic", ref.Slug).Msg("topic insert failed")
		}
	}
}

func (s *TopicService) List(ctx context.Context, activeOnly bool) ([]models.Topic, error) {
	topics, err := s.topics.List(ctx, activeOnly)
	if err != nil {
		s.log.Error().Err(err).Msg("topic list failed")
		return nil, apperr.Internal(err, "could not list topics")
	}
	return topics, nil
}

func (s *TopicService) Update(ctx context.Context, id string, upd repository.TopicUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid topic id")
	}

	upd.UpdatedAt = models.Now()
	matched, err := s.topics.Update(ctx, oid, upd)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("topic update failed")
		return apperr.Internal(err, "could not update topic")
	}
	if matched == 0 {
		return apperr.NotFound("topic not found")
	}
	return nil
}

func (s *TopicService) Disable(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid topic id")
	}
	if err := s.topics.Disable(ctx, oid); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("topic disable failed")
		return apperr.Internal(err, "could not disable topic")
	}
	return nil
}
