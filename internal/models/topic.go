package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/textutil"
)

// Topic is created lazily the first time an article references a topic name
// not yet known. ArticleCount is incremented once per referencing article at
// creation time.
type Topic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`

	ArticleCount int64 `bson:"article_count" json:"article_count"`
	IsActive     bool  `bson:"is_active" json:"is_active"`

	CreatedAt Timestamp `bson:"created_at" json:"created_at"`
	UpdatedAt Timestamp `bson:"updated_at" json:"updated_at"`
}

func NewTopic(name string) (*Topic, error) {
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	now := Now()

	return &Topic{
		Name:         name,
		Slug:         textutil.Slugify(name),
		ArticleCount: 1,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// TopicTrend is the aggregation shape for "top topics by article count",
// used by the sitemap feed.
type TopicTrend struct {
	Slug          string    `bson:"_id" json:"slug"`
	Name          string    `bson:"name" json:"name"`
	ArticleCount  int64     `bson:"article_count" json:"article_count"`
	LastPublished Timestamp `bson:"last_published" json:"last_published"`
}
