package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/textutil"
)

type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`

	SEOTitle       string `bson:"seo_title" json:"seo_title"`
	SEODescription string `bson:"seo_description" json:"seo_description"`

	// Order controls display ordering on public listings.
	Order    int  `bson:"order" json:"order"`
	IsActive bool `bson:"is_active" json:"is_active"`

	CreatedAt Timestamp `bson:"created_at" json:"created_at"`
	UpdatedAt Timestamp `bson:"updated_at" json:"updated_at"`
}

type CategoryInput struct {
	Name           string
	Description    string
	SEOTitle       string
	SEODescription string
	Order          int
	IsActive       *bool
}

func NewCategory(in CategoryInput) (*Category, error) {
	if in.Name == "" {
		return nil, apperr.Validation("name is required")
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := Now()

	return &Category{
		Name:        in.Name,
		Slug:        textutil.Slugify(in.Name),
		Description: in.Description,

		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,

		Order:    in.Order,
		IsActive: isActive,

		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
