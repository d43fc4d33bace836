package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
)

// Page is a static content page (about, editorial-policy, terms, ...).
type Page struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug  string             `bson:"slug" json:"slug"`
	Title string             `bson:"title" json:"title"`

	SEOTitle       string `bson:"seo_title" json:"seo_title"`
	SEODescription string `bson:"seo_description" json:"seo_description"`

	Content map[string]interface{} `bson:"content" json:"content,omitempty"`

	IsActive bool `bson:"is_active" json:"is_active"`

	CreatedAt Timestamp `bson:"created_at" json:"created_at"`
	UpdatedAt Timestamp `bson:"updated_at" json:"updated_at"`
}

type PageInput struct {
	Slug           string
	Title          string
	SEOTitle       string
	SEODescription string
	Content        map[string]interface{}
}

func NewPage(in PageInput) (*Page, error) {
	if in.Slug == "" {
		return nil, apperr.Validation("slug is required")
	}
	if in.Title == "" {
		return nil, apperr.Validation("title is required")
	}

	seoTitle := in.SEOTitle
	if seoTitle == "" {
		seoTitle = in.Title
	}
	content := in.Content
	if content == nil {
		content = map[string]interface{}{}
	}

	now := Now()

	return &Page{
		Slug:           in.Slug,
		Title:          in.Title,
		SEOTitle:       seoTitle,
		SEODescription: in.SEODescription,
		Content:        content,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
