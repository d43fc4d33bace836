package dto

import "github.com/wifgroup/todaysus-backend/internal/models"

// CreateArticleRequest is the admin payload for new articles. Required-field
// checks happen in the article factory so every caller gets the same
// validation outcome.
type CreateArticleRequest struct {
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	ContentHTML   string `json:"content_html"`
	FeaturedImage string `json:"featured_image"`
	ImageCaption  string `json:"image_caption"`

	Type   string `json:"type"`
	Status string `json:"status"`

	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`

	Author   *models.AuthorRef   `json:"author"`
	Category *models.CategoryRef `json:"category"`
	Topics   []models.TopicRef   `json:"topics"`

	IsFeatured bool `json:"is_featured"`

	// PublishedAt accepts the same date layouts legacy documents use.
	PublishedAt string `json:"published_at"`
}

// UpdateArticleRequest is a partial edit: absent fields stay untouched.
type UpdateArticleRequest struct {
	Title         *string `json:"title"`
	Excerpt       *string `json:"excerpt"`
	ContentHTML   *string `json:"content_html"`
	FeaturedImage *string `json:"featured_image"`
	ImageCaption  *string `json:"image_caption"`

	Type   *string `json:"type"`
	Status *string `json:"status"`

	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`

	Author   *models.AuthorRef   `json:"author"`
	Category *models.CategoryRef `json:"category"`
	Topics   *[]models.TopicRef  `json:"topics"`

	IsFeatured  *bool   `json:"is_featured"`
	UpdateNote  *string `json:"update_note"`
	PublishedAt *string `json:"published_at"`
}
