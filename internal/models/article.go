package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/textutil"
)

// Article types.
const (
	ArticleTypeNews      = "news"
	ArticleTypeAnalysis  = "analysis"
	ArticleTypeExplainer = "explainer"
	ArticleTypeOpinion   = "opinion"
)

// Editorial statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// DefaultUpdateNote is attached when an edit touches content_html without
// supplying its own note.
const DefaultUpdateNote = "Article updated for clarity"

// AuthorRef, CategoryRef and TopicRef are denormalized snapshots embedded in
// an article at assignment time. They are copies, not live references: later
// edits to the canonical Author/Category/Topic do not propagate back.
type AuthorRef struct {
	Slug string `bson:"slug" json:"slug"`
	Name string `bson:"name" json:"name"`
}

type CategoryRef struct {
	Slug string `bson:"slug" json:"slug"`
	Name string `bson:"name" json:"name"`
}

type TopicRef struct {
	Slug string `bson:"slug" json:"slug"`
	Name string `bson:"name" json:"name"`
}

type Article struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug string             `bson:"slug" json:"slug"`

	Title         string `bson:"title" json:"title"`
	Excerpt       string `bson:"excerpt" json:"excerpt"`
	ContentHTML   string `bson:"content_html" json:"content_html"`
	FeaturedImage string `bson:"featured_image" json:"featured_image"`
	ImageCaption  string `bson:"image_caption" json:"image_caption"`

	Type   string `bson:"type" json:"type"`
	Status string `bson:"status" json:"status"`

	SEOTitle       string `bson:"seo_title" json:"seo_title"`
	SEODescription string `bson:"seo_description" json:"seo_description"`

	Author   AuthorRef   `bson:"author" json:"author"`
	Category CategoryRef `bson:"category" json:"category"`
	Topics   []TopicRef  `bson:"topics" json:"topics"`

	IsFeatured bool   `bson:"is_featured" json:"is_featured"`
	HasUpdate  bool   `bson:"has_update" json:"has_update"`
	UpdateNote string `bson:"update_note,omitempty" json:"update_note,omitempty"`

	ViewCount   int64 `bson:"view_count" json:"view_count"`
	ReadingTime int   `bson:"reading_time" json:"reading_time"`

	PublishedAt *Timestamp `bson:"published_at" json:"published_at"`
	CreatedAt   Timestamp  `bson:"created_at" json:"created_at"`
	UpdatedAt   Timestamp  `bson:"updated_at" json:"updated_at"`

	IsDeleted bool `bson:"is_deleted" json:"is_deleted"`
}

// ArticleInput is the partial, user-supplied shape NewArticle builds from.
type ArticleInput struct {
	Title         string
	Excerpt       string
	ContentHTML   string
	FeaturedImage string
	ImageCaption  string

	Type   string
	Status string

	SEOTitle       string
	SEODescription string

	Author   *AuthorRef
	Category *CategoryRef
	Topics   []TopicRef

	IsFeatured  bool
	PublishedAt *Timestamp
}

func validArticleType(t string) bool {
	switch t {
	case ArticleTypeNews, ArticleTypeAnalysis, ArticleTypeExplainer, ArticleTypeOpinion:
		return true
	}
	return false
}

// NewArticle builds the canonical persisted record from partial input. It is
// side-effect-free: nothing is written to the store here.
func NewArticle(in ArticleInput) (*Article, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	if in.Author == nil || in.Author.Slug == "" {
		return nil, apperr.Validation("author is required")
	}
	if in.Category == nil || in.Category.Slug == "" {
		return nil, apperr.Validation("category is required")
	}

	articleType := in.Type
	if articleType == "" {
		articleType = ArticleTypeNews
	}
	if !validArticleType(articleType) {
		return nil, apperr.Validation("invalid article type %q", in.Type)
	}

	status := in.Status
	if status == "" {
		status = StatusDraft
	}
	if status != StatusDraft && status != StatusPublished {
		return nil, apperr.Validation("invalid status %q", in.Status)
	}

	seoTitle := in.SEOTitle
	if seoTitle == "" {
		seoTitle = in.Title
	}
	seoDescription := in.SEODescription
	if seoDescription == "" {
		seoDescription = in.Excerpt
	}

	now := Now()

	// published_at is taken from the input when supplied, stamped at
	// creation when the article is born published, and left null otherwise.
	publishedAt := in.PublishedAt
	if publishedAt == nil && status == StatusPublished {
		publishedAt = &now
	}

	topics := in.Topics
	if topics == nil {
		topics = []TopicRef{}
	}

	return &Article{
		Title:         in.Title,
		Slug:          textutil.Slugify(in.Title),
		Excerpt:       in.Excerpt,
		ContentHTML:   in.ContentHTML,
		FeaturedImage: in.FeaturedImage,
		ImageCaption:  in.ImageCaption,

		Type:   articleType,
		Status: status,

		SEOTitle:       seoTitle,
		SEODescription: seoDescription,

		Author:   *in.Author,
		Category: *in.Category,
		Topics:   topics,

		IsFeatured: in.IsFeatured,
		HasUpdate:  false,
		UpdateNote: "",

		ViewCount:   0,
		ReadingTime: textutil.ReadingTime(in.ContentHTML),

		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,

		IsDeleted: false,
	}, nil
}

// DisplayPublishedAt returns published_at, falling back to created_at for
// date-dependent display ordering. The stored field is never mutated.
func (a *Article) DisplayPublishedAt() Timestamp {
	if a.PublishedAt != nil && !a.PublishedAt.IsZero() {
		return *a.PublishedAt
	}
	return a.CreatedAt
}
