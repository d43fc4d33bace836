package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/models"
)

// ErrNotFound is returned by lookups that match no live document. Services
// translate it into the application error taxonomy.
var ErrNotFound = errors.New("repository: not found")

// Sort enumerates the orderings the listing views use.
type Sort int

const (
	SortPublishedDesc Sort = iota
	SortViewCountDesc
	SortUpdatedDesc
	SortCreatedDesc
	// SortViewsThenPublishedDesc is the compound order behind "most
	// relevant to this article".
	SortViewsThenPublishedDesc
)

// ArticleFilter is a composable, store-agnostic article query. The zero
// value matches all non-deleted articles.
type ArticleFilter struct {
	// Status restricts to one editorial status when non-empty.
	Status string
	// IncludeDeleted lifts the default is_deleted=false restriction.
	IncludeDeleted bool

	Slug         string
	CategorySlug string
	TopicSlug    string
	// TopicSlugsAny matches articles whose embedded topic list contains
	// any of the given slugs.
	TopicSlugsAny []string
	AuthorSlug    string

	Featured       *bool
	ExcludeID      primitive.ObjectID
	PublishedSince time.Time
}

// PublishedFilter is the public base filter every public-facing query must
// start from.
func PublishedFilter() ArticleFilter {
	return ArticleFilter{Status: models.StatusPublished}
}

// ArticleUpdate carries the merge-style partial update for Edit. Nil fields
// are left untouched.
type ArticleUpdate struct {
	Title         *string
	Excerpt       *string
	ContentHTML   *string
	FeaturedImage *string
	ImageCaption  *string

	Type   *string
	Status *string

	SEOTitle       *string
	SEODescription *string

	Author   *models.AuthorRef
	Category *models.CategoryRef
	Topics   *[]models.TopicRef

	IsFeatured *bool

	HasUpdate  *bool
	UpdateNote *string

	PublishedAt *models.Timestamp
	UpdatedAt   models.Timestamp
}

type AuthorUpdate struct {
	Name        *string
	DisplayName *string
	Role        *string
	Type        *string

	Bio       *string
	ShortBio  *string
	Expertise *[]string

	Education       *[]string
	ExperienceYears *int
	Credentials     *[]string

	Email  *string
	Social *map[string]string
	Photo  *models.Photo

	SEOTitle       *string
	SEODescription *string

	IsActive   *bool
	IsVerified *bool
	IsPublic   *bool

	UpdatedAt models.Timestamp
}

type CategoryUpdate struct {
	Name           *string
	Description    *string
	SEOTitle       *string
	SEODescription *string
	Order          *int
	IsActive       *bool

	UpdatedAt models.Timestamp
}

type TopicUpdate struct {
	Name        *string
	Description *string
	IsActive    *bool

	UpdatedAt models.Timestamp
}

type PageUpdate struct {
	Title          *string
	SEOTitle       *string
	SEODescription *string
	Content        *map[string]interface{}
	IsActive       *bool

	UpdatedAt models.Timestamp
}
