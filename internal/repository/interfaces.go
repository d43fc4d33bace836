package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/models"
)

// ArticleRepository is the store access surface for the article lifecycle
// and every listing view. Implementations must make
// FindOneAndIncrementViews a single atomic read-modify-write.
type ArticleRepository interface {
	Insert(ctx context.Context, article *models.Article) error
	// Update merges the given fields into the matching non-deleted article
	// and reports how many documents matched.
	Update(ctx context.Context, id primitive.ObjectID, upd ArticleUpdate) (int64, error)
	// SoftDelete marks the article deleted. Idempotent; deleting an already
	// deleted or unknown id is a no-op.
	SoftDelete(ctx context.Context, id primitive.ObjectID) error

	// FindOneAndIncrementViews atomically locates the single article
	// matching the filter, increments view_count by one, refreshes
	// updated_at and returns the post-increment document. Returns
	// ErrNotFound when nothing matches.
	FindOneAndIncrementViews(ctx context.Context, f ArticleFilter) (*models.Article, error)

	FindOne(ctx context.Context, f ArticleFilter, sort Sort) (*models.Article, error)
	Find(ctx context.Context, f ArticleFilter, sort Sort, skip, limit int64) ([]models.Article, error)
	Count(ctx context.Context, f ArticleFilter) (int64, error)

	// Search runs a weighted free-text query ordered by relevance score and
	// returns the page plus the total match count.
	Search(ctx context.Context, query string, f ArticleFilter, skip, limit int64) ([]models.Article, int64, error)
	EnsureSearchIndex(ctx context.Context) error

	// PublishedCategorySlugs returns the distinct category slugs referenced
	// by published, non-deleted articles.
	PublishedCategorySlugs(ctx context.Context) ([]string, error)
	// TrendingTopics groups published articles' embedded topics and returns
	// the top-N by article count with their most recent publication date.
	TrendingTopics(ctx context.Context, limit int64) ([]models.TopicTrend, error)
}

type TopicRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Topic, error)
	Insert(ctx context.Context, topic *models.Topic) error
	// IncrementArticleCount atomically bumps article_count in place.
	IncrementArticleCount(ctx context.Context, slug string) error
	List(ctx context.Context, activeOnly bool) ([]models.Topic, error)
	Update(ctx context.Context, id primitive.ObjectID, upd TopicUpdate) (int64, error)
	Disable(ctx context.Context, id primitive.ObjectID) error
}

type AuthorRepository interface {
	Insert(ctx context.Context, author *models.Author) error
	FindBySlug(ctx context.Context, slug string) (*models.Author, error)
	FindPublicBySlug(ctx context.Context, slug string) (*models.Author, error)
	List(ctx context.Context) ([]models.Author, error)
	Update(ctx context.Context, slug string, upd AuthorUpdate) (int64, error)
	// Deactivate soft-deactivates: is_active=false, is_public=false.
	Deactivate(ctx context.Context, slug string) (int64, error)
}

type CategoryRepository interface {
	Insert(ctx context.Context, category *models.Category) error
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindActiveBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context, activeOnly bool) ([]models.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, upd CategoryUpdate) (int64, error)
	Disable(ctx context.Context, id primitive.ObjectID) error
}

type PageRepository interface {
	Insert(ctx context.Context, page *models.Page) error
	FindBySlug(ctx context.Context, slug string) (*models.Page, error)
	FindActiveBySlug(ctx context.Context, slug string) (*models.Page, error)
	// List returns all pages without their content bodies.
	List(ctx context.Context) ([]models.Page, error)
	Update(ctx context.Context, slug string, upd PageUpdate) (int64, error)
}

type SubscriberRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	Insert(ctx context.Context, sub *models.Subscriber) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	List(ctx context.Context) ([]models.Subscriber, error)
}

type ContactRepository interface {
	Insert(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
}
