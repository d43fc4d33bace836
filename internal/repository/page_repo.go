package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wifgroup/todaysus-backend/internal/models"
)

type pageRepo struct {
	col *mongo.Collection
}

func NewPageRepo(db *mongo.Database) PageRepository {
	return &pageRepo{col: db.Collection("pages")}
}

func (r *pageRepo) Insert(ctx context.Context, page *models.Page) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if page.ID.IsZero() {
		page.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, page)
	return err
}

func (r *pageRepo) findOne(ctx context.Context, filter bson.M) (*models.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var page models.Page
	err := r.col.FindOne(ctx, filter).Decode(&page)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepo) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *pageRepo) FindActiveBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "is_active": true})
}

// List omits content bodies: the admin listing only needs metadata.
func (r *pageRepo) List(ctx context.Context) ([]models.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"content": 0})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pages := []models.Page{}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepo) Update(ctx context.Context, slug string, upd PageUpdate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	set := bson.M{"updated_at": upd.UpdatedAt}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.SEOTitle != nil {
		set["seo_title"] = *upd.SEOTitle
	}
	if upd.SEODescription != nil {
		set["seo_description"] = *upd.SEODescription
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
