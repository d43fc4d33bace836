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

type categoryRepo struct {
	col *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) CategoryRepository {
	return &categoryRepo{col: db.Collection("categories")}
}

func (r *categoryRepo) Insert(ctx context.Context, category *models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, category)
	return err
}

func (r *categoryRepo) findOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var category models.Category
	err := r.col.FindOne(ctx, filter).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *categoryRepo) FindActiveBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "is_active": true})
}

func (r *categoryRepo) List(ctx context.Context, activeOnly bool) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepo) Update(ctx context.Context, id primitive.ObjectID, upd CategoryUpdate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	set := bson.M{"updated_at": upd.UpdatedAt}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.SEOTitle != nil {
		set["seo_title"] = *upd.SEOTitle
	}
	if upd.SEODescription != nil {
		set["seo_description"] = *upd.SEODescription
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *categoryRepo) Disable(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": models.Now()}},
	)
	return err
}
