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

type topicRepo struct {
	col *mongo.Collection
}

func NewTopicRepo(db *mongo.Database) TopicRepository {
	return &topicRepo{col: db.Collection("topics")}
}

func (r *topicRepo) FindBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var topic models.Topic
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&topic)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepo) Insert(ctx context.Context, topic *models.Topic) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if topic.ID.IsZero() {
		topic.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, topic)
	return err
}

// IncrementArticleCount uses $inc so concurrent article creations
// referencing the same topic never lose an update.
func (r *topicRepo) IncrementArticleCount(ctx context.Context, slug string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"slug": slug},
		bson.M{
			"$inc": bson.M{"article_count": 1},
			"$set": bson.M{"updated_at": models.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *topicRepo) List(ctx context.Context, activeOnly bool) ([]models.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	topics := []models.Topic{}
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepo) Update(ctx context.Context, id primitive.ObjectID, upd TopicUpdate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	set := bson.M{"updated_at": upd.UpdatedAt}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
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

func (r *topicRepo) Disable(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": models.Now()}},
	)
	return err
}
