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

type subscriberRepo struct {
	col *mongo.Collection
}

func NewSubscriberRepo(db *mongo.Database) SubscriberRepository {
	return &subscriberRepo{col: db.Collection("subscribers")}
}

func (r *subscriberRepo) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var sub models.Subscriber
	err := r.col.FindOne(ctx, bson.M{"email": models.NormalizeEmail(email)}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepo) Insert(ctx context.Context, sub *models.Subscriber) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, sub)
	return err
}

func (r *subscriberRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": models.Now()}},
	)
	return err
}

func (r *subscriberRepo) List(ctx context.Context) ([]models.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Subscriber{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
