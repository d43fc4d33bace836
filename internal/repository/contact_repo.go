package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wifgroup/todaysus-backend/internal/models"
)

type contactRepo struct {
	col *mongo.Collection
}

func NewContactRepo(db *mongo.Database) ContactRepository {
	return &contactRepo{col: db.Collection("contact_messages")}
}

func (r *contactRepo) Insert(ctx context.Context, msg *models.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, msg)
	return err
}

func (r *contactRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
