package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wifgroup/todaysus-backend/internal/models"
)

type authorRepo struct {
	col *mongo.Collection
}

func NewAuthorRepo(db *mongo.Database) AuthorRepository {
	return &authorRepo{col: db.Collection("authors")}
}

func (r *authorRepo) Insert(ctx context.Context, author *models.Author) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if author.ID.IsZero() {
		author.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, author)
	return err
}

func (r *authorRepo) findOne(ctx context.Context, filter bson.M) (*models.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var author models.Author
	err := r.col.FindOne(ctx, filter).Decode(&author)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepo) FindBySlug(ctx context.Context, slug string) (*models.Author, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *authorRepo) FindPublicBySlug(ctx context.Context, slug string) (*models.Author, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "is_active": true, "is_public": true})
}

func (r *authorRepo) List(ctx context.Context) ([]models.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	authors := []models.Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (u AuthorUpdate) setDoc() bson.M {
	set := bson.M{"updated_at": u.UpdatedAt}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.DisplayName != nil {
		set["display_name"] = *u.DisplayName
	}
	if u.Role != nil {
		set["role"] = *u.Role
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.Bio != nil {
		set["bio"] = *u.Bio
	}
	if u.ShortBio != nil {
		set["short_bio"] = *u.ShortBio
	}
	if u.Expertise != nil {
		set["expertise"] = *u.Expertise
	}
	if u.Education != nil {
		set["education"] = *u.Education
	}
	if u.ExperienceYears != nil {
		set["experience_years"] = *u.ExperienceYears
	}
	if u.Credentials != nil {
		set["credentials"] = *u.Credentials
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Social != nil {
		set["social"] = *u.Social
	}
	if u.Photo != nil {
		set["photo"] = *u.Photo
	}
	if u.SEOTitle != nil {
		set["seo_title"] = *u.SEOTitle
	}
	if u.SEODescription != nil {
		set["seo_description"] = *u.SEODescription
	}
	if u.IsActive != nil {
		set["is_active"] = *u.IsActive
	}
	if u.IsVerified != nil {
		set["is_verified"] = *u.IsVerified
	}
	if u.IsPublic != nil {
		set["is_public"] = *u.IsPublic
	}
	return set
}

func (r *authorRepo) Update(ctx context.Context, slug string, upd AuthorUpdate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$set": upd.setDoc()})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *authorRepo) Deactivate(ctx context.Context, slug string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"slug": slug},
		bson.M{"$set": bson.M{
			"is_active":  false,
			"is_public":  false,
			"updated_at": models.Now(),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
