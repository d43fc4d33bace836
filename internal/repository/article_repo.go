package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wifgroup/todaysus-backend/internal/models"
)

const queryTimeout = 10 * time.Second

// searchIndexName is the weighted text index Search relies on. It is created
// out-of-band via EnsureSearchIndex, not at startup.
const searchIndexName = "articles_text_search_index"

type articleRepo struct {
	col *mongo.Collection
}

func NewArticleRepo(db *mongo.Database) ArticleRepository {
	return &articleRepo{col: db.Collection("articles")}
}

func (f ArticleFilter) toBSON() bson.M {
	q := bson.M{}
	if !f.IncludeDeleted {
		q["is_deleted"] = false
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Slug != "" {
		q["slug"] = f.Slug
	}
	if f.CategorySlug != "" {
		q["category.slug"] = f.CategorySlug
	}
	if f.TopicSlug != "" {
		q["topics.slug"] = f.TopicSlug
	}
	if len(f.TopicSlugsAny) > 0 {
		q["topics.slug"] = bson.M{"$in": f.TopicSlugsAny}
	}
	if f.AuthorSlug != "" {
		q["author.slug"] = f.AuthorSlug
	}
	if f.Featured != nil {
		q["is_featured"] = *f.Featured
	}
	if !f.ExcludeID.IsZero() {
		q["_id"] = bson.M{"$ne": f.ExcludeID}
	}
	if !f.PublishedSince.IsZero() {
		q["published_at"] = bson.M{"$gte": f.PublishedSince}
	}
	return q
}

func sortDoc(s Sort) bson.D {
	switch s {
	case SortViewCountDesc:
		return bson.D{{Key: "view_count", Value: -1}}
	case SortUpdatedDesc:
		return bson.D{{Key: "updated_at", Value: -1}}
	case SortCreatedDesc:
		return bson.D{{Key: "created_at", Value: -1}}
	case SortViewsThenPublishedDesc:
		return bson.D{{Key: "view_count", Value: -1}, {Key: "published_at", Value: -1}}
	default:
		return bson.D{{Key: "published_at", Value: -1}}
	}
}

func (u ArticleUpdate) setDoc() bson.M {
	set := bson.M{"updated_at": u.UpdatedAt}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Excerpt != nil {
		set["excerpt"] = *u.Excerpt
	}
	if u.ContentHTML != nil {
		set["content_html"] = *u.ContentHTML
	}
	if u.FeaturedImage != nil {
		set["featured_image"] = *u.FeaturedImage
	}
	if u.ImageCaption != nil {
		set["image_caption"] = *u.ImageCaption
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.SEOTitle != nil {
		set["seo_title"] = *u.SEOTitle
	}
	if u.SEODescription != nil {
		set["seo_description"] = *u.SEODescription
	}
	if u.Author != nil {
		set["author"] = *u.Author
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Topics != nil {
		set["topics"] = *u.Topics
	}
	if u.IsFeatured != nil {
		set["is_featured"] = *u.IsFeatured
	}
	if u.HasUpdate != nil {
		set["has_update"] = *u.HasUpdate
	}
	if u.UpdateNote != nil {
		set["update_note"] = *u.UpdateNote
	}
	if u.PublishedAt != nil {
		set["published_at"] = *u.PublishedAt
	}
	return set
}

func (r *articleRepo) Insert(ctx context.Context, article *models.Article) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if article.ID.IsZero() {
		article.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, article)
	return err
}

func (r *articleRepo) Update(ctx context.Context, id primitive.ObjectID, upd ArticleUpdate) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "is_deleted": false},
		bson.M{"$set": upd.setDoc()},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *articleRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": models.Now()}},
	)
	return err
}

func (r *articleRepo) FindOneAndIncrementViews(ctx context.Context, f ArticleFilter) (*models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var article models.Article
	err := r.col.FindOneAndUpdate(ctx,
		f.toBSON(),
		bson.M{
			"$inc": bson.M{"view_count": 1},
			"$set": bson.M{"updated_at": models.Now()},
		},
		opts,
	).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepo) FindOne(ctx context.Context, f ArticleFilter, sort Sort) (*models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(sortDoc(sort))

	var article models.Article
	err := r.col.FindOne(ctx, f.toBSON(), opts).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepo) Find(ctx context.Context, f ArticleFilter, sort Sort, skip, limit int64) ([]models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(sortDoc(sort))
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.col.Find(ctx, f.toBSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	articles := []models.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepo) Count(ctx context.Context, f ArticleFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, f.toBSON())
}

func (r *articleRepo) Search(ctx context.Context, query string, f ArticleFilter, skip, limit int64) ([]models.Article, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := f.toBSON()
	filter["$text"] = bson.M{"$search": query}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	articles := []models.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepo) EnsureSearchIndex(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "excerpt", Value: "text"},
			{Key: "content_html", Value: "text"},
		},
		Options: options.Index().
			SetName(searchIndexName).
			SetWeights(bson.M{
				"title":        10,
				"excerpt":      5,
				"content_html": 1,
			}),
	}

	_, err := r.col.Indexes().CreateOne(ctx, model)
	return err
}

func (r *articleRepo) PublishedCategorySlugs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	values, err := r.col.Distinct(ctx, "category.slug", PublishedFilter().toBSON())
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs, nil
}

func (r *articleRepo) TrendingTopics(ctx context.Context, limit int64) ([]models.TopicTrend, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": PublishedFilter().toBSON()},
		{"$unwind": "$topics"},
		{"$group": bson.M{
			"_id":            "$topics.slug",
			"name":           bson.M{"$first": "$topics.name"},
			"article_count":  bson.M{"$sum": 1},
			"last_published": bson.M{"$max": "$published_at"},
		}},
		{"$sort": bson.M{"article_count": -1}},
		{"$limit": limit},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trends := []models.TopicTrend{}
	if err := cursor.All(ctx, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}
