package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
)

// fakeArticleRepo is an in-memory ArticleRepository that interprets filters
// and sorts the same way the Mongo implementation does, so service semantics
// can be tested without a store.
type fakeArticleRepo struct {
	mu       sync.Mutex
	articles []models.Article

	insertErr error
	findErr   error
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{}
}

func (r *fakeArticleRepo) Insert(_ context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	if article.ID.IsZero() {
		article.ID = primitive.NewObjectID()
	}
	r.articles = append(r.articles, *article)
	return nil
}

func matches(a models.Article, f repository.ArticleFilter) bool {
	if !f.IncludeDeleted && a.IsDeleted {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Slug != "" && a.Slug != f.Slug {
		return false
	}
	if f.CategorySlug != "" && a.Category.Slug != f.CategorySlug {
		return false
	}
	if f.AuthorSlug != "" && a.Author.Slug != f.AuthorSlug {
		return false
	}
	if f.TopicSlug != "" {
		found := false
		for _, t := range a.Topics {
			if t.Slug == f.TopicSlug {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.TopicSlugsAny) > 0 {
		found := false
		for _, t := range a.Topics {
			for _, want := range f.TopicSlugsAny {
				if t.Slug == want {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	if f.Featured != nil && a.IsFeatured != *f.Featured {
		return false
	}
	if !f.ExcludeID.IsZero() && a.ID == f.ExcludeID {
		return false
	}
	if !f.PublishedSince.IsZero() {
		if a.PublishedAt == nil || a.PublishedAt.Before(f.PublishedSince) {
			return false
		}
	}
	return true
}

func sortArticles(items []models.Article, s repository.Sort) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch s {
		case repository.SortViewCountDesc:
			return a.ViewCount > b.ViewCount
		case repository.SortUpdatedDesc:
			return a.UpdatedAt.After(b.UpdatedAt.Time)
		case repository.SortCreatedDesc:
			return a.CreatedAt.After(b.CreatedAt.Time)
		case repository.SortViewsThenPublishedDesc:
			if a.ViewCount != b.ViewCount {
				return a.ViewCount > b.ViewCount
			}
			return a.DisplayPublishedAt().After(b.DisplayPublishedAt().Time)
		default:
			return a.DisplayPublishedAt().After(b.DisplayPublishedAt().Time)
		}
	})
}

func (r *fakeArticleRepo) filtered(f repository.ArticleFilter, s repository.Sort) []models.Article {
	var out []models.Article
	for _, a := range r.articles {
		if matches(a, f) {
			out = append(out, a)
		}
	}
	sortArticles(out, s)
	return out
}

func (r *fakeArticleRepo) Update(_ context.Context, id primitive.ObjectID, upd repository.ArticleUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		a := &r.articles[i]
		if a.ID != id || a.IsDeleted {
			continue
		}
		if upd.Title != nil {
			a.Title = *upd.Title
		}
		if upd.Excerpt != nil {
			a.Excerpt = *upd.Excerpt
		}
		if upd.ContentHTML != nil {
			a.ContentHTML = *upd.ContentHTML
		}
		if upd.Status != nil {
			a.Status = *upd.Status
		}
		if upd.Topics != nil {
			a.Topics = *upd.Topics
		}
		if upd.IsFeatured != nil {
			a.IsFeatured = *upd.IsFeatured
		}
		if upd.HasUpdate != nil {
			a.HasUpdate = *upd.HasUpdate
		}
		if upd.UpdateNote != nil {
			a.UpdateNote = *upd.UpdateNote
		}
		if upd.PublishedAt != nil {
			a.PublishedAt = upd.PublishedAt
		}
		a.UpdatedAt = upd.UpdatedAt
		return 1, nil
	}
	return 0, nil
}

func (r *fakeArticleRepo) SoftDelete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles[i].IsDeleted = true
		}
	}
	return nil
}

func (r *fakeArticleRepo) FindOneAndIncrementViews(_ context.Context, f repository.ArticleFilter) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if matches(r.articles[i], f) {
			r.articles[i].ViewCount++
			r.articles[i].UpdatedAt = models.Now()
			a := r.articles[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeArticleRepo) FindOne(_ context.Context, f repository.ArticleFilter, s repository.Sort) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.filtered(f, s)
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}
	a := items[0]
	return &a, nil
}

func (r *fakeArticleRepo) Find(_ context.Context, f repository.ArticleFilter, s repository.Sort, skip, limit int64) ([]models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	items := r.filtered(f, s)
	if skip >= int64(len(items)) {
		return []models.Article{}, nil
	}
	items = items[skip:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeArticleRepo) Count(_ context.Context, f repository.ArticleFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.articles {
		if matches(a, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeArticleRepo) Search(_ context.Context, query string, f repository.ArticleFilter, skip, limit int64) ([]models.Article, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var hits []models.Article
	for _, a := range r.articles {
		if matches(a, f) && strings.Contains(strings.ToLower(a.Title), strings.ToLower(query)) {
			hits = append(hits, a)
		}
	}
	total := int64(len(hits))
	if skip >= total {
		return []models.Article{}, total, nil
	}
	hits = hits[skip:]
	if limit > 0 && limit < int64(len(hits)) {
		hits = hits[:limit]
	}
	return hits, total, nil
}

func (r *fakeArticleRepo) EnsureSearchIndex(context.Context) error { return nil }

func (r *fakeArticleRepo) PublishedCategorySlugs(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, a := range r.articles {
		if !matches(a, repository.PublishedFilter()) || a.Category.Slug == "" {
			continue
		}
		if !seen[a.Category.Slug] {
			seen[a.Category.Slug] = true
			out = append(out, a.Category.Slug)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeArticleRepo) TrendingTopics(_ context.Context, limit int64) ([]models.TopicTrend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]*models.TopicTrend{}
	for _, a := range r.articles {
		if !matches(a, repository.PublishedFilter()) {
			continue
		}
		for _, t := range a.Topics {
			trend, ok := counts[t.Slug]
			if !ok {
				trend = &models.TopicTrend{Slug: t.Slug, Name: t.Name}
				counts[t.Slug] = trend
			}
			trend.ArticleCount++
			if a.PublishedAt != nil && a.PublishedAt.After(trend.LastPublished.Time) {
				trend.LastPublished = *a.PublishedAt
			}
		}
	}

	out := make([]models.TopicTrend, 0, len(counts))
	for _, t := range counts {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArticleCount > out[j].ArticleCount })
	if limit > 0 && limit < int64(len(out)) {
		out = out[:limit]
	}
	return out, nil
}

// fakeTopicRepo implements TopicRepository over a slug-keyed map.
type fakeTopicRepo struct {
	mu     sync.Mutex
	topics map[string]*models.Topic
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: map[string]*models.Topic{}}
}

func (r *fakeTopicRepo) FindBySlug(_ context.Context, slug string) (*models.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topics[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTopicRepo) Insert(_ context.Context, topic *models.Topic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if topic.ID.IsZero() {
		topic.ID = primitive.NewObjectID()
	}
	cp := *topic
	r.topics[topic.Slug] = &cp
	return nil
}

func (r *fakeTopicRepo) IncrementArticleCount(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topics[slug]
	if !ok {
		return repository.ErrNotFound
	}
	t.ArticleCount++
	return nil
}

func (r *fakeTopicRepo) List(_ context.Context, activeOnly bool) ([]models.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Topic
	for _, t := range r.topics {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (r *fakeTopicRepo) Update(_ context.Context, id primitive.ObjectID, upd repository.TopicUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.topics {
		if t.ID != id {
			continue
		}
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.IsActive != nil {
			t.IsActive = *upd.IsActive
		}
		t.UpdatedAt = upd.UpdatedAt
		return 1, nil
	}
	return 0, nil
}

func (r *fakeTopicRepo) Disable(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.topics {
		if t.ID == id {
			t.IsActive = false
		}
	}
	return nil
}

// fakeSubscriberRepo implements SubscriberRepository over an email-keyed map.
type fakeSubscriberRepo struct {
	mu   sync.Mutex
	subs map[string]*models.Subscriber
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{subs: map[string]*models.Subscriber{}}
}

func (r *fakeSubscriberRepo) FindByEmail(_ context.Context, email string) (*models.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubscriberRepo) Insert(_ context.Context, sub *models.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	cp := *sub
	r.subs[sub.Email] = &cp
	return nil
}

func (r *fakeSubscriberRepo) SetStatus(_ context.Context, id primitive.ObjectID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subs {
		if s.ID == id {
			s.Status = status
			s.UpdatedAt = models.Now()
		}
	}
	return nil
}

func (r *fakeSubscriberRepo) List(context.Context) ([]models.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Subscriber
	for _, s := range r.subs {
		out = append(out, *s)
	}
	return out, nil
}
