package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/models"
	"github.com/wifgroup/todaysus-backend/internal/repository"
)

func seedArticle(t *testing.T, repo *fakeArticleRepo, a models.Article) models.Article {
	t.Helper()
	if a.Status == "" {
		a.Status = models.StatusPublished
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = models.Now()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	if err := repo.Insert(context.Background(), &a); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return a
}

func publishedAt(t time.Time) *models.Timestamp {
	return &models.Timestamp{Time: t}
}

func TestPublicListNeverLeaksDraftsOrDeleted(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewQueryService(repo, zerolog.Nop())
	ctx := context.Background()

	now := time.Now().UTC()
	seedArticle(t, repo, models.Article{Slug: "live", Status: models.StatusPublished, PublishedAt: publishedAt(now)})
	seedArticle(t, repo, models.Article{Slug: "draft", Status: models.StatusDraft})
	seedArticle(t, repo, models.Article{Slug: "gone", Status: models.StatusPublished, IsDeleted: true, PublishedAt: publishedAt(now)})

	result, err := svc.PublicList(ctx, ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(result.Data) != 1 || result.Data[0].Slug != "live" {
		t.Fatalf("public list = %+v, want only the live article", result.Data)
	}
	if result.Total != 1 {
		t.Errorf("total = %d, want 1", result.Total)
	}
}

func TestPublicListPagination(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewQueryService(repo, zerolog.Nop())
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 25; i++ {
		seedArticle(t, repo, models.Article{
			Slug:        fmt.Sprintf("story-%02d", i),
			PublishedAt: publishedAt(base.Add(-time.Duration(i) * time.Hour)),
		})
	}

	tests := []struct {
		page     int64
		wantLen  int
		wantMore bool
	}{
		{1, 10, true},
		{2, 10, true},
		{3, 5, false},
		{4, 0, false},
	}

	for _, tt := range tests {
		result, err := svc.PublicList(ctx, ListOptions{Page: tt.page, Limit: 10})
		if err != nil {
			t.Fatalf("page %d: %v", tt.page, err)
		}
		if len(result.Data) != tt.wantLen {
			t.Errorf("page %d: len = %d, want %d", tt.page, len(result.Data), tt.wantLen)
		}
		if result.HasMore != tt.wantMore {
			t.Errorf("page %d: has_more = %v, want %v", tt.page, result.HasMore, tt.wantMore)
		}
		if result.Total != 25 {
			t.Errorf("page %d: total = %d, want 25", tt.page, result.Total)
		}
	}

	// Newest first: page 1 starts at the most recent story.
	result, _ := svc.PublicList(ctx, ListOptions{Page: 1, Limit: 10})
	if result.Data[0].Slug != "story-00" {
		t.Errorf("first item = %q, want story-00", result.Data[0].Slug)
	}
}

func TestPublicListNormalizesMissingPublishedAt(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewQueryService(repo, zerolog.Nop())

	created := models.Now()
	seedArticle(t, repo, models.Article{Slug: "dateless", CreatedAt: created})

	result, err := svc.PublicList(context.Background(), ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := result.Data[0]
	if got.PublishedAt == nil || !got.PublishedAt.Equal(created.Time) {
		t.Errorf("published_at = %v, want created_at fallback %v", got.PublishedAt, created)
	}
}

func TestPublicListFilters(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewQueryService(repo, zerolog.Nop())
	ctx := context.Background()

	now := time.Now().UTC()
	featured := true
	seedArticle(t, repo, models.Article{
		Slug:        "econ-feature",
		Category:    models.CategoryRef{Slug: "economy"},
		Author:      models.AuthorRef{Slug: "jane-doe"},
		Topics:      []models.TopicRef{{Slug: "inflation"}},
		IsFeatured:  true,
		PublishedAt: publishedAt(now),
	})
	seedArticle(t, repo, models.Article{
		Slug:        "politics-story",
		Category:    models.CategoryRef{Slug: "politics"},
		Author:      models.AuthorRef{Slug: "sam-lee"},
		PublishedAt: publishedAt(now),
	})

	tests := []struct {
		name string
		opts ListOptions
		want string
	}{
		{"by category", ListOptions{CategorySlug: "economy"}, "econ-feature"},
		{"by topic", ListOptions{TopicSlug: "inflation"}, "econ-feature"},
		{"by author", ListOptions{AuthorSlug: "sam-lee"}, "politics-story"},
		{"by featured", ListOptions{Featured: &featured}, "econ-feature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.PublicList(ctx, tt.opts)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(result.Data) != 1 || result.Data[0].Slug != tt.want {
				t.Errorf("got %+v, want single %q", result.Data, tt.want)
			}
		})
	}
}

func TestAdminListIncludesDraftsByStatus(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewQueryService(repo, zerolog.Nop())
	ctx := context.Background()

	seedArticle(t, repo, models.Article{Slug: "live", Status: models.StatusPublished})
	seedArticle(t, repo, models.Article{Slug: "pending", Status: models.StatusDraft})
	seedArticle(t, repo, models.Article{Slug: "gone", Status: models.StatusPublished, IsDeleted: true})

	all, err := svc.AdminList(ctx, "")
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin list without status = %d items, want 2 (deleted stays hidden)", len(all))
	}

	drafts, err := svc.AdminList(ctx, models.StatusDraft)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Slug != "pending" {
		t.Errorf("draft filter = %+v, want only pending", drafts)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	svc := NewQueryService(newFakeArticleRepo(), zerolog.Nop())
	if _, err := svc.Search(context.Background(), "", 1, 10); !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRelated(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewQueryService(repo, zerolog.Nop())
	ctx := context.Background()

	now := time.Now().UTC()
	anchor := seedArticle(t, repo, models.Article{
		Slug:        "anchor",
		Category:    models.CategoryRef{Slug: "economy"},
		Topics:      []models.TopicRef{{Slug: "inflation"}},
		PublishedAt: publishedAt(now),
	})
	seedArticle(t, repo, models.Article{
		Slug:        "same-topic",
		Category:    models.CategoryRef{Slug: "economy"},
		Topics:      []models.TopicRef{{Slug: "inflation"}, {Slug: "fed"}},
		ViewCount:   7,
		PublishedAt: publishedAt(now),
	})
	seedArticle(t, repo, models.Article{
		Slug:        "other-category",
		Category:    models.CategoryRef{Slug: "politics"},
		Topics:      []models.TopicRef{{Slug: "inflation"}},
		PublishedAt: publishedAt(now),
	})
	seedArticle(t, repo, models.Article{
		Slug:        "no-shared-topic",
		Category:    models.CategoryRef{Slug: "economy"},
		Topics:      []models.TopicRef{{Slug: "housing"}},
		PublishedAt: publishedAt(now),
	})

	related, err := svc.Related(ctx, &anchor, 4)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 1 || related[0].Slug != "same-topic" {
		t.Errorf("related = %+v, want only same-topic", related)
	}

	// No topics means nothing to relate on.
	bare := seedArticle(t, repo, models.Article{
		Slug:        "bare",
		Category:    models.CategoryRef{Slug: "economy"},
		PublishedAt: publishedAt(now),
	})
	related, err = svc.Related(ctx, &bare, 4)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 0 {
		t.Errorf("topicless article should have no related rail, got %+v", related)
	}
}

func TestMostReadOrdersByViews(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := NewQueryService(repo, zerolog.Nop())

	now := time.Now().UTC()
	seedArticle(t, repo, models.Article{Slug: "quiet", ViewCount: 3, PublishedAt: publishedAt(now)})
	seedArticle(t, repo, models.Article{Slug: "loud", ViewCount: 90, PublishedAt: publishedAt(now)})
	seedArticle(t, repo, models.Article{Slug: "middling", ViewCount: 40, PublishedAt: publishedAt(now)})

	items, err := svc.MostRead(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("most read: %v", err)
	}
	if len(items) != 2 || items[0].Slug != "loud" || items[1].Slug != "middling" {
		t.Errorf("most read = %+v, want [loud middling]", items)
	}
}

var _ repository.ArticleRepository = (*fakeArticleRepo)(nil)
