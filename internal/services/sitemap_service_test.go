package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wifgroup/todaysus-backend/internal/cache"
	"github.com/wifgroup/todaysus-backend/internal/models"
)

func newSitemapFixture() (*SitemapService, *fakeArticleRepo) {
	repo := newFakeArticleRepo()
	return NewSitemapService(repo, cache.New(nil), zerolog.Nop()), repo
}

func TestSitemapSnapshot(t *testing.T) {
	svc, repo := newSitemapFixture()
	ctx := context.Background()

	now := time.Now().UTC()
	seedArticle(t, repo, models.Article{
		Slug:        "econ-one",
		Category:    models.CategoryRef{Slug: "economy"},
		PublishedAt: publishedAt(now),
	})
	seedArticle(t, repo, models.Article{
		Slug:        "econ-two",
		Category:    models.CategoryRef{Slug: "economy"},
		PublishedAt: publishedAt(now),
	})
	seedArticle(t, repo, models.Article{
		Slug:        "politics-one",
		Category:    models.CategoryRef{Slug: "politics"},
		PublishedAt: publishedAt(now),
	})
	// Drafts and slugless documents stay out of the feed.
	seedArticle(t, repo, models.Article{Slug: "draft", Status: models.StatusDraft, Category: models.CategoryRef{Slug: "economy"}})
	seedArticle(t, repo, models.Article{Slug: "", Category: models.CategoryRef{Slug: "economy"}, PublishedAt: publishedAt(now)})

	snapshot, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if len(snapshot.Categories) != 2 {
		t.Errorf("categories = %v, want the two published ones", snapshot.Categories)
	}
	if len(snapshot.Articles) != 3 {
		t.Errorf("articles = %d entries, want 3", len(snapshot.Articles))
	}
	if len(snapshot.StaticPages) == 0 {
		t.Error("static pages must always be present")
	}
	for _, e := range snapshot.Articles {
		if e.LastMod.IsZero() {
			t.Errorf("entry %q has zero lastmod", e.Slug)
		}
	}
}

func TestNewsSnapshotWindow(t *testing.T) {
	svc, repo := newSitemapFixture()
	ctx := context.Background()

	now := time.Now().UTC()
	seedArticle(t, repo, models.Article{
		Slug:        "fresh",
		Title:       "Fresh Story",
		Category:    models.CategoryRef{Slug: "economy"},
		PublishedAt: publishedAt(now.Add(-24 * time.Hour)),
	})
	seedArticle(t, repo, models.Article{
		Slug:        "stale",
		Title:       "Stale Story",
		Category:    models.CategoryRef{Slug: "economy"},
		PublishedAt: publishedAt(now.Add(-30 * 24 * time.Hour)),
	})

	entries, err := svc.NewsSnapshot(ctx)
	if err != nil {
		t.Fatalf("news snapshot: %v", err)
	}
	if len(entries) != 1 || entries[0].Slug != "fresh" {
		t.Errorf("news entries = %+v, want only the fresh story", entries)
	}
}

func TestTrendingTopics(t *testing.T) {
	svc, repo := newSitemapFixture()
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		seedArticle(t, repo, models.Article{
			Slug:        "inflation-" + string(rune('a'+i)),
			Topics:      []models.TopicRef{{Slug: "inflation", Name: "Inflation"}},
			PublishedAt: publishedAt(now),
		})
	}
	seedArticle(t, repo, models.Article{
		Slug:        "housing-a",
		Topics:      []models.TopicRef{{Slug: "housing", Name: "Housing"}},
		PublishedAt: publishedAt(now),
	})

	trends, err := svc.TrendingTopics(ctx, 10)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(trends) != 2 {
		t.Fatalf("trends = %+v, want 2 topics", trends)
	}
	if trends[0].Slug != "inflation" || trends[0].ArticleCount != 3 {
		t.Errorf("top trend = %+v, want inflation with 3 articles", trends[0])
	}
}
