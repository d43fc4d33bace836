package services

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
	"github.com/wifgroup/todaysus-backend/internal/models"
)

func newArticleFixture() (*ArticleService, *fakeArticleRepo, *fakeTopicRepo) {
	articles := newFakeArticleRepo()
	topics := newFakeTopicRepo()
	log := zerolog.Nop()
	return NewArticleService(articles, NewTopicService(topics, log), log), articles, topics
}

func testInput(title string) models.ArticleInput {
	return models.ArticleInput{
		Title:       title,
		Excerpt:     "An excerpt.",
		ContentHTML: "<p>Body text.</p>",
		Status:      models.StatusPublished,
		Author:      &models.AuthorRef{Slug: "jane-doe", Name: "Jane Doe"},
		Category:    &models.CategoryRef{Slug: "economy", Name: "Economy"},
	}
}

func TestArticleCreateSyncsTopics(t *testing.T) {
	svc, _, topics := newArticleFixture()
	ctx := context.Background()

	in := testInput("First Story")
	in.Topics = []models.TopicRef{{Slug: "inflation", Name: "Inflation"}}
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	topic, err := topics.FindBySlug(ctx, "inflation")
	if err != nil {
		t.Fatalf("topic should be created on first reference: %v", err)
	}
	if topic.ArticleCount != 1 {
		t.Errorf("article_count = %d, want 1", topic.ArticleCount)
	}

	in = testInput("Second Story")
	in.Topics = []models.TopicRef{{Slug: "inflation", Name: "Inflation"}}
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	topic, _ = topics.FindBySlug(ctx, "inflation")
	if topic.ArticleCount != 2 {
		t.Errorf("article_count = %d, want 2 after second reference", topic.ArticleCount)
	}
}

func TestArticleCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _, _ := newArticleFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput("Unique Title"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Create(ctx, testInput("Unique Title")); !apperr.IsConflict(err) {
		t.Errorf("expected conflict for duplicate slug, got %v", err)
	}

	// Deleting the original keeps its slug reserved.
	if err := svc.SoftDelete(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Create(ctx, testInput("Unique Title")); !apperr.IsConflict(err) {
		t.Errorf("expected conflict after soft delete, got %v", err)
	}
}

func TestArticleEditMarksContentUpdates(t *testing.T) {
	svc, repo, _ := newArticleFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput("Editable Story"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A metadata-only edit leaves the update markers alone.
	title := "Editable Story, Revised Title"
	if err := svc.Edit(ctx, created.ID.Hex(), ArticleEdit{Title: &title}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if repo.articles[0].HasUpdate {
		t.Error("metadata edit must not set has_update")
	}

	// A content edit sets has_update and the default note.
	body := "<p>Corrected body.</p>"
	if err := svc.Edit(ctx, created.ID.Hex(), ArticleEdit{ContentHTML: &body}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got := repo.articles[0]
	if !got.HasUpdate {
		t.Error("content edit must set has_update")
	}
	if got.UpdateNote != models.DefaultUpdateNote {
		t.Errorf("update_note = %q, want default %q", got.UpdateNote, models.DefaultUpdateNote)
	}

	// An explicit note wins over the default.
	note := "Corrected the quoted figure"
	body2 := "<p>Twice corrected body.</p>"
	if err := svc.Edit(ctx, created.ID.Hex(), ArticleEdit{ContentHTML: &body2, UpdateNote: &note}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if repo.articles[0].UpdateNote != note {
		t.Errorf("update_note = %q, want %q", repo.articles[0].UpdateNote, note)
	}
}

func TestArticleEditErrors(t *testing.T) {
	svc, _, _ := newArticleFixture()
	ctx := context.Background()

	title := "x"
	if err := svc.Edit(ctx, "not-a-hex-id", ArticleEdit{Title: &title}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for bad id, got %v", err)
	}
	if err := svc.Edit(ctx, primitive.NewObjectID().Hex(), ArticleEdit{Title: &title}); !apperr.IsNotFound(err) {
		t.Errorf("expected not found for unknown id, got %v", err)
	}

	// A deleted article is not editable either.
	created, err := svc.Create(ctx, testInput("Doomed Story"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.SoftDelete(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Edit(ctx, created.ID.Hex(), ArticleEdit{Title: &title}); !apperr.IsNotFound(err) {
		t.Errorf("expected not found for deleted article, got %v", err)
	}
}

func TestArticleSoftDeleteIsIdempotent(t *testing.T) {
	svc, repo, _ := newArticleFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput("Fleeting Story"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SoftDelete(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.SoftDelete(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
	if !repo.articles[0].IsDeleted {
		t.Error("article should be marked deleted")
	}

	if _, err := svc.GetBySlug(ctx, created.Slug); !apperr.IsNotFound(err) {
		t.Errorf("deleted article must not be publicly readable, got %v", err)
	}
}

func TestArticleGetBySlugCountsViews(t *testing.T) {
	svc, repo, _ := newArticleFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput("Popular Story"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.GetBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first.ViewCount != 1 {
		t.Errorf("view_count = %d, want 1 after first read", first.ViewCount)
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.GetBySlug(ctx, created.Slug); err != nil {
				t.Errorf("concurrent get: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := repo.articles[0].ViewCount; got != readers+1 {
		t.Errorf("view_count = %d, want %d: every read must count exactly once", got, readers+1)
	}
}

func TestArticleGetBySlugIgnoresDrafts(t *testing.T) {
	svc, _, _ := newArticleFixture()
	ctx := context.Background()

	in := testInput("Unpublished Story")
	in.Status = models.StatusDraft
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetBySlug(ctx, "unpublished-story"); !apperr.IsNotFound(err) {
		t.Errorf("draft must not be publicly readable, got %v", err)
	}
}

func TestArticleGetByCategoryAndSlug(t *testing.T) {
	svc, _, _ := newArticleFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput("Scoped Story"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetByCategoryAndSlug(ctx, "economy", created.Slug); err != nil {
		t.Fatalf("get in correct category: %v", err)
	}
	if _, err := svc.GetByCategoryAndSlug(ctx, "politics", created.Slug); !apperr.IsNotFound(err) {
		t.Errorf("wrong category must 404, got %v", err)
	}
}
