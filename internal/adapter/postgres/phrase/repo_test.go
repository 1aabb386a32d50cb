package phrase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres/phrase"
	"github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
)

func newRepo(t *testing.T) (*phrase.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return phrase.New(pool), pool
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedPhrase(t, pool, "en", "The quick brown fox")

	got, err := repo.GetByID(ctx, seeded.ID, "en")
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Text != seeded.Text {
		t.Errorf("Text mismatch: got %q, want %q", got.Text, seeded.Text)
	}
	if got.LessonID == nil || *got.LessonID != *seeded.LessonID {
		t.Errorf("LessonID mismatch: got %v, want %v", got.LessonID, seeded.LessonID)
	}
}

func TestRepo_GetByID_OtherLanguageNotFound(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)

	seeded := testhelper.SeedPhrase(t, pool, "en", "hello")

	_, err := repo.GetByID(context.Background(), seeded.ID, "de")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_Upsert_InsertThenUpdate(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	id := uuid.New()
	created, err := repo.Upsert(ctx, domain.ReferencePhrase{ID: id, Language: "en", Text: "first version"})
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if created.CreatedAt.IsZero() || created.LessonID != nil {
		t.Errorf("unexpected created phrase: %+v", created)
	}

	lesson := uuid.New()
	updated, err := repo.Upsert(ctx, domain.ReferencePhrase{ID: id, Language: "en", Text: "second version", LessonID: &lesson})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	if updated.Text != "second version" {
		t.Errorf("Text = %q, want second version", updated.Text)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed on update: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
	if updated.LessonID == nil || *updated.LessonID != lesson {
		t.Errorf("LessonID = %v, want %s", updated.LessonID, lesson)
	}
}

func TestRepo_Upsert_BlankTextRejected(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.Upsert(context.Background(), domain.ReferencePhrase{ID: uuid.New(), Language: "en", Text: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation from check constraint, got: %v", err)
	}
}

func TestRepo_ListByLesson(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	lesson := uuid.New()
	for _, text := range []string{"one", "two", "three"} {
		if _, err := repo.Upsert(ctx, domain.ReferencePhrase{ID: uuid.New(), Language: "en", Text: text, LessonID: &lesson}); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}
	if _, err := repo.Upsert(ctx, domain.ReferencePhrase{ID: uuid.New(), Language: "fr", Text: "un", LessonID: &lesson}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := repo.ListByLesson(ctx, lesson, "en")
	if err != nil {
		t.Fatalf("ListByLesson: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 phrases, got %d", len(got))
	}

	empty, err := repo.ListByLesson(ctx, uuid.New(), "en")
	if err != nil {
		t.Fatalf("ListByLesson empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", empty)
	}
}
