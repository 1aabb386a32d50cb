package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
)

// SeedPhrase inserts a reference phrase with a fresh ID and lesson.
func SeedPhrase(t *testing.T, pool *pgxpool.Pool, language, text string) domain.ReferencePhrase {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lessonID := uuid.New()
	p := domain.ReferencePhrase{
		ID:        uuid.New(),
		Language:  language,
		Text:      text,
		LessonID:  &lessonID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reference_phrases (id, language, text, lesson_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Language, p.Text, p.LessonID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPhrase: %v", err)
	}

	return p
}

// SeedMastery inserts a word_mastery row as given. NeedsPractice is stored
// verbatim, not recomputed.
func SeedMastery(t *testing.T, pool *pgxpool.Pool, rec domain.WordMasteryRecord) domain.WordMasteryRecord {
	t.Helper()

	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO word_mastery
		    (user_id, word, language, occurrences, error_count, score_sum, last_score, needs_practice, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.UserID, rec.Word, rec.Language, rec.Occurrences, rec.ErrorCount,
		rec.ScoreSum, rec.LastScore, rec.NeedsPractice, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMastery: %v", err)
	}

	return rec
}
