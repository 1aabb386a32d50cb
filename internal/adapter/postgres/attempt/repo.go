// Package attempt stores the append-only history of dictation attempts.
package attempt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
)

// numberConstraint guards attempt numbering per (user, lesson, phrase).
const numberConstraint = "ux_dictation_attempts_number"

// maxNumberRetries bounds how often Create retries after two concurrent
// inserts computed the same attempt number.
const maxNumberRetries = 3

// The attempt number is max+1 within the same statement; the unique
// constraint rejects the loser of a concurrent race.
const createSQL = `
INSERT INTO dictation_attempts (
    id, user_id, lesson_id, phrase_id, language, attempt_number,
    reference_text, user_text, feedback, overall_score, is_correct
)
SELECT
    $1::uuid, $2::uuid, $3::uuid, $4::uuid, $5::text,
    COALESCE(MAX(attempt_number), 0) + 1,
    $6::text, $7::text, $8::jsonb, $9::numeric, $10::boolean
FROM dictation_attempts
WHERE user_id = $2::uuid AND lesson_id = $3::uuid AND phrase_id = $4::uuid
RETURNING attempt_number, created_at`

var columns = []string{
	"id", "user_id", "lesson_id", "phrase_id", "language", "attempt_number",
	"reference_text", "user_text", "feedback", "overall_score", "is_correct", "created_at",
}

// feedbackJSON is the jsonb shape of one feedback entry.
type feedbackJSON struct {
	ReferenceWord   string  `json:"reference_word"`
	WrittenWord     string  `json:"written_word"`
	SimilarityScore float64 `json:"similarity_score"`
	Position        int     `json:"position_in_phrase"`
	SoundsAlike     bool    `json:"sounds_alike,omitempty"`
}

// Repo provides attempt persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attempt repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new attempt and assigns its AttemptNumber and CreatedAt.
// A zero ID is replaced with a new UUID. The input is not modified.
func (r *Repo) Create(ctx context.Context, a domain.DictationAttempt) (*domain.DictationAttempt, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	feedback, err := encodeFeedback(a.Feedback)
	if err != nil {
		return nil, fmt.Errorf("encode feedback: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	for try := 1; ; try++ {
		err = q.QueryRow(ctx, createSQL,
			a.ID, a.UserID, a.LessonID, a.PhraseID, a.Language,
			a.ReferenceText, a.UserText, feedback, a.OverallScore, a.IsCorrect,
		).Scan(&a.AttemptNumber, &a.CreatedAt)

		if err == nil {
			return &a, nil
		}
		if try >= maxNumberRetries || !postgres.IsUniqueViolation(err, numberConstraint) {
			return nil, postgres.MapError(err, "dictation_attempt", a.ID.String())
		}
	}
}

// GetByID returns an attempt owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, attemptID uuid.UUID) (*domain.DictationAttempt, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("dictation_attempts").
		Where(squirrel.Eq{"id": attemptID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get attempt query: %w", err)
	}

	a, err := scanAttempt(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dictation_attempt", attemptID.String())
	}
	return a, nil
}

// List returns the user's attempts newest first, plus the total number of
// attempts matching the filter regardless of paging.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.AttemptFilter) ([]domain.DictationAttempt, int, error) {
	where := squirrel.Eq{"user_id": userID}
	if f.LessonID != nil {
		where["lesson_id"] = *f.LessonID
	}
	if f.PhraseID != nil {
		where["phrase_id"] = *f.PhraseID
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("dictation_attempts").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count attempts query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count attempts: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder.
		Select(columns...).
		From("dictation_attempts").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list attempts query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	attempts := []domain.DictationAttempt{}
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list attempts: %w", err)
	}

	return attempts, total, nil
}

func scanAttempt(row pgx.Row) (*domain.DictationAttempt, error) {
	var (
		a        domain.DictationAttempt
		feedback []byte
	)
	err := row.Scan(
		&a.ID, &a.UserID, &a.LessonID, &a.PhraseID, &a.Language, &a.AttemptNumber,
		&a.ReferenceText, &a.UserText, &feedback, &a.OverallScore, &a.IsCorrect, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Feedback, err = decodeFeedback(feedback)
	if err != nil {
		return nil, fmt.Errorf("decode feedback of attempt %s: %w", a.ID, err)
	}
	return &a, nil
}

func encodeFeedback(words []domain.WordFeedback) (string, error) {
	rows := make([]feedbackJSON, len(words))
	for i, w := range words {
		rows[i] = feedbackJSON{
			ReferenceWord:   w.ReferenceWord,
			WrittenWord:     w.WrittenWord,
			SimilarityScore: w.SimilarityScore,
			Position:        w.Position,
			SoundsAlike:     w.SoundsAlike,
		}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeFeedback validates the stored jsonb at the boundary: every entry must
// carry a position matching its index and a score within [0, 100].
func decodeFeedback(raw []byte) ([]domain.WordFeedback, error) {
	var rows []feedbackJSON
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	words := make([]domain.WordFeedback, len(rows))
	for i, r := range rows {
		if r.Position != i {
			return nil, fmt.Errorf("entry %d has position %d", i, r.Position)
		}
		if r.SimilarityScore < 0 || r.SimilarityScore > 100 {
			return nil, errors.New("similarity score out of range")
		}
		words[i] = domain.WordFeedback{
			ReferenceWord:   r.ReferenceWord,
			WrittenWord:     r.WrittenWord,
			SimilarityScore: r.SimilarityScore,
			Position:        r.Position,
			SoundsAlike:     r.SoundsAlike,
		}
	}
	return words, nil
}
