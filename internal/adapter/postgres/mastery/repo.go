// Package mastery stores per-user word mastery statistics. Updates are a
// single upsert with server-side arithmetic, so concurrent attempts touching
// the same word never lose an occurrence.
package mastery

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation/scoring"
)

// applyScoreSQL folds one score into the row. Parameters:
// $1 user, $2 word, $3 language, $4 score, $5 error threshold,
// $6 average threshold, $7 min occurrences, $8 error rate.
// The SET expressions read the pre-update row.
const applyScoreSQL = `
INSERT INTO word_mastery AS m (
    user_id, word, language, occurrences, error_count, score_sum, last_score, needs_practice, updated_at
)
VALUES (
    $1, $2, $3, 1,
    CASE WHEN $4::float8 < $5::float8 THEN 1 ELSE 0 END,
    $4::float8, $4::float8,
    $4::float8 < $6::float8,
    now()
)
ON CONFLICT (user_id, word, language) DO UPDATE SET
    occurrences = m.occurrences + 1,
    error_count = m.error_count + EXCLUDED.error_count,
    score_sum   = m.score_sum + EXCLUDED.score_sum,
    last_score  = EXCLUDED.last_score,
    needs_practice =
        (m.score_sum + EXCLUDED.score_sum) / (m.occurrences + 1) < $6::float8
        OR (
            m.occurrences + 1 > $7::int
            AND (m.error_count + EXCLUDED.error_count)::float8 / (m.occurrences + 1) > $8::float8
        ),
    updated_at = now()
RETURNING user_id, word, language, occurrences, error_count, score_sum, last_score, needs_practice, updated_at`

var columns = []string{
	"user_id", "word", "language", "occurrences", "error_count",
	"score_sum", "last_score", "needs_practice", "updated_at",
}

// Repo provides word mastery persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mastery repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ApplyScore records one occurrence of word with the given similarity score
// and returns the updated record. Each call counts once; replaying an attempt
// double-counts it.
func (r *Repo) ApplyScore(ctx context.Context, userID uuid.UUID, word, language string, score float64) (*domain.WordMasteryRecord, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, applyScoreSQL,
		userID, word, language, score,
		scoring.MasteryErrorThreshold,
		scoring.PracticeAverageThreshold,
		scoring.PracticeMinOccurrences,
		scoring.PracticeErrorRate,
	)

	rec, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word_mastery", word)
	}
	return rec, nil
}

// GetByWords returns the user's records for the given words in one language.
// Words without a record are absent from the result.
func (r *Repo) GetByWords(ctx context.Context, userID uuid.UUID, language string, words []string) ([]domain.WordMasteryRecord, error) {
	if len(words) == 0 {
		return []domain.WordMasteryRecord{}, nil
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("word_mastery").
		Where(squirrel.Eq{"user_id": userID, "language": language, "word": words}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get mastery query: %w", err)
	}

	return r.query(ctx, query, args)
}

// List returns the user's records, weakest average first, and the total count
// matching the filter. An empty Language matches every language.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.MasteryFilter) ([]domain.WordMasteryRecord, int, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.Language != "" {
		where = append(where, squirrel.Eq{"language": f.Language})
	}
	if f.NeedsPracticeOnly {
		where = append(where, squirrel.Eq{"needs_practice": true})
	}

	countSQL, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("word_mastery").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count mastery query: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count mastery: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder.
		Select(columns...).
		From("word_mastery").
		Where(where).
		OrderBy("score_sum / GREATEST(occurrences, 1) ASC", "word ASC", "language ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list mastery query: %w", err)
	}

	records, err := r.query(ctx, listSQL, listArgs)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *Repo) query(ctx context.Context, sql string, args []any) ([]domain.WordMasteryRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query mastery: %w", err)
	}
	defer rows.Close()

	records := []domain.WordMasteryRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mastery: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query mastery: %w", err)
	}

	return records, nil
}

func scanRecord(row pgx.Row) (*domain.WordMasteryRecord, error) {
	var rec domain.WordMasteryRecord
	err := row.Scan(
		&rec.UserID, &rec.Word, &rec.Language, &rec.Occurrences, &rec.ErrorCount,
		&rec.ScoreSum, &rec.LastScore, &rec.NeedsPractice, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
