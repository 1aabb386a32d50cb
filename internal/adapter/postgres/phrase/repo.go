// Package phrase stores reference phrases keyed by (id, language).
package phrase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/myenglish-dictation/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
)

var columns = []string{"id", "language", "text", "lesson_id", "created_at", "updated_at"}

// Repo provides reference phrase persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new phrase repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns the phrase text stored for id in the given language.
// Returns domain.ErrNotFound when there is none.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("reference_phrases").
		Where("id = ? AND language = ?", id, language).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get phrase query: %w", err)
	}

	p, err := scanPhrase(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "reference_phrase", key(id, language))
	}
	return p, nil
}

// Upsert inserts the phrase or replaces its text and lesson when
// (id, language) already exists. CreatedAt is preserved on update.
func (r *Repo) Upsert(ctx context.Context, p domain.ReferencePhrase) (*domain.ReferencePhrase, error) {
	query, args, err := postgres.Builder.
		Insert("reference_phrases").
		Columns("id", "language", "text", "lesson_id").
		Values(p.ID, p.Language, p.Text, p.LessonID).
		Suffix(`ON CONFLICT (id, language) DO UPDATE
			SET text = EXCLUDED.text, lesson_id = EXCLUDED.lesson_id, updated_at = now()
			RETURNING id, language, text, lesson_id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert phrase query: %w", err)
	}

	saved, err := scanPhrase(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "reference_phrase", key(p.ID, p.Language))
	}
	return saved, nil
}

// ListByLesson returns the phrases of a lesson in one language, oldest first.
func (r *Repo) ListByLesson(ctx context.Context, lessonID uuid.UUID, language string) ([]domain.ReferencePhrase, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("reference_phrases").
		Where("lesson_id = ? AND language = ?", lessonID, language).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list phrases query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list phrases by lesson: %w", err)
	}
	defer rows.Close()

	result := []domain.ReferencePhrase{}
	for rows.Next() {
		p, err := scanPhrase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan phrase: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list phrases by lesson: %w", err)
	}

	return result, nil
}

func scanPhrase(row pgx.Row) (*domain.ReferencePhrase, error) {
	var p domain.ReferencePhrase
	if err := row.Scan(&p.ID, &p.Language, &p.Text, &p.LessonID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func key(id uuid.UUID, language string) string {
	return id.String() + ":" + language
}
