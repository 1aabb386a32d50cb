// Package dictation implements the dictation use cases: scoring a user's
// transcription against a reference phrase, storing the attempt, and keeping
// per-word spelling mastery up to date.
package dictation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/observe"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type phraseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error)
	Upsert(ctx context.Context, p domain.ReferencePhrase) (*domain.ReferencePhrase, error)
	ListByLesson(ctx context.Context, lessonID uuid.UUID, language string) ([]domain.ReferencePhrase, error)
}

type attemptRepo interface {
	Create(ctx context.Context, a domain.DictationAttempt) (*domain.DictationAttempt, error)
	GetByID(ctx context.Context, userID, attemptID uuid.UUID) (*domain.DictationAttempt, error)
	List(ctx context.Context, userID uuid.UUID, f domain.AttemptFilter) ([]domain.DictationAttempt, int, error)
}

type masteryRepo interface {
	ApplyScore(ctx context.Context, userID uuid.UUID, word, language string, score float64) (*domain.WordMasteryRecord, error)
	GetByWords(ctx context.Context, userID uuid.UUID, language string, words []string) ([]domain.WordMasteryRecord, error)
	List(ctx context.Context, userID uuid.UUID, f domain.MasteryFilter) ([]domain.WordMasteryRecord, int, error)
}

type phraseCache interface {
	Get(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, bool, error)
	Set(ctx context.Context, p domain.ReferencePhrase) error
	Delete(ctx context.Context, id uuid.UUID, language string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the input limits of the service.
type Config struct {
	MaxInputLength     int // runes
	MaxReferenceLength int // runes
	HistoryMaxLimit    int
	MasteryWorkers     int
	// MasteryTimeout bounds the mastery updates of one attempt. They do not
	// stop when the request context is cancelled.
	MasteryTimeout time.Duration
}

// DefaultConfig returns the limits used when none are configured.
func DefaultConfig() Config {
	return Config{
		MaxInputLength:     2000,
		MaxReferenceLength: 2000,
		HistoryMaxLimit:    200,
		MasteryWorkers:     4,
		MasteryTimeout:     5 * time.Second,
	}
}

// Service implements the dictation business logic.
type Service struct {
	phrases   phraseRepo
	attempts  attemptRepo
	masteries masteryRepo
	cache     phraseCache
	tx        txManager
	metrics   *observe.Metrics
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new Dictation service.
func NewService(
	log *slog.Logger,
	phrases phraseRepo,
	attempts attemptRepo,
	masteries masteryRepo,
	cache phraseCache,
	tx txManager,
	metrics *observe.Metrics,
	cfg Config,
) *Service {
	def := DefaultConfig()
	if cfg.MaxInputLength <= 0 {
		cfg.MaxInputLength = def.MaxInputLength
	}
	if cfg.MaxReferenceLength <= 0 {
		cfg.MaxReferenceLength = def.MaxReferenceLength
	}
	if cfg.HistoryMaxLimit <= 0 {
		cfg.HistoryMaxLimit = def.HistoryMaxLimit
	}
	if cfg.MasteryWorkers <= 0 {
		cfg.MasteryWorkers = def.MasteryWorkers
	}
	if cfg.MasteryTimeout <= 0 {
		cfg.MasteryTimeout = def.MasteryTimeout
	}

	return &Service{
		phrases:   phrases,
		attempts:  attempts,
		masteries: masteries,
		cache:     cache,
		tx:        tx,
		metrics:   metrics,
		cfg:       cfg,
		log:       log.With("service", "dictation"),
	}
}
