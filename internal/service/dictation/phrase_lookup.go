package dictation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/observe"
)

// loadPhrase returns the reference phrase, consulting the cache first.
// A cache failure is treated as a miss. The Get-then-Set on a miss is not
// atomic, so a stale entry can still win a close race; it lives at most
// one phrase TTL.
func (s *Service) loadPhrase(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error) {
	cached, ok, err := s.cache.Get(ctx, id, language)
	switch {
	case err != nil:
		s.metrics.RecordCacheLookup(ctx, observe.CacheError)
		s.log.WarnContext(ctx, "phrase cache lookup failed",
			slog.String("phrase_id", id.String()),
			slog.String("language", language),
			slog.String("error", err.Error()),
		)
	case ok:
		s.metrics.RecordCacheLookup(ctx, observe.CacheHit)
		return cached, nil
	default:
		s.metrics.RecordCacheLookup(ctx, observe.CacheMiss)
	}

	phrase, err := s.phrases.GetByID(ctx, id, language)
	if err != nil {
		return nil, fmt.Errorf("get reference phrase: %w", err)
	}

	if strings.TrimSpace(phrase.Text) == "" {
		return nil, fmt.Errorf("reference phrase %s (%s) has no text: %w", id, language, domain.ErrNotFound)
	}
	if utf8.RuneCountInString(phrase.Text) > s.cfg.MaxReferenceLength {
		return nil, domain.NewValidationError("reference_text", fmt.Sprintf("max %d characters", s.cfg.MaxReferenceLength))
	}

	// A concurrent CreatePhrase may have stored a newer version while the
	// repository read was in flight; keep that one.
	if current, ok, err := s.cache.Get(ctx, id, language); err == nil && ok && current.UpdatedAt.After(phrase.UpdatedAt) {
		return current, nil
	}

	if err := s.cache.Set(ctx, *phrase); err != nil {
		s.log.WarnContext(ctx, "phrase cache store failed",
			slog.String("phrase_id", id.String()),
			slog.String("error", err.Error()),
		)
	}

	return phrase, nil
}
