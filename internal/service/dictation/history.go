package dictation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/pkg/ctxutil"
)

// GetAttempt returns one of the current user's attempts.
func (s *Service) GetAttempt(ctx context.Context, attemptID uuid.UUID) (*domain.DictationAttempt, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if attemptID == uuid.Nil {
		return nil, domain.NewValidationError("attempt_id", "required")
	}

	attempt, err := s.attempts.GetByID(ctx, userID, attemptID)
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}

	return attempt, nil
}

// ListAttempts returns the current user's attempts, newest first, and the
// total number matching the filter.
func (s *Service) ListAttempts(ctx context.Context, input ListAttemptsInput) ([]domain.DictationAttempt, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.HistoryMaxLimit); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	attempts, total, err := s.attempts.List(ctx, userID, domain.AttemptFilter{
		LessonID: input.LessonID,
		PhraseID: input.PhraseID,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list attempts: %w", err)
	}

	return attempts, total, nil
}
