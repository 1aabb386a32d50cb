package dictation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/pkg/ctxutil"
)

// ListMastery returns the current user's word mastery, weakest first.
func (s *Service) ListMastery(ctx context.Context, input ListMasteryInput) ([]domain.WordMasteryRecord, int, error) {
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

	records, total, err := s.masteries.List(ctx, userID, domain.MasteryFilter{
		Language:          input.Language,
		NeedsPracticeOnly: input.NeedsPracticeOnly,
		Limit:             limit,
		Offset:            input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list word mastery: %w", err)
	}

	return records, total, nil
}
