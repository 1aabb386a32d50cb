package dictation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/pkg/ctxutil"
)

// GetPhrase returns a reference phrase. Any authenticated user may read it.
func (s *Service) GetPhrase(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if errs := validatePhraseRef(nil, id, language); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	return s.loadPhrase(ctx, id, language)
}

// ListLessonPhrases returns the phrases of a lesson in one language.
func (s *Service) ListLessonPhrases(ctx context.Context, lessonID uuid.UUID, language string) ([]domain.ReferencePhrase, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if errs := validatePhraseRef(nil, lessonID, language); len(errs) > 0 {
		for i := range errs {
			if errs[i].Field == "phrase_id" {
				errs[i].Field = "lesson_id"
			}
		}
		return nil, domain.NewValidationErrors(errs)
	}

	phrases, err := s.phrases.ListByLesson(ctx, lessonID, language)
	if err != nil {
		return nil, fmt.Errorf("list lesson phrases: %w", err)
	}
	return phrases, nil
}

// CreatePhrase stores a reference phrase, replacing the text of an existing
// (id, language). Only admins may write phrases.
func (s *Service) CreatePhrase(ctx context.Context, input CreatePhraseInput) (*domain.ReferencePhrase, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.cfg.MaxReferenceLength); err != nil {
		return nil, err
	}

	phrase, err := s.phrases.Upsert(ctx, toPhrase(input))
	if err != nil {
		return nil, fmt.Errorf("save reference phrase: %w", err)
	}

	s.refresh(ctx, *phrase)

	s.log.InfoContext(ctx, "reference phrase saved",
		slog.String("user_id", userID.String()),
		slog.String("phrase_id", phrase.ID.String()),
		slog.String("language", phrase.Language),
	)

	return phrase, nil
}

// ImportPhrases validates every phrase, then stores them all in one
// transaction. It is meant for trusted tooling and does not check roles.
func (s *Service) ImportPhrases(ctx context.Context, inputs []CreatePhraseInput) (int, error) {
	var errs []domain.FieldError
	for i, in := range inputs {
		if err := in.Validate(s.cfg.MaxReferenceLength); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				for _, fe := range ve.Errors {
					errs = append(errs, domain.FieldError{
						Field:   fmt.Sprintf("phrases[%d].%s", i, fe.Field),
						Message: fe.Message,
					})
				}
			}
		}
	}
	if len(errs) > 0 {
		return 0, domain.NewValidationErrors(errs)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, in := range inputs {
			if _, err := s.phrases.Upsert(ctx, toPhrase(in)); err != nil {
				return fmt.Errorf("save reference phrase %s (%s): %w", in.ID, in.Language, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, in := range inputs {
		s.invalidate(ctx, in.ID, in.Language)
	}

	s.log.InfoContext(ctx, "reference phrases imported", slog.Int("count", len(inputs)))

	return len(inputs), nil
}

// refresh writes the saved phrase through to the cache, falling back to
// dropping the entry when the write fails.
func (s *Service) refresh(ctx context.Context, p domain.ReferencePhrase) {
	if err := s.cache.Set(ctx, p); err != nil {
		s.log.WarnContext(ctx, "phrase cache refresh failed",
			slog.String("phrase_id", p.ID.String()),
			slog.String("language", p.Language),
			slog.String("error", err.Error()),
		)
		s.invalidate(ctx, p.ID, p.Language)
	}
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID, language string) {
	if err := s.cache.Delete(ctx, id, language); err != nil {
		s.log.WarnContext(ctx, "phrase cache invalidation failed",
			slog.String("phrase_id", id.String()),
			slog.String("language", language),
			slog.String("error", err.Error()),
		)
	}
}

func toPhrase(in CreatePhraseInput) domain.ReferencePhrase {
	return domain.ReferencePhrase{
		ID:       in.ID,
		Language: in.Language,
		Text:     strings.TrimSpace(in.Text),
		LessonID: in.LessonID,
	}
}
