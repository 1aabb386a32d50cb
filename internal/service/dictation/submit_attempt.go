package dictation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation/scoring"
	"github.com/heartmarshall/myenglish-dictation/pkg/ctxutil"
)

// SubmitAttempt scores the user's transcription against the reference
// phrase, stores the attempt and folds every reference word's score into the
// user's word mastery.
//
// Failing to store the attempt fails the call. A failed mastery update is
// logged and reported in FailedWords; the remaining words are still updated.
func (s *Service) SubmitAttempt(ctx context.Context, input SubmitAttemptInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxInputLength); err != nil {
		return nil, err
	}

	phrase, err := s.loadPhrase(ctx, input.PhraseID, input.Language)
	if err != nil {
		return nil, err
	}

	userText := *input.UserText
	res := scoring.Score(phrase.Text, userText)
	wer := scoring.WordErrorRate(phrase.Text, userText)
	correct := scoring.IsCorrect(res.Overall)

	attempt, err := s.attempts.Create(ctx, domain.DictationAttempt{
		ID:            uuid.New(),
		UserID:        userID,
		LessonID:      input.LessonID,
		PhraseID:      input.PhraseID,
		Language:      input.Language,
		ReferenceText: phrase.Text,
		UserText:      userText,
		Feedback:      toFeedback(res.Words),
		OverallScore:  res.Overall,
		IsCorrect:     correct,
	})
	if err != nil {
		return nil, &domain.PersistenceError{Op: "save attempt", Err: err}
	}

	s.metrics.RecordAttempt(ctx, input.Language, correct, res.Overall)

	// The attempt is already stored, so mastery is updated even if the caller
	// goes away; the timeout bounds how long that may take.
	mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.MasteryTimeout)
	defer cancel()
	mastery, failed := s.applyMastery(mctx, userID, input.Language, res.Words)

	s.log.InfoContext(ctx, "dictation attempt scored",
		slog.String("user_id", userID.String()),
		slog.String("attempt_id", attempt.ID.String()),
		slog.String("phrase_id", input.PhraseID.String()),
		slog.Int("attempt_number", attempt.AttemptNumber),
		slog.Float64("score", res.Overall),
		slog.Int("failed_words", len(failed)),
	)

	return &SubmitResult{
		Attempt:     attempt,
		IsCorrect:   correct,
		WER:         wer,
		Mastery:     mastery,
		FailedWords: failed,
	}, nil
}

// applyMastery updates mastery for every position that has a reference word.
// It returns one record per distinct word, in order of first appearance, and
// the distinct words whose update failed.
func (s *Service) applyMastery(ctx context.Context, userID uuid.UUID, language string, words []scoring.WordScore) ([]domain.WordMasteryRecord, []string) {
	scored := make([]scoring.WordScore, 0, len(words))
	for _, w := range words {
		if w.HasReference() {
			scored = append(scored, w)
		}
	}

	records := make([]*domain.WordMasteryRecord, len(scored))
	errs := make([]error, len(scored))

	var g errgroup.Group
	g.SetLimit(s.cfg.MasteryWorkers)
	for i, w := range scored {
		g.Go(func() error {
			records[i], errs[i] = s.masteries.ApplyScore(ctx, userID, w.Reference, language, w.Similarity)
			return nil
		})
	}
	_ = g.Wait()

	var (
		out        []domain.WordMasteryRecord
		failed     []string
		index      = make(map[string]int)
		failedSeen = make(map[string]bool)
	)
	for i, w := range scored {
		if errs[i] != nil {
			perr := &domain.PersistenceError{Op: "apply word mastery", Word: w.Reference, Err: errs[i]}
			s.log.WarnContext(ctx, "word mastery not updated",
				slog.String("user_id", userID.String()),
				slog.String("word", w.Reference),
				slog.String("language", language),
				slog.String("error", perr.Error()),
			)
			s.metrics.RecordMasteryFailure(ctx, language)
			if !failedSeen[w.Reference] {
				failedSeen[w.Reference] = true
				failed = append(failed, w.Reference)
			}
			continue
		}

		rec := *records[i]
		// A repeated word is updated once per position; keep the latest state.
		if j, ok := index[w.Reference]; ok {
			if rec.Occurrences > out[j].Occurrences {
				out[j] = rec
			}
			continue
		}
		index[w.Reference] = len(out)
		out = append(out, rec)
	}

	if out == nil {
		out = []domain.WordMasteryRecord{}
	}
	if failed == nil {
		failed = []string{}
	}
	return out, failed
}

func toFeedback(words []scoring.WordScore) []domain.WordFeedback {
	out := make([]domain.WordFeedback, len(words))
	for i, w := range words {
		out[i] = domain.WordFeedback{
			ReferenceWord:   w.Reference,
			WrittenWord:     w.Written,
			SimilarityScore: scoring.RoundScore(w.Similarity),
			Position:        w.Position,
			SoundsAlike:     w.SoundsAlike,
		}
	}
	return out
}
