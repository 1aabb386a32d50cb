package dictation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation/scoring"
	"github.com/heartmarshall/myenglish-dictation/pkg/ctxutil"
)

// PreviewAttempt scores a transcription without storing anything. Mastery
// shows what each touched word's record would become if the attempt were
// submitted now.
func (s *Service) PreviewAttempt(ctx context.Context, input PreviewAttemptInput) (*PreviewResult, error) {
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

	var words []string
	seen := make(map[string]bool)
	for _, w := range res.Words {
		if w.HasReference() && !seen[w.Reference] {
			seen[w.Reference] = true
			words = append(words, w.Reference)
		}
	}

	current, err := s.masteries.GetByWords(ctx, userID, input.Language, words)
	if err != nil {
		return nil, fmt.Errorf("get word mastery: %w", err)
	}

	state := make(map[string]*scoring.Mastery, len(current))
	for _, rec := range current {
		state[rec.Word] = &scoring.Mastery{
			Occurrences:   rec.Occurrences,
			ErrorCount:    rec.ErrorCount,
			ScoreSum:      rec.ScoreSum,
			LastScore:     rec.LastScore,
			NeedsPractice: rec.NeedsPractice,
		}
	}

	for _, w := range res.Words {
		if !w.HasReference() {
			continue
		}
		next := scoring.UpdateMastery(state[w.Reference], w.Similarity)
		state[w.Reference] = &next
	}

	projected := make([]domain.WordMasteryRecord, len(words))
	for i, word := range words {
		m := state[word]
		projected[i] = domain.WordMasteryRecord{
			UserID:        userID,
			Word:          word,
			Language:      input.Language,
			Occurrences:   m.Occurrences,
			ErrorCount:    m.ErrorCount,
			ScoreSum:      m.ScoreSum,
			LastScore:     m.LastScore,
			NeedsPractice: m.NeedsPractice,
		}
	}

	return &PreviewResult{
		ReferenceText: phrase.Text,
		OverallScore:  res.Overall,
		IsCorrect:     scoring.IsCorrect(res.Overall),
		Feedback:      toFeedback(res.Words),
		WER:           scoring.WordErrorRate(phrase.Text, userText),
		Mastery:       projected,
	}, nil
}
