package dictation

import (
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation/scoring"
)

// SubmitResult is the outcome of SubmitAttempt. The attempt is stored even
// when some mastery updates failed; those words are listed in FailedWords.
type SubmitResult struct {
	Attempt     *domain.DictationAttempt
	IsCorrect   bool
	WER         scoring.WERResult
	Mastery     []domain.WordMasteryRecord
	FailedWords []string
}

// PreviewResult is the outcome of PreviewAttempt. Mastery holds the records
// as they would look after submitting; nothing is stored.
type PreviewResult struct {
	ReferenceText string
	OverallScore  float64
	IsCorrect     bool
	Feedback      []domain.WordFeedback
	WER           scoring.WERResult
	Mastery       []domain.WordMasteryRecord
}
