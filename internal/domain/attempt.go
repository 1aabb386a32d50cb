package domain

import (
	"time"

	"github.com/google/uuid"
)

// DictationAttempt is one scored submission. Attempts are append-only;
// AttemptNumber is monotonic per (UserID, LessonID, PhraseID).
type DictationAttempt struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	LessonID      uuid.UUID
	PhraseID      uuid.UUID
	Language      string
	AttemptNumber int
	ReferenceText string
	UserText      string
	Feedback      []WordFeedback
	OverallScore  float64
	IsCorrect     bool
	CreatedAt     time.Time
}

// WordFeedback is the score for one aligned position of an attempt.
//   - ReferenceWord is empty for extra words the user typed.
//   - WrittenWord is empty for reference words the user left out.
type WordFeedback struct {
	ReferenceWord   string
	WrittenWord     string
	SimilarityScore float64
	Position        int
	SoundsAlike     bool
}

// AttemptFilter narrows an attempt listing. Nil fields are not applied.
type AttemptFilter struct {
	LessonID *uuid.UUID
	PhraseID *uuid.UUID
	Limit    int
	Offset   int
}
