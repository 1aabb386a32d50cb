package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordMasteryRecord holds rolling spelling statistics for one
// (user, word, language).
type WordMasteryRecord struct {
	UserID        uuid.UUID
	Word          string
	Language      string
	Occurrences   int
	ErrorCount    int
	ScoreSum      float64
	LastScore     float64
	NeedsPractice bool
	UpdatedAt     time.Time
}

// AverageScore returns ScoreSum / Occurrences, or 0 for an empty record.
func (r WordMasteryRecord) AverageScore() float64 {
	if r.Occurrences == 0 {
		return 0
	}
	return r.ScoreSum / float64(r.Occurrences)
}

// MasteryFilter narrows a mastery listing.
type MasteryFilter struct {
	Language          string
	NeedsPracticeOnly bool
	Limit             int
	Offset            int
}
