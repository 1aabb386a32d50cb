package scoring

// Thresholds of the word mastery tracker. The word_mastery upsert in the
// postgres adapter uses the same values.
const (
	// MasteryErrorThreshold: an occurrence scoring below it counts as an error.
	MasteryErrorThreshold = 70.0
	// PracticeAverageThreshold: a word averaging below it needs practice.
	PracticeAverageThreshold = 70.0
	// PracticeMinOccurrences: the error-rate rule applies above this many occurrences.
	PracticeMinOccurrences = 2
	// PracticeErrorRate: an error rate above it flags the word for practice.
	PracticeErrorRate = 0.3
)

// Mastery holds the rolling spelling statistics for one (user, word, language).
type Mastery struct {
	Occurrences   int
	ErrorCount    int
	ScoreSum      float64
	LastScore     float64
	NeedsPractice bool
}

// Average returns the mean similarity score, or 0 before the first occurrence.
func (m Mastery) Average() float64 {
	if m.Occurrences == 0 {
		return 0
	}
	return m.ScoreSum / float64(m.Occurrences)
}

// ErrorRate returns errors per occurrence, or 0 before the first occurrence.
func (m Mastery) ErrorRate() float64 {
	if m.Occurrences == 0 {
		return 0
	}
	return float64(m.ErrorCount) / float64(m.Occurrences)
}

// UpdateMastery folds one new similarity score into prior (nil for a word
// seen for the first time) and returns the new statistics. Applying the same
// attempt twice counts it twice.
func UpdateMastery(prior *Mastery, score float64) Mastery {
	var next Mastery
	if prior != nil {
		next = *prior
	}

	next.Occurrences++
	if score < MasteryErrorThreshold {
		next.ErrorCount++
	}
	next.ScoreSum += score
	next.LastScore = score
	next.NeedsPractice = NeedsPractice(next.Average(), next.Occurrences, next.ErrorCount)

	return next
}

// NeedsPractice derives the needs-practice flag:
//
//	average < 70 OR (occurrences > 2 AND errors/occurrences > 0.3)
func NeedsPractice(average float64, occurrences, errorCount int) bool {
	if average < PracticeAverageThreshold {
		return true
	}
	return occurrences > PracticeMinOccurrences &&
		float64(errorCount)/float64(occurrences) > PracticeErrorRate
}
