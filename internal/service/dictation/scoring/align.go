package scoring

import (
	"github.com/antzucaro/matchr"
)

// CorrectThreshold is the minimum overall score for an attempt to count as correct.
const CorrectThreshold = 70.0

// WordScore is the feedback for one aligned position.
// Reference is empty when the user typed more words than the reference has;
// Written is empty when the user typed fewer.
type WordScore struct {
	Reference  string
	Written    string
	Similarity float64
	Position   int
	// SoundsAlike reports a misspelling that shares a Double Metaphone code
	// with the reference word. It never affects Similarity.
	SoundsAlike bool
}

// HasReference reports whether the position lies within the reference phrase.
func (w WordScore) HasReference() bool {
	return w.Reference != ""
}

// Result is the outcome of scoring one dictation attempt.
type Result struct {
	Overall        float64
	Words          []WordScore
	ReferenceWords int
	WrittenWords   int
}

// IsCorrect reports whether an overall score passes CorrectThreshold.
func IsCorrect(overall float64) bool {
	return overall >= CorrectThreshold
}

// Score aligns the tokenized reference and user texts position by position
// and scores each pair with Similarity.
//
// len(Words) == max(len(referenceWords), len(userWords)). Overall averages
// the unrounded similarity over reference positions only, rounded to two
// decimals, and is 0 when the reference has no words. Alignment is
// positional: an inserted or omitted word shifts every following position.
func Score(reference, user string) Result {
	refWords := Tokenize(reference)
	userWords := Tokenize(user)

	n := max(len(refWords), len(userWords))
	words := make([]WordScore, n)

	var sum float64
	for i := range n {
		var refWord, userWord string
		if i < len(refWords) {
			refWord = refWords[i]
		}
		if i < len(userWords) {
			userWord = userWords[i]
		}

		sim := Similarity(refWord, userWord)
		words[i] = WordScore{
			Reference:   refWord,
			Written:     userWord,
			Similarity:  sim,
			Position:    i,
			SoundsAlike: soundsAlike(refWord, userWord),
		}

		if i < len(refWords) {
			sum += sim
		}
	}

	var overall float64
	if len(refWords) > 0 {
		overall = RoundScore(sum / float64(len(refWords)))
	}

	return Result{
		Overall:        overall,
		Words:          words,
		ReferenceWords: len(refWords),
		WrittenWords:   len(userWords),
	}
}

func soundsAlike(a, b string) bool {
	if a == "" || b == "" || a == b {
		return false
	}

	ap, as := matchr.DoubleMetaphone(a)
	bp, bs := matchr.DoubleMetaphone(b)

	for _, x := range [2]string{ap, as} {
		if x == "" {
			continue
		}
		if x == bp || x == bs {
			return true
		}
	}
	return false
}
