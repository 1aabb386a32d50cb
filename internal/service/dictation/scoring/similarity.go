package scoring

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity returns a 0–100 closeness score for two words based on
// normalized Levenshtein distance:
//
//	max(0, (1 - distance/max(len(a), len(b))) * 100)
//
// Lengths are counted in runes. Identical strings (including two empty
// strings) score 100; an empty word against a non-empty one scores 0.
// The result is not rounded; it feeds mastery statistics as is. Use
// RoundScore for display.
func Similarity(a, b string) float64 {
	if a == b {
		return 100
	}

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	distance := levenshtein.ComputeDistance(a, b)

	return max(0, (1-float64(distance)/float64(longest))*100)
}

// RoundScore rounds a score to two decimals.
func RoundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
