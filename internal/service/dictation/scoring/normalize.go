// Package scoring implements dictation attempt scoring: text normalization,
// tokenization, per-word similarity, positional phrase alignment, and the
// rolling per-word mastery statistics derived from it.
//
// Every function in this package is pure and safe for concurrent use.
package scoring

import (
	"regexp"
	"strings"
)

// strippedPunctuation removes the punctuation marks ignored by scoring.
// The apostrophe is kept; contractions are matched on it.
var strippedPunctuation = strings.NewReplacer(
	".", "",
	",", "",
	"!", "",
	"?", "",
	";", "",
	":", "",
)

type contraction struct {
	pattern  *regexp.Regexp
	expanded string
}

// contractions is the fixed English expansion table, applied in order.
var contractions = compileContractions([][2]string{
	{"what's", "what is"},
	{"you're", "you are"},
	{"i'm", "i am"},
	{"he's", "he is"},
	{"she's", "she is"},
	{"it's", "it is"},
	{"we're", "we are"},
	{"they're", "they are"},
	{"don't", "do not"},
	{"doesn't", "does not"},
	{"won't", "will not"},
	{"can't", "can not"},
	{"isn't", "is not"},
	{"aren't", "are not"},
	{"wasn't", "was not"},
	{"weren't", "were not"},
})

func compileContractions(pairs [][2]string) []contraction {
	out := make([]contraction, len(pairs))
	for i, p := range pairs {
		out[i] = contraction{
			pattern:  regexp.MustCompile(`\b` + regexp.QuoteMeta(p[0]) + `\b`),
			expanded: p[1],
		}
	}
	return out
}

// Normalize canonicalizes text before comparison:
//   - converts to lowercase
//   - strips . , ! ? ; :
//   - expands the contraction table (matched on whole words)
//   - trims leading/trailing whitespace
//
// Empty input yields an empty string. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = strippedPunctuation.Replace(text)

	if strings.ContainsRune(text, '\'') {
		for _, c := range contractions {
			text = c.pattern.ReplaceAllLiteralString(text, c.expanded)
		}
	}

	return strings.TrimSpace(text)
}

// Tokenize normalizes text and splits it on runs of whitespace.
// Order is preserved; it drives positional alignment.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
