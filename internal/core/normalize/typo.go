package normalize

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	"alaynorm/internal/core/lexicon"
)

// maxTypoDistance is the largest Damerau-Levenshtein distance still treated as a typo
const maxTypoDistance = 2

// CorrectTypo returns the lexicon word within edit distance 1 or 2 of token
// (insertions, deletions, substitutions, adjacent transpositions). The token itself,
// compared case-insensitively, never counts. Closest wins, then shortest, then the
// lexicographically smallest
func CorrectTypo(token string, lex *lexicon.Lexicon) (string, bool) {
	if token == "" || lex.Len() == 0 {
		return "", false
	}
	self := lexicon.Fold(token)
	tl := utf8.RuneCountInString(token)

	best, bestD := "", maxTypoDistance+1
	lex.Each(func(w string) bool {
		if w == self {
			return true
		}
		// length gap alone already exceeds the bound
		if d := utf8.RuneCountInString(w) - tl; d > maxTypoDistance || d < -maxTypoDistance {
			return true
		}
		d := edlib.DamerauLevenshteinDistance(token, w)
		if d < 1 || d > maxTypoDistance {
			return true
		}
		if d < bestD || (d == bestD && preferred(w, best)) {
			best, bestD = w, d
		}
		return true
	})
	return best, best != ""
}
