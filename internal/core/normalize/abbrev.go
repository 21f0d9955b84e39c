package normalize

import (
	"unicode/utf8"

	"alaynorm/internal/core/lexicon"
)

// MatchAbbreviation finds the lexicon word token abbreviates
// token abbreviates word when it keeps at least half of it, measured as
// runes(token) >= (runes(word)+1)/2 with integer division, and its runes appear in
// word in order. Matching is case-sensitive against the lowercase lexicon.
// With several matches the shortest word wins, then the lexicographically smallest
func MatchAbbreviation(token string, lex *lexicon.Lexicon) (string, bool) {
	if token == "" || lex.Len() == 0 {
		return "", false
	}
	abbr := []rune(token)
	best, found := "", false
	lex.Each(func(w string) bool {
		if isAbbreviation(abbr, w) && (!found || preferred(w, best)) {
			best, found = w, true
		}
		return true
	})
	return best, found
}

func isAbbreviation(abbr []rune, word string) bool {
	n := utf8.RuneCountInString(word)
	if len(abbr) > n || len(abbr) < (n+1)/2 {
		return false
	}
	i := 0
	for _, c := range word {
		if i < len(abbr) && abbr[i] == c {
			i++
		}
	}
	return i == len(abbr)
}
