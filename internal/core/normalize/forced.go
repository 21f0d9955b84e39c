package normalize

import (
	"strings"
	"unicode"
)

// forcedLeet picks a single letter per leet symbol
var forcedLeet = map[rune]rune{
	'!': 'i',
	'1': 'i',
	'@': 'a',
	'4': 'a',
	'2': 'z',
	'3': 'e',
	'$': 's',
	'5': 's',
	'6': 'g',
	'7': 'j',
	'8': 'b',
	'9': 'g',
	'0': 'o',
}

// ForceLeet replaces every leet symbol with its fixed letter without consulting any
// lexicon; letters keep their case and other runes pass through: "tol0l" -> "tolol"
func ForceLeet(token string) string {
	return strings.Map(func(r rune) rune {
		if l, ok := forcedLeet[r]; ok {
			return l
		}
		return r
	}, token)
}

// hasNonWordRune reports whether s holds a rune other than a letter, digit or underscore
// Letters and digits are Unicode classes, so accented letters ("café") never open
// the forced fallback; only symbols do
func hasNonWordRune(s string) bool {
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return true
	}
	return false
}
