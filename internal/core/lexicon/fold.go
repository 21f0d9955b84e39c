package lexicon

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// a Caser carries transform state, so each goroutine borrows its own
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Indonesian)
		return &c
	},
}

// Fold returns the lowercase canonical form used for every lexicon key
func Fold(s string) string {
	if s == "" || isLowerASCII(s) {
		return s
	}
	c := lowerPool.Get().(*cases.Caser)
	out := c.String(s)
	lowerPool.Put(c)
	return out
}

// Clean trims surrounding whitespace and folds the result
func Clean(s string) string {
	return Fold(strings.TrimSpace(s))
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= utf8.RuneSelf || ('A' <= b && b <= 'Z') {
			return false
		}
	}
	return true
}
