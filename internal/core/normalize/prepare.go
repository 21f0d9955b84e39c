package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains hold transform state, so they are pooled rather than shared
var prepPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,                          // compose, fold compatibility forms (ﬁ -> fi)
			runes.Remove(runes.In(unicode.Cf)), // zero-width joiners, BOMs, bidi marks
			width.Fold,                         // fullwidth ｂｇｔ -> bgt
		)
	},
}

// Prepare cleans raw input before it reaches Tokenize
// 1 drop control bytes and invalid UTF-8 (Sanitize)
// 2 NFKC compose
// 3 remove format characters
// 4 fold fullwidth forms to ASCII
// Case, spacing and punctuation are left alone; the pipeline relies on them
func Prepare(s string) string {
	s = Sanitize(s)
	if s == "" || isPlainASCII(s) {
		return s
	}
	tr := prepPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	prepPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// Sanitize drops what must never reach the tokenizer or the database:
// NUL and other C0 controls except \t \n \r, DEL, C1 controls and invalid UTF-8 bytes
// s is returned as is when already clean
func Sanitize(s string) string {
	bad := badIndex(s)
	if bad < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:bad])
	for i := bad; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if keepRune(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// badIndex returns the offset of the first rune Sanitize would drop, or -1
func badIndex(s string) int {
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c < 0x7F {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keepRune(r, size) {
			return i
		}
		i += size
	}
	return -1
}

func keepRune(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return false
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20 || r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	}
	return true
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
