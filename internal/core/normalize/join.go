package normalize

import (
	"regexp"
	"strings"
)

var (
	spaceBeforePunct = regexp.MustCompile(`\s([.,!?;:])`)
	spaceAfterOpen   = regexp.MustCompile(`([(\[{])\s`)
	spaceBeforeClose = regexp.MustCompile(`\s([)\]}])`)
)

// Join glues tokens with single spaces, then drops the space before . , ! ? ; :
// and closing brackets and the space after opening brackets
// Empty tokens are skipped: ["Halo", ",", "apa", "kabar", "?"] -> "Halo, apa kabar?"
func Join(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	s := b.String()
	s = spaceBeforePunct.ReplaceAllString(s, "$1")
	s = spaceAfterOpen.ReplaceAllString(s, "$1")
	s = spaceBeforeClose.ReplaceAllString(s, "$1")
	return s
}

// joinSpaced is Join, except that parts flagged in spaced keep one space on each
// side instead of being glued to their neighbours by the punctuation fixups
func joinSpaced(parts []string, spaced []bool) string {
	var b strings.Builder
	add := func(s string) {
		if s == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	start := 0
	for i, p := range parts {
		if !spaced[i] {
			continue
		}
		add(Join(parts[start:i]))
		add(p)
		start = i + 1
	}
	add(Join(parts[start:]))
	return b.String()
}
