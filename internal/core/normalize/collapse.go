package normalize

import (
	"strings"
	"unicode"
)

// minRepeatRun is the shortest run Collapse squashes; doubled letters are legitimate
const minRepeatRun = 3

// Collapse squashes every run of 3 or more case-insensitively equal runes to the
// run's first rune, keeping its case: "pusinggg" -> "pusing", "masssaa" -> "masaa"
// Runs of 1 or 2 are left alone and Collapse(Collapse(s)) == Collapse(s)
func Collapse(token string) string {
	if len(token) < minRepeatRun {
		return token
	}
	rs := []rune(token)
	var b strings.Builder
	b.Grow(len(token))
	changed := false
	for i := 0; i < len(rs); {
		j := i + 1
		for j < len(rs) && sameFold(rs[i], rs[j]) {
			j++
		}
		if j-i >= minRepeatRun {
			b.WriteRune(rs[i])
			changed = true
		} else {
			for _, r := range rs[i:j] {
				b.WriteRune(r)
			}
		}
		i = j
	}
	if !changed {
		return token
	}
	return b.String()
}

func sameFold(a, b rune) bool {
	return a == b || unicode.ToLower(a) == unicode.ToLower(b)
}
