package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"alaynorm/internal/core/lexicon"
)

// LeetStatus tells the pipeline what ResolveLeet did with a token
type LeetStatus uint8

const (
	// LeetNotFound means no substitution path spells a lexicon word
	LeetNotFound LeetStatus = iota
	// LeetAlreadyClean means the token is purely alphabetic and was not searched
	LeetAlreadyClean
	// LeetResolved means Word holds the chosen lexicon spelling
	LeetResolved
)

func (s LeetStatus) String() string {
	switch s {
	case LeetAlreadyClean:
		return "already_clean"
	case LeetResolved:
		return "resolved"
	default:
		return "not_found"
	}
}

// LeetResult is the tagged outcome of ResolveLeet
// Word is the token itself for LeetAlreadyClean and empty for LeetNotFound
type LeetResult struct {
	Status LeetStatus
	Word   string
}

// leetChoices lists every letter a leet symbol may stand for
var leetChoices = map[rune][]rune{
	'!': {'i', 'l'},
	'1': {'i', 'l'},
	'@': {'a'},
	'4': {'a'},
	'2': {'z'},
	'3': {'e'},
	'$': {'s'},
	'5': {'s'},
	'6': {'g'},
	'7': {'j', 't'},
	'8': {'b'},
	'9': {'g'},
	'0': {'o'},
}

// maxLeetPaths caps the substitution search for pathological tokens like "1!1!1!1!1!1!1!1!"
const maxLeetPaths = 1 << 14

// ResolveLeet maps leet symbols back to letters when the result is a lexicon word
// A trailing "2" is reduplication shorthand: "g4nt3ng2" -> "ganteng-ganteng"
// Every substitution path is tried; among the paths whose lowercase form is a
// lexicon word the shortest wins, then the lexicographically smallest. When no path
// hits exactly, a path ending in a doubled rune ("haloo") may match with the
// elongation trimmed ("halo")
func ResolveLeet(token string, lex *lexicon.Lexicon) LeetResult {
	if isAlpha(token) {
		return LeetResult{Status: LeetAlreadyClean, Word: token}
	}

	core, redup := token, false
	if strings.HasSuffix(token, "2") {
		core, redup = token[:len(token)-1], true
	}
	if core == "" || lex.Len() == 0 {
		return LeetResult{Status: LeetNotFound}
	}

	s := leetSearch{lex: lex, src: []rune(core)}
	s.buf = make([]rune, 0, len(s.src))
	s.walk(0)

	best := s.exact
	if best == "" {
		best = s.trimmed
	}
	if best == "" {
		return LeetResult{Status: LeetNotFound}
	}
	if redup {
		best = best + "-" + best
	}
	return LeetResult{Status: LeetResolved, Word: best}
}

// leetSearch is the depth-first walk over per-rune choices, a push/pop buffer
// holds the current path
type leetSearch struct {
	lex     *lexicon.Lexicon
	src     []rune
	buf     []rune
	paths   int
	exact   string // best exact hit so far
	trimmed string // best hit after trimming a trailing doubled rune
}

func (s *leetSearch) walk(i int) {
	if s.paths >= maxLeetPaths {
		return
	}
	if i == len(s.src) {
		s.paths++
		s.consider(lexicon.Fold(string(s.buf)))
		return
	}
	r := s.src[i]
	choices, ok := leetChoices[r]
	if !ok {
		s.buf = append(s.buf, r)
		s.walk(i + 1)
		s.buf = s.buf[:len(s.buf)-1]
		return
	}
	for _, c := range choices {
		s.buf = append(s.buf, c)
		s.walk(i + 1)
		s.buf = s.buf[:len(s.buf)-1]
	}
}

func (s *leetSearch) consider(cand string) {
	if s.lex.Has(cand) {
		if s.exact == "" || preferred(cand, s.exact) {
			s.exact = cand
		}
		return
	}
	if s.exact != "" {
		return
	}
	if t, ok := trimElongation(cand); ok && s.lex.Has(t) {
		if s.trimmed == "" || preferred(t, s.trimmed) {
			s.trimmed = t
		}
	}
}

// trimElongation drops the last rune when it doubles the one before it
func trimElongation(s string) (string, bool) {
	last, n := utf8.DecodeLastRuneInString(s)
	if n == 0 || n == len(s) {
		return "", false
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:len(s)-n])
	if prev != last {
		return "", false
	}
	return s[:len(s)-n], true
}

// preferred orders candidates: fewer runes first, then byte order
func preferred(a, b string) bool {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
