// Package normalize turns informal Indonesian ("alay") text into its formal spelling
// Pipeline per word-like token, each step fed the previous step's output
// 1 Collapse runs of 3+ repeated letters
// 2 Resolve leet symbols against the lexicon, falling back to a fixed
// substitution of the raw token when nothing resolves
// 3 Expand abbreviations of lexicon words
// 4 Replace slang with its formal form
// 5 Correct near-miss typos of lexicon words
// Non-word tokens pass through and the result is rejoined with punctuation spacing fixed.
// Everything here is pure: a Normalizer only reads its lexicon and slang map, so one
// value may serve any number of goroutines
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"alaynorm/internal/core/lexicon"
)

// Normalizer runs the pipeline against a fixed lexicon and slang map
type Normalizer struct {
	lex   *lexicon.Lexicon
	slang *lexicon.SlangMap
	skip  map[Stage]bool
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithSkip disables the given stages; a skipped stage never changes a token
// Skipping StageLeet sends every non-alphabetic token to the forced fallback check
func WithSkip(stages ...Stage) Option {
	return func(n *Normalizer) {
		for _, st := range stages {
			n.skip[st] = true
		}
	}
}

// New builds a Normalizer; nil lexicon or slang map act empty
func New(lex *lexicon.Lexicon, slang *lexicon.SlangMap, opts ...Option) *Normalizer {
	n := &Normalizer{lex: lex, slang: slang, skip: map[Stage]bool{}}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Lexicon returns the word set in use
func (n *Normalizer) Lexicon() *lexicon.Lexicon { return n.lex }

// Slang returns the slang map in use
func (n *Normalizer) Slang() *lexicon.SlangMap { return n.slang }

// Skipped reports whether st is disabled
func (n *Normalizer) Skipped(st Stage) bool { return n.skip[st] }

// Result is the normalized text and what it took to get there
type Result struct {
	Text   string `json:"text"`
	Counts Counts `json:"counts"`
}

// TokenTrace records the path of one word-like token through the pipeline
type TokenTrace struct {
	Original string  `json:"original"`
	Final    string  `json:"final"`
	Stages   []Stage `json:"stages,omitempty"`
}

// Normalize runs the pipeline over text
func (n *Normalizer) Normalize(text string) Result {
	res, _ := n.run(text, false)
	return res
}

// NormalizeTrace is Normalize plus a trace entry per word-like token
func (n *Normalizer) NormalizeTrace(text string) (Result, []TokenTrace) {
	return n.run(text, true)
}

// CountLeetEvents returns how many tokens leet resolution or its forced fallback changed
func (n *Normalizer) CountLeetEvents(text string) int {
	return n.Normalize(text).Counts.LeetEvents()
}

// CountSlangEvents returns how many tokens slang substitution changed
func (n *Normalizer) CountSlangEvents(text string) int {
	return n.Normalize(text).Counts.Slang
}

func (n *Normalizer) run(text string, trace bool) (Result, []TokenTrace) {
	var (
		res    Result
		traces []TokenTrace
		fired  []Stage
	)
	toks := Tokenize(text)
	parts := make([]string, 0, len(toks))
	spaced := make([]bool, 0, len(toks))
	for i, t := range toks {
		if t.Kind != WordLike {
			if p := strings.TrimSpace(t.Text); p != "" {
				parts = append(parts, p)
				spaced = append(spaced, spacedSymbol(toks, i, p))
			}
			continue
		}
		fired = fired[:0]
		out := n.word(t.Text, &res.Counts, &fired)
		parts = append(parts, out)
		spaced = append(spaced, false)
		if trace {
			tt := TokenTrace{Original: t.Text, Final: out}
			if len(fired) > 0 {
				tt.Stages = append([]Stage(nil), fired...)
			}
			traces = append(traces, tt)
		}
	}
	res.Text = joinSpaced(parts, spaced)
	return res, traces
}

// spacedSymbol reports whether toks[i], trimmed to p, is a run of ! @ $ with
// whitespace on both sides in the input ("halo ! dunia")
func spacedSymbol(toks []Token, i int, p string) bool {
	for j := 0; j < len(p); j++ {
		if !isSymbol(p[j]) {
			return false
		}
	}
	t := toks[i].Text
	before := startsSpace(t) || (i > 0 && endsSpace(toks[i-1].Text))
	after := endsSpace(t) || (i+1 < len(toks) && startsSpace(toks[i+1].Text))
	return before && after
}

func startsSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func endsSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

// word takes one word-like token through every enabled stage
func (n *Normalizer) word(raw string, c *Counts, fired *[]Stage) string {
	hit := func(st Stage) {
		c.inc(st)
		*fired = append(*fired, st)
	}

	cur := raw
	if !n.skip[StageRepetitions] {
		if d := Collapse(cur); d != cur {
			hit(StageRepetitions)
			cur = d
		}
	}

	lr := LeetResult{Status: LeetNotFound}
	if !n.skip[StageLeet] {
		lr = ResolveLeet(cur, n.lex)
	}
	switch lr.Status {
	case LeetResolved:
		if lr.Word != cur {
			hit(StageLeet)
			cur = lr.Word
		}
	case LeetNotFound:
		// the fallback starts again from the raw token, not the collapsed one
		if !n.skip[StageForcedLeet] && hasNonWordRune(raw) && !n.lex.Has(raw) {
			f := ForceLeet(raw)
			if f != raw {
				hit(StageForcedLeet)
			}
			cur = f
		}
	}

	if !n.skip[StageAbbreviation] {
		if w, ok := MatchAbbreviation(cur, n.lex); ok && w != cur {
			hit(StageAbbreviation)
			cur = w
		}
	}

	if !n.skip[StageSlang] {
		if f, ok := n.slang.Lookup(cur); ok && f != cur {
			hit(StageSlang)
			cur = f
		}
	}

	if !n.skip[StageTypo] && !n.lex.Has(cur) {
		if w, ok := CorrectTypo(cur, n.lex); ok {
			hit(StageTypo)
			cur = w
		}
	}
	return cur
}

// Normalize runs a default Normalizer over text
func Normalize(text string, lex *lexicon.Lexicon, slang *lexicon.SlangMap) Result {
	return New(lex, slang).Normalize(text)
}

// CountLeetEvents is Normalizer.CountLeetEvents on a default Normalizer
func CountLeetEvents(text string, lex *lexicon.Lexicon, slang *lexicon.SlangMap) int {
	return New(lex, slang).CountLeetEvents(text)
}

// CountSlangEvents is Normalizer.CountSlangEvents on a default Normalizer
func CountSlangEvents(text string, lex *lexicon.Lexicon, slang *lexicon.SlangMap) int {
	return New(lex, slang).CountSlangEvents(text)
}
