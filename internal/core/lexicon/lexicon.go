// Package lexicon holds the read-only word sets the normalizer checks tokens against.
// A Lexicon is the set of canonical (formal) words and a SlangMap maps informal
// spellings to their formal replacement. Both are built once and shared freely
package lexicon

import (
	"sort"
)

// Lexicon is an immutable set of lowercase canonical words
// A nil *Lexicon behaves as an empty set
type Lexicon struct {
	set   map[string]struct{}
	words []string // sorted, the scan order for every lexicon-wide search
}

// NewLexicon builds a Lexicon from raw words
// entries are trimmed and lowercased; blanks are dropped and duplicates collapse
func NewLexicon(words ...string) *Lexicon {
	lx := &Lexicon{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = Clean(w)
		if w == "" {
			continue
		}
		if _, ok := lx.set[w]; ok {
			continue
		}
		lx.set[w] = struct{}{}
		lx.words = append(lx.words, w)
	}
	sort.Strings(lx.words)
	return lx
}

// Has reports whether the lowercase form of word is a member
func (lx *Lexicon) Has(word string) bool {
	if lx == nil || len(lx.set) == 0 {
		return false
	}
	_, ok := lx.set[Fold(word)]
	return ok
}

// Len returns the number of distinct words
func (lx *Lexicon) Len() int {
	if lx == nil {
		return 0
	}
	return len(lx.words)
}

// Words returns the members in ascending order
// callers must not modify the returned slice
func (lx *Lexicon) Words() []string {
	if lx == nil {
		return nil
	}
	return lx.words
}

// Each calls fn for every word in ascending order until fn returns false
func (lx *Lexicon) Each(fn func(word string) bool) {
	if lx == nil {
		return
	}
	for _, w := range lx.words {
		if !fn(w) {
			return
		}
	}
}
