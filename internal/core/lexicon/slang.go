package lexicon

import (
	"sort"
	"strings"
)

// SlangMap maps lowercase informal spellings to their formal replacement
// Replacements may span several words ("gaje" -> "tidak jelas")
// A nil *SlangMap behaves as empty
type SlangMap struct {
	m map[string]string
}

// NewSlangMap copies pairs into a SlangMap
// keys are trimmed and lowercased, blank keys are dropped, values are trimmed
func NewSlangMap(pairs map[string]string) *SlangMap {
	sm := &SlangMap{m: make(map[string]string, len(pairs))}
	for k, v := range pairs {
		sm.put(k, v)
	}
	return sm
}

func (sm *SlangMap) put(slang, formal string) {
	k := Clean(slang)
	if k == "" {
		return
	}
	sm.m[k] = strings.TrimSpace(formal)
}

// Lookup returns the formal replacement for token as given
// the probe is not folded, so "BGT" misses where "bgt" hits
func (sm *SlangMap) Lookup(token string) (string, bool) {
	if sm == nil || len(sm.m) == 0 {
		return "", false
	}
	f, ok := sm.m[token]
	return f, ok
}

// Len returns the number of entries
func (sm *SlangMap) Len() int {
	if sm == nil {
		return 0
	}
	return len(sm.m)
}

// Keys returns the slang spellings in ascending order
func (sm *SlangMap) Keys() []string {
	if sm == nil {
		return nil
	}
	out := make([]string, 0, len(sm.m))
	for k := range sm.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
