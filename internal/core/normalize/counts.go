package normalize

import "strings"

// Stage names one per-token normalization step; the string values are the
// counter keys reported to callers
type Stage string

// Stage counter keys, in pipeline order
const (
	StageRepetitions  Stage = "normalize_repetitions"
	StageLeet         Stage = "normalize_leet"
	StageForcedLeet   Stage = "normalize_forced_leet"
	StageAbbreviation Stage = "is_abbreviation"
	StageSlang        Stage = "slang_to_formal"
	StageTypo         Stage = "is_typo"
)

// Stages lists every stage in pipeline order
var Stages = []Stage{
	StageRepetitions,
	StageLeet,
	StageForcedLeet,
	StageAbbreviation,
	StageSlang,
	StageTypo,
}

var stageAliases = map[string]Stage{
	"repetitions":  StageRepetitions,
	"repetition":   StageRepetitions,
	"leet":         StageLeet,
	"forced_leet":  StageForcedLeet,
	"forced-leet":  StageForcedLeet,
	"abbreviation": StageAbbreviation,
	"abbr":         StageAbbreviation,
	"slang":        StageSlang,
	"typo":         StageTypo,
}

// ParseStage accepts a counter key or its short alias ("leet", "typo", ...)
func ParseStage(s string) (Stage, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range Stages {
		if string(st) == s {
			return st, true
		}
	}
	st, ok := stageAliases[s]
	return st, ok
}

// Counts tallies how many tokens each stage changed
type Counts struct {
	Repetitions  int `json:"normalize_repetitions"`
	Leet         int `json:"normalize_leet"`
	ForcedLeet   int `json:"normalize_forced_leet"`
	Abbreviation int `json:"is_abbreviation"`
	Slang        int `json:"slang_to_formal"`
	Typo         int `json:"is_typo"`
}

// Get returns the counter for st, zero for unknown stages
func (c Counts) Get(st Stage) int {
	switch st {
	case StageRepetitions:
		return c.Repetitions
	case StageLeet:
		return c.Leet
	case StageForcedLeet:
		return c.ForcedLeet
	case StageAbbreviation:
		return c.Abbreviation
	case StageSlang:
		return c.Slang
	case StageTypo:
		return c.Typo
	}
	return 0
}

func (c *Counts) inc(st Stage) {
	switch st {
	case StageRepetitions:
		c.Repetitions++
	case StageLeet:
		c.Leet++
	case StageForcedLeet:
		c.ForcedLeet++
	case StageAbbreviation:
		c.Abbreviation++
	case StageSlang:
		c.Slang++
	case StageTypo:
		c.Typo++
	}
}

// Map returns the non-zero counters keyed by stage
func (c Counts) Map() map[Stage]int {
	out := make(map[Stage]int, len(Stages))
	for _, st := range Stages {
		if v := c.Get(st); v > 0 {
			out[st] = v
		}
	}
	return out
}

// Total sums every counter
func (c Counts) Total() int {
	return c.Repetitions + c.Leet + c.ForcedLeet + c.Abbreviation + c.Slang + c.Typo
}

// LeetEvents is leet plus forced leet, the "alay" count
func (c Counts) LeetEvents() int { return c.Leet + c.ForcedLeet }

// Add returns the field-wise sum of c and o
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Repetitions:  c.Repetitions + o.Repetitions,
		Leet:         c.Leet + o.Leet,
		ForcedLeet:   c.ForcedLeet + o.ForcedLeet,
		Abbreviation: c.Abbreviation + o.Abbreviation,
		Slang:        c.Slang + o.Slang,
		Typo:         c.Typo + o.Typo,
	}
}
