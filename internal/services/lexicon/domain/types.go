// Package domain holds the lexicon bundle and the port sources implement
package domain

import (
	"context"
	"time"

	"alaynorm/internal/core/lexicon"
)

// Origin names where a bundle came from
type Origin string

// Known origins
const (
	OriginEmbedded Origin = "embedded"
	OriginFile     Origin = "file"
	OriginPG       Origin = "pg"
)

// Bundle is one loaded word set and slang table
// Lexicon and Slang are never nil; a failed load leaves them empty
type Bundle struct {
	Lexicon  *lexicon.Lexicon
	Slang    *lexicon.SlangMap
	Origin   Origin
	LoadedAt time.Time
}

// SourcePort loads a bundle
// On failure it still returns a usable bundle next to the error
type SourcePort interface {
	Load(ctx context.Context) (Bundle, error)
}

// Info is the public summary of a bundle
type Info struct {
	Origin   Origin `json:"origin"      example:"embedded"`
	Words    int    `json:"words"       example:"1450"`
	Slang    int    `json:"slang"       example:"320"`
	LoadedAt string `json:"loaded_at"   example:"2025-09-03T13:00:00Z"`
}

// Info summarizes b
func (b Bundle) Info() Info {
	return Info{
		Origin:   b.Origin,
		Words:    b.Lexicon.Len(),
		Slang:    b.Slang.Len(),
		LoadedAt: b.LoadedAt.UTC().Format(time.RFC3339),
	}
}
