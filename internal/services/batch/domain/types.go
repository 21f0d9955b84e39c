// Package domain holds the batch job's rows and ports
package domain

import (
	"context"
	"time"

	"alaynorm/internal/core/normalize"
)

// Text is one input row from the texts table
type Text struct {
	ID        int64
	Body      string
	CreatedAt time.Time
}

// Cursor is the keyset position after the last row read
type Cursor struct {
	CreatedAt time.Time
	ID        int64
}

// After returns the cursor just past t
func After(t Text) Cursor { return Cursor{CreatedAt: t.CreatedAt, ID: t.ID} }

// Window bounds the rows read; zero times are open ends
type Window struct {
	Since time.Time
	Until time.Time
}

// Normalized is one output row for normalized_texts
type Normalized struct {
	RunID        string
	TextID       int64
	CreatedAt    time.Time
	Original     string
	Text         string
	Counts       normalize.Counts
	NormalizedAt time.Time
}

// Summary totals one run
type Summary struct {
	RunID   string           `json:"run_id"`
	DryRun  bool             `json:"dry_run"`
	Pages   int              `json:"pages"`
	Read    int              `json:"read"`
	Written int              `json:"written"`
	Changed int              `json:"changed"`
	Counts  normalize.Counts `json:"counts"`
	Elapsed time.Duration    `json:"elapsed"`
}

// SourceRepo pages through texts in (created_at, id) order
type SourceRepo interface {
	Page(ctx context.Context, w Window, after Cursor, limit int) ([]Text, error)
}

// Sink stores normalized rows
type Sink interface {
	Write(ctx context.Context, rows []Normalized) error
}

// Normalizer is the subset of the core normalizer the job needs
type Normalizer interface {
	Normalize(text string) normalize.Result
}
