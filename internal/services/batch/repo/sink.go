package repo

import (
	"context"

	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/store"
	"alaynorm/internal/services/batch/domain"
)

// Table is the ClickHouse destination
const Table = "normalized_texts"

// Columns are written in this order
var Columns = []string{
	"run_id",
	"text_id",
	"created_at",
	"original",
	"normalized",
	"repetitions",
	"leet",
	"forced_leet",
	"abbreviation",
	"slang",
	"typo",
	"normalized_at",
}

// CH writes normalized rows to ClickHouse
type CH struct{ w store.Warehouse }

// NewCH builds a sink over w
func NewCH(w store.Warehouse) *CH {
	if w == nil {
		panic("batch.CH requires a non nil Warehouse")
	}
	return &CH{w: w}
}

// Write implements domain.Sink
func (c *CH) Write(ctx context.Context, rows []domain.Normalized) error {
	if len(rows) == 0 {
		return nil
	}
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, []any{
			r.RunID,
			r.TextID,
			r.CreatedAt.UTC(),
			r.Original,
			r.Text,
			uint32(r.Counts.Repetitions),
			uint32(r.Counts.Leet),
			uint32(r.Counts.ForcedLeet),
			uint32(r.Counts.Abbreviation),
			uint32(r.Counts.Slang),
			uint32(r.Counts.Typo),
			r.NormalizedAt.UTC(),
		})
	}
	return perr.FromClickHouse(c.w.InsertRows(ctx, Table, Columns, out), "batch: insert "+Table)
}
