// Package repo provides the batch job's postgres source and clickhouse sink
package repo

import (
	"context"
	"time"

	"alaynorm/internal/modkit/repokit"
	"alaynorm/internal/platform/store"
	"alaynorm/internal/services/batch/domain"
)

type (
	// PG implements domain.SourceRepo using Postgres
	PG struct{}

	queries struct{ q store.Querier }
)

// NewPG creates a new Postgres source binder
func NewPG() repokit.Binder[domain.SourceRepo] { return PG{} }

// Bind binds a Postgres querier to the source implementation
func (PG) Bind(q store.Querier) domain.SourceRepo { return &queries{q: q} }

const pageSQL = `
select id, body, created_at
from texts
where (created_at, id) > ($1, $2)
and ($3::timestamptz is null or created_at >= $3)
and ($4::timestamptz is null or created_at < $4)
order by created_at, id
limit $5
`

func (r *queries) Page(ctx context.Context, w domain.Window, after domain.Cursor, limit int) ([]domain.Text, error) {
	if limit <= 0 {
		limit = 500
	}
	from := after.CreatedAt
	if from.IsZero() {
		// older than anything stored
		from = time.Unix(0, 0).UTC()
	}
	return store.Many(ctx, r.q, func(row store.Row) (domain.Text, error) {
		var t domain.Text
		err := row.Scan(&t.ID, &t.Body, &t.CreatedAt)
		return t, err
	}, pageSQL, from, after.ID, nullTime(w.Since), nullTime(w.Until), limit)
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
