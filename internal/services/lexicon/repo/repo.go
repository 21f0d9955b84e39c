// Package repo provides postgres access for lexicon tables
package repo

import (
	"context"

	"alaynorm/internal/modkit/repokit"
	"alaynorm/internal/platform/store"
)

// Repo defines the repository contract for lexicon tables
type Repo interface {
	Words(ctx context.Context) ([]string, error)
	Slang(ctx context.Context) (map[string]string, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q store.Querier }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres querier to the Repo implementation
func (PG) Bind(q store.Querier) Repo { return &queries{q: q} }

func (r *queries) Words(ctx context.Context) ([]string, error) {
	const sql = `select word from lexicon_words where word <> '' order by word`
	return store.Many(ctx, r.q, func(row store.Row) (string, error) {
		var w string
		err := row.Scan(&w)
		return w, err
	}, sql)
}

func (r *queries) Slang(ctx context.Context) (map[string]string, error) {
	const sql = `select slang, formal from slang_terms where slang <> '' order by slang`
	out := map[string]string{}
	err := store.Each(ctx, r.q, func(row store.Row) (bool, error) {
		var s, f string
		if err := row.Scan(&s, &f); err != nil {
			return false, err
		}
		out[s] = f
		return true, nil
	}, sql)
	if err != nil {
		return nil, err
	}
	return out, nil
}
