package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"alaynorm/internal/core/version"
	"alaynorm/internal/platform/logger"
	"alaynorm/internal/platform/store/ch"
	"alaynorm/internal/platform/store/pg"
)

// seams, swapped in tests
var (
	openPG = func(ctx context.Context, cfg Config, log logger.Logger) (Querier, func() error, error) {
		pool, err := pg.Open(ctx, pg.Config{
			URL:         cfg.PG.URL,
			AppName:     cfg.AppName,
			MaxConns:    cfg.PG.MaxConns,
			LogSQL:      cfg.PG.LogSQL,
			SlowMs:      cfg.PG.SlowQueryMs,
			Retries:     cfg.PG.ConnectRetries,
			PingTimeout: cfg.PG.PingTimeout,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		return NewPG(pool), func() error { pool.Close(); return nil }, nil
	}

	openCH = func(ctx context.Context, cfg Config) (Warehouse, error) {
		return ch.Open(ctx, ch.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Version: version.Version})
	}
)

// pgPool adapts a pgx pool to Querier
type pgPool struct{ pool *pgxpool.Pool }

// NewPG wraps an open pool
func NewPG(pool *pgxpool.Pool) Querier { return pgPool{pool: pool} }

func (p pgPool) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (p pgPool) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return p.pool.QueryRow(ctx, sql, args...)
}

func (p pgPool) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (p pgPool) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }
