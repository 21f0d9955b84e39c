// Package store opens the optional backends: Postgres for lexicon tables and
// batch input, ClickHouse for batch output
package store

import (
	"context"
	"errors"

	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/logger"
)

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set; pgx.Rows satisfies it as is
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Querier is the SQL surface repositories use
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

// Warehouse is the columnar sink for batch results
type Warehouse interface {
	InsertRows(ctx context.Context, table string, columns []string, rows [][]any) error
	Ping(ctx context.Context) error
	Close() error
}

// Store holds whichever backends were enabled; nil fields are disabled
type Store struct {
	Log logger.Logger
	PG  Querier
	CH  Warehouse

	closers []func() error
}

// Option mutates Store during Open
type Option func(*Store)

// WithLogger sets the logger handed to the backends
func WithLogger(l logger.Logger) Option { return func(s *Store) { s.Log = l } }

// Open connects every backend enabled in cfg
// A failure closes whatever was already open
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: *logger.Named("store")}
	for _, o := range opts {
		o(s)
	}

	if cfg.PG.Enabled {
		q, closeFn, err := openPG(ctx, cfg, s.Log)
		if err != nil {
			return nil, perr.FromPostgres(err, "store: open postgres")
		}
		s.PG = q
		s.closers = append(s.closers, closeFn)
	}

	if cfg.CH.Enabled {
		w, err := openCH(ctx, cfg)
		if err != nil {
			_ = s.Close()
			return nil, perr.FromClickHouse(err, "store: open clickhouse")
		}
		s.CH = w
		s.closers = append(s.closers, w.Close)
	}

	return s, nil
}

type pinger interface{ Ping(context.Context) error }

// Guard pings every open backend
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return perr.Internalf("store: nil store")
	}
	var errs []error
	if p, ok := s.PG.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, perr.FromPostgres(err, "pg ping"))
		}
	}
	if s.CH != nil {
		if err := s.CH.Ping(ctx); err != nil {
			errs = append(errs, perr.FromClickHouse(err, "ch ping"))
		}
	}
	return errors.Join(errs...)
}

// Close releases backends in reverse open order
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
