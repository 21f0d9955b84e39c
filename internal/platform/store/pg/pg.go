// Package pg opens a pgx pool with optional query logging and a ping guard
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/logger"
)

// Config configures the pool
type Config struct {
	URL         string
	AppName     string
	MaxConns    int32
	LogSQL      bool
	SlowMs      int
	Retries     int
	PingTimeout time.Duration
}

// seams, swapped in tests
var (
	newPool = pgxpool.NewWithConfig
	ping    = func(ctx context.Context, p *pgxpool.Pool) error { return p.Ping(ctx) }
	sleep   = time.Sleep
)

const backoffCeiling = 2 * time.Second

// Open builds the pool and waits until it answers a ping
// Retries back off from 150ms, doubling up to 2s
func Open(ctx context.Context, cfg Config, log logger.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "pg: parse url")
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if cfg.LogSQL {
		pcfg.ConnConfig.Tracer = NewTracer(log, time.Duration(cfg.SlowMs)*time.Millisecond)
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	attempts := max(cfg.Retries, 1)
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	backoff := 150 * time.Millisecond
	for i := 1; ; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		err = ping(pctx, pool)
		cancel()
		if err == nil {
			return pool, nil
		}
		if ctx.Err() != nil || i >= attempts {
			break
		}
		log.Warn().Err(err).Int("attempt", i).Dur("backoff", backoff).Msg("pg not ready")
		sleep(backoff)
		backoff = min(backoff*2, backoffCeiling)
	}

	pool.Close()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "pg: no ping after %d attempts", attempts)
}
