// Package service runs the batch normalization job
package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"alaynorm/internal/core/normalize"
	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/logger"
	"alaynorm/internal/services/batch/domain"
)

var (
	now     = time.Now
	newRun  = uuid.NewString
	sleepFn = sleepCtx
)

// Service reads texts page by page, normalizes them one at a time and
// writes the results
type Service struct {
	Source domain.SourceRepo
	Sink   domain.Sink // may be nil in dry run
	Norm   domain.Normalizer
	Cfg    Config
}

// New constructs the batch service
func New(src domain.SourceRepo, sink domain.Sink, n domain.Normalizer, cfg Config) *Service {
	if src == nil {
		panic("batch.Service requires a non nil SourceRepo")
	}
	if n == nil {
		panic("batch.Service requires a non nil Normalizer")
	}
	if sink == nil && !cfg.DryRun {
		panic("batch.Service requires a Sink unless DryRun is set")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	return &Service{Source: src, Sink: sink, Norm: n, Cfg: cfg}
}

// Run processes every text in w and returns what it did
// A failed page stops the run; the summary covers the pages before it
func (s *Service) Run(ctx context.Context, w domain.Window) (domain.Summary, error) {
	start := now()
	sum := domain.Summary{RunID: newRun(), DryRun: s.Cfg.DryRun}
	ctx = logger.WithRun(ctx, sum.RunID)
	log := logger.C(ctx)

	log.Info().
		Time("since", w.Since).
		Time("until", w.Until).
		Int("page_size", s.Cfg.PageSize).
		Bool("dry_run", s.Cfg.DryRun).
		Msg("batch: run started")

	var cur domain.Cursor
	for {
		if err := ctx.Err(); err != nil {
			sum.Elapsed = now().Sub(start)
			return sum, err
		}
		if s.Cfg.MaxPages > 0 && sum.Pages >= s.Cfg.MaxPages {
			break
		}

		var page []domain.Text
		err := s.retry(ctx, "read", func() error {
			var e error
			page, e = s.Source.Page(ctx, w, cur, s.Cfg.PageSize)
			return e
		})
		if err != nil {
			sum.Elapsed = now().Sub(start)
			return sum, perr.WithOp(perr.FromPostgres(err, "batch: read texts"), "read")
		}
		if len(page) == 0 {
			break
		}

		rows, pc := s.normalizePage(sum.RunID, page)
		if !s.Cfg.DryRun {
			if err := s.retry(ctx, "write", func() error { return s.Sink.Write(ctx, rows) }); err != nil {
				sum.Elapsed = now().Sub(start)
				return sum, perr.WithOp(err, "write")
			}
			sum.Written += len(rows)
		}

		sum.Pages++
		sum.Read += len(page)
		sum.Changed += pc.changed
		sum.Counts = sum.Counts.Add(pc.counts)
		cur = domain.After(page[len(page)-1])

		log.Info().
			Int("page", sum.Pages).
			Int("rows", len(page)).
			Int("changed", pc.changed).
			Int("events", pc.counts.Total()).
			Int64("last_id", cur.ID).
			Msg("batch: page done")

		if len(page) < s.Cfg.PageSize {
			break
		}
		if err := sleepFn(ctx, s.Cfg.PageDelay); err != nil {
			sum.Elapsed = now().Sub(start)
			return sum, err
		}
	}

	sum.Elapsed = now().Sub(start)
	log.Info().
		Int("pages", sum.Pages).
		Int("read", sum.Read).
		Int("written", sum.Written).
		Int("changed", sum.Changed).
		Int("leet_events", sum.Counts.LeetEvents()).
		Int("slang_events", sum.Counts.Slang).
		Dur("elapsed", sum.Elapsed).
		Msg("batch: run finished")
	return sum, nil
}

type pageCounts struct {
	changed int
	counts  normalize.Counts
}

func (s *Service) normalizePage(runID string, page []domain.Text) ([]domain.Normalized, pageCounts) {
	var pc pageCounts
	rows := make([]domain.Normalized, 0, len(page))
	at := now().UTC()
	for _, t := range page {
		res := s.Norm.Normalize(normalize.Prepare(t.Body))
		if res.Text != t.Body {
			pc.changed++
		}
		pc.counts = pc.counts.Add(res.Counts)
		rows = append(rows, domain.Normalized{
			RunID:        runID,
			TextID:       t.ID,
			CreatedAt:    t.CreatedAt,
			Original:     t.Body,
			Text:         res.Text,
			Counts:       res.Counts,
			NormalizedAt: at,
		})
	}
	return rows, pc
}

// retry runs fn until it succeeds, fails for good or attempts run out
func (s *Service) retry(ctx context.Context, what string, fn func() error) error {
	attempts := max(s.Cfg.MaxRetries, 1)
	base := s.Cfg.RetryBase
	if base <= 0 {
		base = 500 * time.Millisecond
	}

	var last error
	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		last = err

		if !perr.Retryable(err) && perr.CodeOf(err) != perr.ErrorCodeUnavailable {
			return last
		}
		if i == attempts-1 {
			break
		}

		d := backoff(base, i)
		j := d/2 + time.Duration(rand.Int63n(int64(d/2)+1))
		logger.C(ctx).Warn().Err(err).Str("step", what).Int("attempt", i+1).Dur("backoff", j).Msg("batch: retrying")
		if se := sleepFn(ctx, j); se != nil {
			return se
		}
	}
	return last
}

// maxBackoff caps the delay between attempts
const maxBackoff = 30 * time.Second

// backoff is base doubled once per earlier attempt, capped at maxBackoff
// Doubling stops at the cap, so large attempt counts cannot overflow
func backoff(base time.Duration, attempt int) time.Duration {
	d := min(base, maxBackoff)
	for k := 0; k < attempt && d < maxBackoff; k++ {
		d *= 2
	}
	return min(d, maxBackoff)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
