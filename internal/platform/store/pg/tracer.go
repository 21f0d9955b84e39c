package pg

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"alaynorm/internal/platform/logger"
)

// Tracer logs every statement through zerolog, warning past the slow threshold
// It implements pgx.QueryTracer
type Tracer struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*Tracer)(nil)

type traceKey struct{}

type traceStart struct {
	sql  string
	args []any
	at   time.Time
}

// NewTracer returns a Tracer; slow <= 0 never warns
func NewTracer(log logger.Logger, slow time.Duration) *Tracer {
	return &Tracer{
		log:  log.With().Str("component", "pg").Logger(),
		slow: slow,
		now:  time.Now,
	}
}

// TraceQueryStart stashes the statement on ctx
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: data.SQL, args: data.Args, at: t.now()})
}

// TraceQueryEnd logs the statement with its duration and outcome
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(st.at)
	slow := t.slow > 0 && elapsed >= t.slow

	evt := t.log.Debug()
	switch {
	case data.Err != nil:
		evt = t.log.Error().Err(data.Err)
	case slow:
		evt = t.log.Warn()
	}
	evt.Str("sql", compact(st.sql)).
		Int("args", len(st.args)).
		Dur("elapsed", elapsed).
		Bool("slow", slow).
		Int64("rows", data.CommandTag.RowsAffected()).
		Msg("pg query")
}

// compact folds whitespace runs so multi-line SQL logs on one line
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
