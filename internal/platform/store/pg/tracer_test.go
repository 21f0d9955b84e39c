package pg

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	kit "alaynorm/internal/platform/testkit"
)

func newTestTracer(buf *bytes.Buffer, slow time.Duration, step time.Duration) *Tracer {
	tr := NewTracer(zerolog.New(buf).Level(zerolog.DebugLevel), slow)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr.now = func() time.Time {
		at = at.Add(step)
		return at
	}
	return tr
}

func TestTracer_LogsQuery(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTracer(&buf, time.Second, time.Millisecond)

	ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{
		SQL:  "SELECT word\n\t FROM lexicon_words\n WHERE word > $1",
		Args: []any{"a"},
	})
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 3")})

	out := buf.String()
	kit.MustContain(t, out, `"level":"debug"`)
	kit.MustContain(t, out, `"sql":"SELECT word FROM lexicon_words WHERE word > $1"`)
	kit.MustContain(t, out, `"rows":3`)
	kit.MustContain(t, out, `"component":"pg"`)
}

func TestTracer_SlowAndError(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTracer(&buf, 5*time.Millisecond, 10*time.Millisecond)

	ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	kit.MustContain(t, buf.String(), `"level":"warn"`)
	kit.MustContain(t, buf.String(), `"slow":true`)

	buf.Reset()
	ctx = tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("relation missing")})
	kit.MustContain(t, buf.String(), `"level":"error"`)
	kit.MustContain(t, buf.String(), "relation missing")
}

func TestTracer_EndWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTracer(&buf, 0, time.Millisecond)
	tr.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	if buf.Len() != 0 {
		t.Fatalf("unexpected log: %s", buf.String())
	}
}

func TestCompact(t *testing.T) {
	if got := compact("  SELECT\n\t1 \r\n"); got != "SELECT 1" {
		t.Fatalf("compact = %q", got)
	}
}
