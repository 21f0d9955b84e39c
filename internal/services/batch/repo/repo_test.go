package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"alaynorm/internal/core/normalize"
	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/store"
	kit "alaynorm/internal/platform/testkit"
	"alaynorm/internal/services/batch/domain"
)

type textRows struct {
	data []domain.Text
	i    int
}

func (r *textRows) Next() bool { r.i++; return r.i <= len(r.data) }
func (r *textRows) Err() error { return nil }
func (r *textRows) Close()     {}
func (r *textRows) Scan(dest ...any) error {
	t := r.data[r.i-1]
	*(dest[0].(*int64)) = t.ID
	*(dest[1].(*string)) = t.Body
	*(dest[2].(*time.Time)) = t.CreatedAt
	return nil
}

type recQuerier struct {
	store.Querier
	rows *textRows
	args []any
}

func (q *recQuerier) Query(_ context.Context, _ string, args ...any) (store.Rows, error) {
	q.args = args
	return q.rows, nil
}

func TestPage(t *testing.T) {
	at := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	q := &recQuerier{rows: &textRows{data: []domain.Text{{ID: 7, Body: "bgt", CreatedAt: at}}}}

	got, err := NewPG().Bind(q).Page(context.Background(), domain.Window{Until: at}, domain.Cursor{}, 0)
	require.NoError(t, err)
	require.Equal(t, []domain.Text{{ID: 7, Body: "bgt", CreatedAt: at}}, got)

	require.Len(t, q.args, 5)
	require.Equal(t, time.Unix(0, 0).UTC(), q.args[0])
	require.Equal(t, int64(0), q.args[1])
	require.Nil(t, q.args[2])
	require.Equal(t, at, q.args[3])
	require.Equal(t, 500, q.args[4])
}

type memWarehouse struct {
	store.Warehouse
	table string
	cols  []string
	rows  [][]any
	err   error
}

func (m *memWarehouse) InsertRows(_ context.Context, table string, cols []string, rows [][]any) error {
	m.table, m.cols, m.rows = table, cols, rows
	return m.err
}

func TestSink(t *testing.T) {
	w := &memWarehouse{}
	at := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	rows := []domain.Normalized{{
		RunID: "run-1", TextID: 3, CreatedAt: at, Original: "bgt", Text: "banget",
		Counts: normalize.Counts{Slang: 1}, NormalizedAt: at,
	}}
	require.NoError(t, NewCH(w).Write(context.Background(), rows))
	require.Equal(t, Table, w.table)
	require.Len(t, w.rows, 1)
	require.Len(t, w.rows[0], len(Columns))
	require.Equal(t, "banget", w.rows[0][4])
	require.Equal(t, uint32(1), w.rows[0][9])

	// empty batches never reach the warehouse
	w2 := &memWarehouse{err: errors.New("should not be called")}
	require.NoError(t, NewCH(w2).Write(context.Background(), nil))

	w.err = errors.New("code: 209, message: Timeout exceeded")
	err := NewCH(w).Write(context.Background(), rows)
	require.True(t, perr.IsCode(err, perr.ErrorCodeWarehouse))

	kit.MustPanic(t, func() { NewCH(nil) })
}
