package repo

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"alaynorm/internal/platform/store"
)

type rows struct {
	data [][]string
	i    int
}

func (r *rows) Next() bool { r.i++; return r.i <= len(r.data) }
func (r *rows) Err() error { return nil }
func (r *rows) Close()     {}
func (r *rows) Scan(dest ...any) error {
	for i, d := range dest {
		*(d.(*string)) = r.data[r.i-1][i]
	}
	return nil
}

type querier struct {
	store.Querier
	rows *rows
	err  error
	sql  []string
}

func (q *querier) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	q.sql = append(q.sql, sql)
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestWords(t *testing.T) {
	q := &querier{rows: &rows{data: [][]string{{"aku"}, {"halo"}}}}
	got, err := NewPG().Bind(q).Words(context.Background())
	if err != nil || !reflect.DeepEqual(got, []string{"aku", "halo"}) {
		t.Fatalf("Words = %v, %v", got, err)
	}
	if len(q.sql) != 1 {
		t.Fatalf("want one query, got %d", len(q.sql))
	}
}

func TestSlang(t *testing.T) {
	q := &querier{rows: &rows{data: [][]string{{"bgt", "banget"}, {"gw", "saya"}}}}
	got, err := NewPG().Bind(q).Slang(context.Background())
	want := map[string]string{"bgt": "banget", "gw": "saya"}
	if err != nil || !reflect.DeepEqual(got, want) {
		t.Fatalf("Slang = %v, %v", got, err)
	}

	boom := errors.New("boom")
	if _, err := NewPG().Bind(&querier{err: boom}).Slang(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Slang err = %v", err)
	}
}
