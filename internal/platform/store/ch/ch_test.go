package ch

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	perr "alaynorm/internal/platform/errors"
	kit "alaynorm/internal/platform/testkit"
)

// fakeConn implements only what Client calls; the embedded nil interface
// panics on anything else
type fakeConn struct {
	driver.Conn
	pingErr  error
	query    string
	batch    *fakeBatch
	closed   bool
	batchErr error
}

func (f *fakeConn) PrepareBatch(_ context.Context, q string, _ ...driver.PrepareBatchOption) (driver.Batch, error) {
	f.query = q
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	f.batch = &fakeBatch{}
	return f.batch, nil
}
func (f *fakeConn) Ping(context.Context) error { return f.pingErr }
func (f *fakeConn) Close() error               { f.closed = true; return nil }

type fakeBatch struct {
	driver.Batch
	rows    [][]any
	sent    bool
	aborted bool
}

func (b *fakeBatch) Append(v ...any) error { b.rows = append(b.rows, v); return nil }
func (b *fakeBatch) Send() error           { b.sent = true; return nil }
func (b *fakeBatch) Abort() error          { b.aborted = true; return nil }

func TestInsertSQL(t *testing.T) {
	got := insertSQL("normalized_texts", []string{"run_id", "text_id", "normalized"})
	if got != "INSERT INTO normalized_texts (run_id, text_id, normalized)" {
		t.Fatalf("insertSQL = %q", got)
	}
	if got := insertSQL("t", nil); got != "INSERT INTO t" {
		t.Fatalf("insertSQL no columns = %q", got)
	}
}

func TestInsertRows(t *testing.T) {
	fc := &fakeConn{}
	c := New(fc)
	rows := [][]any{{"r1", int64(1)}, {"r1", int64(2)}}

	if err := c.InsertRows(context.Background(), "normalized_texts", []string{"run_id", "text_id"}, rows); err != nil {
		t.Fatalf("InsertRows: %v", err)
	}
	if fc.query != "INSERT INTO normalized_texts (run_id, text_id)" {
		t.Fatalf("query = %q", fc.query)
	}
	if !fc.batch.sent || !reflect.DeepEqual(fc.batch.rows, rows) {
		t.Fatalf("batch = %+v", fc.batch)
	}
}

func TestInsertRows_Errors(t *testing.T) {
	fc := &fakeConn{}
	c := New(fc)

	if err := c.InsertRows(context.Background(), "t", []string{"a"}, nil); err != nil || fc.query != "" {
		t.Fatalf("empty insert should be a no-op: %v %q", err, fc.query)
	}

	err := c.InsertRows(context.Background(), "t", []string{"a", "b"}, [][]any{{1}})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) || !fc.batch.aborted {
		t.Fatalf("short row: err=%v aborted=%v", err, fc.batch.aborted)
	}

	fc.batchErr = &clickhouse.Exception{Code: 60, Message: "Table default.t does not exist"}
	err = c.InsertRows(context.Background(), "t", []string{"a"}, [][]any{{1}})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing table err = %v", err)
	}
}

func TestOpen(t *testing.T) {
	kit.Serial(t)

	if _, err := Open(context.Background(), Config{URL: "://nope"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad dsn err = %v", err)
	}

	fc := &fakeConn{}
	var info clickhouse.ClientInfo
	kit.Swap(t, &openConn, func(o *clickhouse.Options) (driver.Conn, error) {
		info = o.ClientInfo
		return fc, nil
	})
	c, err := Open(context.Background(), Config{URL: "clickhouse://default@localhost:9000/alay", Role: "alaynorm-batch", Version: "v1"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(info.Products) == 0 || info.Products[0].Name != "alaynorm" || info.Products[0].Version != "v1" {
		t.Fatalf("client info = %+v", info)
	}
	if err := c.Close(); err != nil || !fc.closed {
		t.Fatalf("Close: %v %v", err, fc.closed)
	}

	fc = &fakeConn{pingErr: errors.New("dial tcp: connection refused")}
	if _, err := Open(context.Background(), Config{URL: "clickhouse://localhost:9000"}); err == nil || !fc.closed {
		t.Fatalf("ping failure: err=%v closed=%v", err, fc.closed)
	}
}

func TestBuildClientInfo(t *testing.T) {
	info := BuildClientInfo(" alaynorm-batch ", "v0.3.0")
	names := map[string]string{}
	for _, p := range info.Products {
		names[p.Name] = p.Version
	}
	if names["alaynorm"] != "v0.3.0" || names["role"] != "alaynorm-batch" || names["go"] == "" {
		t.Fatalf("products = %+v", info.Products)
	}
}
