package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	perr "alaynorm/internal/platform/errors"
)

// Many scans every row of a query with scan
func Many[T any](ctx context.Context, q Querier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Each streams rows to fn until fn returns false or the rows run out
func Each(ctx context.Context, q Querier, fn func(Row) (bool, error), sql string, args ...any) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		more, err := fn(rows)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return rows.Err()
}

// Scalar reads the first column of the first row; no row is ErrorCodeNotFound
func Scalar[T any](ctx context.Context, q Querier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, perr.Wrap(err, perr.ErrorCodeNotFound, "no rows")
		}
		return zero, err
	}
	return v, nil
}
