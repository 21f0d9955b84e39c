// Package repokit binds repositories to a store.Querier
package repokit

import "alaynorm/internal/platform/store"

// Binder builds a repository over a Querier
type Binder[T any] interface {
	Bind(q store.Querier) T
}

// BindFunc is a Binder from a plain function
type BindFunc[T any] func(store.Querier) T

// Bind calls f
func (f BindFunc[T]) Bind(q store.Querier) T { return f(q) }

// MustBind binds b to q, panicking on a nil Querier
func MustBind[T any](b Binder[T], q store.Querier) T {
	if q == nil {
		panic("repokit: nil Querier")
	}
	return b.Bind(q)
}
