package testkit

import (
	"sync"
	"testing"
)

var seamMu sync.Mutex

// Swap replaces a package-level seam (clock, dialer, loader) until t ends
func Swap[T any](t *testing.T, seam *T, v T) {
	t.Helper()
	prev := *seam
	*seam = v
	t.Cleanup(func() { *seam = prev })
}

// Serial holds a process-wide lock until t ends, for tests that Swap shared seams
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
