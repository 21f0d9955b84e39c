// Package testkit holds small assertions and fixtures shared by package tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain fails t unless out contains want
// Long outputs are dumped to a temp file instead of the test log
func MustContain(t *testing.T, out, want string) {
	t.Helper()
	if strings.Contains(out, want) {
		return
	}
	if len(out) <= 512 {
		t.Fatalf("output %q does not contain %q", out, want)
	}
	dump := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(dump, []byte(out), 0o600)
	t.Fatalf("output does not contain %q, full output in %s", want, dump)
}

// WriteFile writes content under a fresh temp dir and returns its path,
// for word lists and slang tables fed to the loaders
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return p
}
