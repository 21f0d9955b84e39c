package testkit

import (
	"os"
	"strings"
	"testing"
)

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "service=alaynorm level=info", "service=alaynorm")
	MustContain(t, strings.Repeat("x", 1024)+"needle", "needle")
}

func TestWriteFile(t *testing.T) {
	p := WriteFile(t, "words.txt", "aku\nkamu\n")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != "aku\nkamu\n" {
		t.Fatalf("content = %q", b)
	}
}
