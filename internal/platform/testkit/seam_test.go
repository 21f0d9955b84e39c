package testkit

import (
	"sync"
	"testing"
)

var loadWords = func() []string { return []string{"aku"} }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &loadWords, func() []string { return nil })
		if loadWords() != nil {
			t.Fatalf("swap did not take effect")
		}
	})
	if got := loadWords(); len(got) != 1 || got[0] != "aku" {
		t.Fatalf("seam not restored: %v", got)
	}
}

func TestSerialExcludes(t *testing.T) {
	var (
		mu      sync.Mutex
		inside  int
		overlap bool
	)
	enter := func() {
		mu.Lock()
		inside++
		if inside > 1 {
			overlap = true
		}
		mu.Unlock()
	}
	leave := func() {
		mu.Lock()
		inside--
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b", "c"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				enter()
				for i := 0; i < 1000; i++ {
					_ = i * i
				}
				leave()
			})
		}
	})
	if overlap {
		t.Fatalf("Serial let two tests run together")
	}
}
