package time

import (
	"testing"
	"time"

	perr "alaynorm/internal/platform/errors"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatalf("zero time should give nil")
	}
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr(now) = %v", p)
	}
}

func TestParseMoment(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"", time.Time{}},
		{"36h", now.Add(-36 * time.Hour)},
		{"-2h", now.Add(-2 * time.Hour)},
		{"2025-01-31", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"2025-01-31 08:30:00", time.Date(2025, 1, 31, 8, 30, 0, 0, time.UTC)},
		{"2025-01-31T08:30:00+07:00", time.Date(2025, 1, 31, 1, 30, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseMoment(c.in, now)
		if err != nil {
			t.Fatalf("ParseMoment(%q) error: %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("ParseMoment(%q) = %v want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseMoment("yesterday", now); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("48h", "24h", now)
	if err != nil {
		t.Fatalf("ParseWindow: %v", err)
	}
	if !w.Contains(now.Add(-30*time.Hour)) || w.Contains(now.Add(-24*time.Hour)) || w.Contains(now.Add(-49*time.Hour)) {
		t.Fatalf("window bounds wrong: %+v", w)
	}

	_, err = ParseWindow("24h", "48h", now)
	if e, ok := perr.As(err); !ok || e.Field() != "since" {
		t.Fatalf("reversed window should fail on since, got %v", err)
	}
	_, err = ParseWindow("", "nope", now)
	if e, ok := perr.As(err); !ok || e.Field() != "until" {
		t.Fatalf("bad until should carry the field, got %v", err)
	}

	open := Window{}
	if !open.Contains(now) {
		t.Fatalf("open window contains everything")
	}
}
