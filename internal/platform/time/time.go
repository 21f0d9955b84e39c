// Package time contains time related helpers
package time

import (
	"strings"
	"time"

	perr "alaynorm/internal/platform/errors"
)

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseMoment reads an absolute timestamp or a duration back from now
// "" is the zero time, "36h" means now minus 36 hours, "2025-01-31" is
// midnight UTC that day
func ParseMoment(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		if d < 0 {
			d = -d
		}
		return now.Add(-d).UTC(), nil
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, perr.InvalidArgf("time: cannot parse %q as a timestamp or duration", s)
}

// Window is a half open [Since, Until) range; a zero bound is open
type Window struct {
	Since time.Time
	Until time.Time
}

// ParseWindow parses both bounds with ParseMoment and checks their order
func ParseWindow(since, until string, now time.Time) (Window, error) {
	var w Window
	var err error
	if w.Since, err = ParseMoment(since, now); err != nil {
		return Window{}, perr.WithField(err, "since")
	}
	if w.Until, err = ParseMoment(until, now); err != nil {
		return Window{}, perr.WithField(err, "until")
	}
	if !w.Since.IsZero() && !w.Until.IsZero() && !w.Since.Before(w.Until) {
		return Window{}, perr.WithField(perr.InvalidArgf("time: since must be before until"), "since")
	}
	return w, nil
}

// Contains reports whether t falls inside w
func (w Window) Contains(t time.Time) bool {
	if !w.Since.IsZero() && t.Before(w.Since) {
		return false
	}
	if !w.Until.IsZero() && !t.Before(w.Until) {
		return false
	}
	return true
}
