// Package raw reads environment variables during bootstrap, before the logger exists
// It must not import the logger (the logger configures itself through it)
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefix-scoped view over the environment ("LOG_", "CORE_API_")
type Conf struct{ prefix string }

// New returns an unprefixed Conf
func New() Conf { return Conf{} }

// Prefix returns a child view, prefixes nest: New().Prefix("CORE_").Prefix("API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the full variable name for key
func (c Conf) Key(key string) string { return c.prefix + key }

// Lookup returns the trimmed value and whether it is non-empty
func (c Conf) Lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.Key(key)))
	return v, v != ""
}

// Get returns the value or def when unset or blank
func (c Conf) Get(key, def string) string {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return def
}

// GetBool accepts 1/true/yes/on as true, anything else set is false
func (c Conf) GetBool(key string, def bool) bool {
	v, ok := c.Lookup(key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GetInt returns a non-negative integer or def when unset or unparsable
func (c Conf) GetInt(key string, def int) int {
	v, ok := c.Lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
