// Package config reads service settings from environment variables
// Must* getters panic through the logger when a value is missing or malformed,
// May* getters fall back to a default and log a warning on malformed input
package config

import (
	"strconv"
	"strings"
	"time"

	"alaynorm/internal/platform/config/raw"
	"alaynorm/internal/platform/logger"
)

// Conf is a prefix-scoped view over the environment
// New().Prefix("CORE_").Prefix("API_") reads CORE_API_*
type Conf struct{ env raw.Conf }

// New returns an unprefixed Conf
func New() Conf { return Conf{env: raw.New()} }

// Prefix returns a child view
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

// Key returns the full variable name for key
func (c Conf) Key(key string) string { return c.env.Key(key) }

func (c Conf) required(key string) string {
	v, ok := c.env.Lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

func (c Conf) invalid(key, value, want string) {
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", value).Msg("invalid " + want)
}

// MustString returns the value or panics when unset
func (c Conf) MustString(key string) string { return c.required(key) }

// MustInt returns the value or panics when unset or not an integer
func (c Conf) MustInt(key string) int {
	s := c.required(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.invalid(key, s, "int value")
	}
	return v
}

// MustPort returns a listen address like ":4000" for a port in 1..65535
func (c Conf) MustPort(key string) string {
	s := c.required(key)
	if p, err := strconv.Atoi(s); err != nil || p < 1 || p > 65535 {
		c.invalid(key, s, "TCP port; expected 1..65535")
	}
	return ":" + s
}

// Require panics unless every key is set
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		_ = c.required(k)
	}
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string { return c.env.Get(key, def) }

// MayInt returns the value or def; a malformed value logs and yields def
func (c Conf) MayInt(key string, def int) int {
	return mayParse(c, key, def, strconv.Atoi)
}

// MayBool returns the value or def; a malformed value logs and yields def
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, def, strconv.ParseBool)
}

// MayDuration returns the value or def; a malformed value logs and yields def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, def, time.ParseDuration)
}

func mayParse[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Interface("default", def).
			Msg("invalid value; using default")
		return def
	}
	return v
}

// MayCSV splits a comma-separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the lowercased value when it is one of allowed, def when unset,
// and panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
