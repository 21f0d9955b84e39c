package config

import (
	"reflect"
	"testing"
	"time"

	kit "alaynorm/internal/platform/testkit"
)

func TestPrefixNesting(t *testing.T) {
	api := New().Prefix("CORE_").Prefix("API_")
	if got := api.Key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("Key() = %q, want CORE_API_PORT", got)
	}
}

func TestMustGetters(t *testing.T) {
	c := New().Prefix("CORE_API_")
	t.Setenv("CORE_API_NAME", "  alaynorm ")
	t.Setenv("CORE_API_MAX_TEXT", " 2048 ")
	t.Setenv("CORE_API_PORT", "4000")
	t.Setenv("CORE_API_BAD_INT", "lots")
	t.Setenv("CORE_API_BAD_PORT", "70000")
	t.Setenv("CORE_API_BLANK", "   ")

	if got := c.MustString("NAME"); got != "alaynorm" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("MAX_TEXT"); got != 2048 {
		t.Fatalf("MustInt = %d", got)
	}
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
	kit.MustPanic(t, func() { _ = c.MustInt("BAD_INT") })
	kit.MustPanic(t, func() { _ = c.MustPort("BAD_PORT") })
	kit.MustPanic(t, func() { c.Require("NAME", "MISSING") })
	kit.MustNotPanic(t, func() { c.Require("NAME", "PORT") })
}

func TestMayGetters(t *testing.T) {
	c := New().Prefix("CORE_BATCH_")
	t.Setenv("CORE_BATCH_PAGE_SIZE", " 250 ")
	t.Setenv("CORE_BATCH_DRY_RUN", "true")
	t.Setenv("CORE_BATCH_TIMEOUT", "90s")
	t.Setenv("CORE_BATCH_BAD", "x")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("PAGE_SIZE", 1); got != 250 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad = %d, want default", got)
	}
	if !c.MayBool("DRY_RUN", false) {
		t.Fatalf("MayBool = false")
	}
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad should use default")
	}
	if got := c.MayDuration("TIMEOUT", time.Second); got != 90*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORE_API_")
	def := []string{"*"}

	tests := []struct {
		val  string
		want []string
	}{
		{"", def},
		{" , ,  ,", def},
		{" http://a.test, http://b.test , ,", []string{"http://a.test", "http://b.test"}},
	}
	for _, tt := range tests {
		t.Setenv("CORE_API_ORIGINS", tt.val)
		if got := c.MayCSV("ORIGINS", def); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("MayCSV(%q) = %#v, want %#v", tt.val, got, tt.want)
		}
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CORE_LEXICON_")
	allowed := []string{"embedded", "file", "pg"}

	if got := c.MayEnum("SOURCE", "embedded", allowed...); got != "embedded" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("CORE_LEXICON_SOURCE", "File")
	if got := c.MayEnum("SOURCE", "embedded", allowed...); got != "file" {
		t.Fatalf("MayEnum = %q, want file", got)
	}
	t.Setenv("CORE_LEXICON_SOURCE", "s3")
	kit.MustPanic(t, func() { _ = c.MayEnum("SOURCE", "embedded", allowed...) })
}
