// Package version reports what build is running
package version

import (
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X alaynorm/internal/core/version.Version=v0.3.0 -X alaynorm/internal/core/version.Commit=abc1234 -X alaynorm/internal/core/version.Date=2026-01-31"
var (
	Version = "dev"
	Commit  = ""
	Date    = "unknown"
)

// BuildInfo is the build identity served by /v1/meta/version and the CLI
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Info describes this build for the named binary
func Info(service string) BuildInfo {
	return BuildInfo{
		Service:   service,
		Version:   Version,
		Commit:    ShortCommit(),
		Date:      Date,
		GoVersion: runtime.Version(),
	}
}

// ShortCommit is Commit, or the vcs revision stamped by the go tool, cut to 7 chars
func ShortCommit() string {
	c := Commit
	if c == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					c = s.Value
					break
				}
			}
		}
	}
	if c == "" {
		return "unknown"
	}
	if len(c) > 7 {
		c = c[:7]
	}
	return c
}
