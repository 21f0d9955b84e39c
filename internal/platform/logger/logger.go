// Package logger wraps zerolog with process defaults and context-scoped fields
// The root logger is built once, from LOG_* variables unless Init ran first
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"alaynorm/internal/platform/config/raw"
)

// Logger is the project logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string // trace|debug|info|warn|error|fatal|panic, debug when unknown
	Format       string // console or json
	Service      string
	Component    string
	Writer       io.Writer // stdout when nil; stderr is better for the CLI
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_COMPONENT, LOG_CALLER and LOG_SAMPLE_EVERY
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(env.Get("LEVEL", "info")),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", ""),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		w := opt.Writer
		if w == nil {
			w = os.Stdout
		}
		if opt.Format != "json" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		b := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			b = b.Str("go_version", bi.GoVersion)
		}
		if opt.Service != "" {
			b = b.Str("service", opt.Service)
		}
		if opt.Component != "" {
			b = b.Str("component", opt.Component)
		}
		for k, v := range opt.StaticFields {
			b = b.Str(k, v)
		}
		if opt.WithCaller {
			b = b.Caller()
		}

		l := b.Logger()
		if opt.SampleEvery > 1 {
			l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		root.Store(&l)
	})
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl == zerolog.NoLevel || lvl == zerolog.Disabled {
		return zerolog.DebugLevel
	}
	return lvl
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"request_id"}
	keyRunID     = ctxKey{"run_id"}
)

// WithRequest tags ctx with an HTTP request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// WithRun tags ctx with a batch run id
func WithRun(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRunID, runID)
}

// C returns a child of the root logger carrying the ids found in ctx
func C(ctx context.Context) *Logger { return For(ctx, *Get()) }

// For returns a child of base carrying the ids found in ctx
func For(ctx context.Context, base Logger) *Logger {
	b := base.With()
	for _, k := range []ctxKey{keyRequestID, keyRunID} {
		if s, ok := ctx.Value(k).(string); ok && s != "" {
			b = b.Str(k.name, s)
		}
	}
	l := b.Logger()
	return &l
}

// Named returns a child of the root logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
