// Package service contains normalize workflows
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"alaynorm/internal/core/normalize"
	"alaynorm/internal/platform/config"
	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/logger"
	lexdomain "alaynorm/internal/services/lexicon/domain"
	"alaynorm/internal/services/normalize/domain"
)

// Service defines the service contract for normalize
type Service interface{ domain.ServicePort }

// LexiconSource hands out the current lexicon bundle
type LexiconSource interface {
	Current(ctx context.Context) lexdomain.Bundle
}

// Config bounds the service
type Config struct {
	MaxRunes  int // texts longer than this are rejected; 0 means no limit
	CacheSize int // LRU entries; 0 disables the cache
}

// ConfigFrom reads NORMALIZE_MAX_RUNES and NORMALIZE_CACHE_SIZE
func ConfigFrom(c config.Conf) Config {
	return Config{
		MaxRunes:  c.MayInt("NORMALIZE_MAX_RUNES", 20000),
		CacheSize: c.MayInt("NORMALIZE_CACHE_SIZE", 4096),
	}
}

type cacheKey struct {
	gen  int64
	mask uint8
	text string
}

type entry struct {
	res   normalize.Result
	trace []normalize.TokenTrace
}

// Svc implements the Service interface
type Svc struct {
	lex   LexiconSource
	cfg   Config
	cache *lru.Cache[cacheKey, entry]
	log   logger.Logger
}

// New creates a normalize service over lex
func New(lex LexiconSource, cfg Config, log logger.Logger) *Svc {
	if lex == nil {
		panic("normalize.Service requires a non nil LexiconSource")
	}
	s := &Svc{lex: lex, cfg: cfg, log: log}
	if cfg.CacheSize > 0 {
		c, err := lru.New[cacheKey, entry](cfg.CacheSize)
		if err != nil {
			panic(err)
		}
		s.cache = c
	}
	return s
}

// Normalize prepares in.Text and runs the pipeline over it
func (s *Svc) Normalize(ctx context.Context, in domain.NormalizeInput) (domain.NormalizeOutput, error) {
	e, err := s.run(ctx, in.Text, in.Skip)
	if err != nil {
		return domain.NormalizeOutput{}, err
	}
	out := domain.NormalizeOutput{Text: e.res.Text, Counts: e.res.Counts, Events: e.res.Counts.Total()}
	if in.Trace {
		out.Trace = e.trace
	}
	return out, nil
}

// Counts reports the leet and slang events of in.Text
func (s *Svc) Counts(ctx context.Context, in domain.CountsInput) (domain.CountsOutput, error) {
	e, err := s.run(ctx, in.Text, in.Skip)
	if err != nil {
		return domain.CountsOutput{}, err
	}
	return domain.CountsOutput{
		Leet:   e.res.Counts.LeetEvents(),
		Slang:  e.res.Counts.Slang,
		Counts: e.res.Counts,
	}, nil
}

// Tokenize prepares in.Text and splits it without running any stage
func (s *Svc) Tokenize(_ context.Context, in domain.TokenizeInput) (domain.TokenizeOutput, error) {
	text, err := s.prepare(in.Text)
	if err != nil {
		return domain.TokenizeOutput{}, err
	}
	toks := normalize.Tokenize(text)
	out := domain.TokenizeOutput{Tokens: make([]domain.Token, 0, len(toks))}
	for _, t := range toks {
		out.Tokens = append(out.Tokens, domain.Token{Text: t.Text, Kind: t.Kind.String()})
		if t.Kind == normalize.WordLike {
			out.Words++
		}
	}
	return out, nil
}

// Lexicon summarizes the bundle in use
func (s *Svc) Lexicon(ctx context.Context) (lexdomain.Info, error) {
	return s.lex.Current(ctx).Info(), nil
}

func (s *Svc) run(ctx context.Context, raw string, skip []string) (entry, error) {
	stages, mask, err := ParseSkip(skip)
	if err != nil {
		return entry{}, err
	}
	text, err := s.prepare(raw)
	if err != nil {
		return entry{}, err
	}

	b := s.lex.Current(ctx)
	key := cacheKey{gen: b.LoadedAt.UnixNano(), mask: mask, text: text}
	if s.cache != nil {
		if e, ok := s.cache.Get(key); ok {
			return e, nil
		}
	}

	n := normalize.New(b.Lexicon, b.Slang, normalize.WithSkip(stages...))
	res, trace := n.NormalizeTrace(text)
	e := entry{res: res, trace: trace}
	if s.cache != nil {
		s.cache.Add(key, e)
	}
	logger.For(ctx, s.log).Debug().
		Int("runes", utf8.RuneCountInString(text)).
		Int("events", res.Counts.Total()).
		Msg("normalized")
	return e, nil
}

func (s *Svc) prepare(raw string) (string, error) {
	text := normalize.Prepare(raw)
	if strings.TrimSpace(text) == "" {
		return "", perr.WithField(perr.Validationf("text is empty after cleanup"), "text")
	}
	if s.cfg.MaxRunes > 0 {
		if n := utf8.RuneCountInString(text); n > s.cfg.MaxRunes {
			return "", perr.WithField(perr.TooLargef("text has %d characters, limit is %d", n, s.cfg.MaxRunes), "text")
		}
	}
	return text, nil
}

// ParseSkip resolves stage names and packs them into a bitmask in pipeline order
func ParseSkip(names []string) ([]normalize.Stage, uint8, error) {
	var (
		out  []normalize.Stage
		mask uint8
	)
	for _, name := range names {
		st, ok := normalize.ParseStage(name)
		if !ok {
			return nil, 0, perr.WithField(perr.Validationf("unknown stage %q", name), "skip")
		}
		for i, known := range normalize.Stages {
			if known == st {
				mask |= 1 << i
			}
		}
		out = append(out, st)
	}
	return out, mask, nil
}
