// Package service loads lexicon bundles and keeps the current one
package service

import (
	"context"
	"sync/atomic"

	"alaynorm/internal/core/lexicon"
	"alaynorm/internal/platform/config"
	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/logger"
	"alaynorm/internal/platform/store"
	"alaynorm/internal/services/lexicon/domain"
)

// Svc wraps a source and holds the last bundle it produced
type Svc struct {
	src domain.SourcePort
	log logger.Logger
	cur atomic.Pointer[domain.Bundle]
}

// New creates a lexicon service over src
func New(src domain.SourcePort, log logger.Logger) *Svc {
	if src == nil {
		panic("lexicon.Service requires a non nil SourcePort")
	}
	return &Svc{src: src, log: log}
}

// Load asks the source for a bundle and makes it current
// A source error is logged and returned, but the bundle it came with
// (possibly empty) still becomes current so normalization carries on
func (s *Svc) Load(ctx context.Context) (domain.Bundle, error) {
	b, err := s.src.Load(ctx)
	if b.Lexicon == nil {
		b.Lexicon = lexicon.NewLexicon()
	}
	if b.Slang == nil {
		b.Slang = lexicon.NewSlangMap(nil)
	}
	if err != nil {
		s.log.Warn().Err(err).
			Str("origin", string(b.Origin)).
			Int("words", b.Lexicon.Len()).
			Int("slang", b.Slang.Len()).
			Msg("lexicon loaded with problems")
	} else {
		s.log.Info().
			Str("origin", string(b.Origin)).
			Int("words", b.Lexicon.Len()).
			Int("slang", b.Slang.Len()).
			Msg("lexicon loaded")
	}
	s.cur.Store(&b)
	return b, err
}

// Current returns the last loaded bundle, loading once if nothing is loaded yet
func (s *Svc) Current(ctx context.Context) domain.Bundle {
	if b := s.cur.Load(); b != nil {
		return *b
	}
	b, _ := s.Load(ctx)
	return b
}

// FromConfig picks a source from LEXICON_SOURCE (embedded, file or pg)
// file reads LEXICON_WORDS_PATH and LEXICON_SLANG_PATH; pg needs st.PG
func FromConfig(c config.Conf, st *store.Store) (domain.SourcePort, error) {
	switch c.MayEnum("LEXICON_SOURCE", string(domain.OriginEmbedded),
		string(domain.OriginEmbedded), string(domain.OriginFile), string(domain.OriginPG)) {
	case string(domain.OriginFile):
		return File{
			WordsPath: c.MayString("LEXICON_WORDS_PATH", ""),
			SlangPath: c.MayString("LEXICON_SLANG_PATH", ""),
		}, nil
	case string(domain.OriginPG):
		if st == nil || st.PG == nil {
			return nil, perr.WithField(perr.InvalidArgf("lexicon: source pg needs %s", c.Key("PGSQL_DBURL")), "LEXICON_SOURCE")
		}
		return NewPGSource(st.PG), nil
	default:
		return Embedded{}, nil
	}
}
