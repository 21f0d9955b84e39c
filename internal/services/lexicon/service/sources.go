package service

import (
	"context"
	"errors"
	"time"

	"alaynorm/internal/core/lexicon"
	"alaynorm/internal/modkit/repokit"
	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/store"
	"alaynorm/internal/services/lexicon/domain"
	"alaynorm/internal/services/lexicon/repo"
)

var now = time.Now

// Embedded serves the corpus compiled into the binary
type Embedded struct{}

// Load implements domain.SourcePort
func (Embedded) Load(context.Context) (domain.Bundle, error) {
	lx, sm := lexicon.Default()
	return domain.Bundle{Lexicon: lx, Slang: sm, Origin: domain.OriginEmbedded, LoadedAt: now()}, nil
}

// File reads a word list and a slang CSV from disk
// An empty path keeps the embedded collection for that half
type File struct {
	WordsPath string
	SlangPath string
}

// Load implements domain.SourcePort
func (f File) Load(context.Context) (domain.Bundle, error) {
	lx, sm := lexicon.Default()
	var errs []error
	if f.WordsPath != "" {
		var err error
		if lx, err = lexicon.LoadWordsFile(f.WordsPath); err != nil {
			errs = append(errs, perr.WithField(err, "words"))
		}
	}
	if f.SlangPath != "" {
		var err error
		if sm, err = lexicon.LoadSlangFile(f.SlangPath); err != nil {
			errs = append(errs, perr.WithField(err, "slang"))
		}
	}
	return domain.Bundle{Lexicon: lx, Slang: sm, Origin: domain.OriginFile, LoadedAt: now()}, errors.Join(errs...)
}

// PG reads lexicon_words and slang_terms
type PG struct{ repo repo.Repo }

// NewPGSource binds the lexicon repo to q
func NewPGSource(q store.Querier) PG {
	return PG{repo: repokit.MustBind(repo.NewPG(), q)}
}

// Load implements domain.SourcePort
func (p PG) Load(ctx context.Context) (domain.Bundle, error) {
	b := domain.Bundle{Lexicon: lexicon.NewLexicon(), Slang: lexicon.NewSlangMap(nil), Origin: domain.OriginPG, LoadedAt: now()}

	var errs []error
	words, err := p.repo.Words(ctx)
	if err != nil {
		errs = append(errs, perr.FromPostgres(err, "lexicon: read lexicon_words"))
	} else {
		b.Lexicon = lexicon.NewLexicon(words...)
	}
	pairs, err := p.repo.Slang(ctx)
	if err != nil {
		errs = append(errs, perr.FromPostgres(err, "lexicon: read slang_terms"))
	} else {
		b.Slang = lexicon.NewSlangMap(pairs)
	}
	return b, errors.Join(errs...)
}
