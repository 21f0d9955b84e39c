package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"alaynorm/internal/core/lexicon"
	"alaynorm/internal/core/normalize"
	"alaynorm/internal/platform/config"
	perr "alaynorm/internal/platform/errors"
	"alaynorm/internal/platform/logger"
	kit "alaynorm/internal/platform/testkit"
	lexdomain "alaynorm/internal/services/lexicon/domain"
	"alaynorm/internal/services/normalize/domain"
)

type staticLex struct{ b lexdomain.Bundle }

func (s *staticLex) Current(context.Context) lexdomain.Bundle { return s.b }

func newLex() *staticLex {
	return &staticLex{b: lexdomain.Bundle{
		Lexicon:  lexicon.NewLexicon("halo", "aku", "keren", "makan"),
		Slang:    lexicon.NewSlangMap(map[string]string{"bgt": "banget"}),
		Origin:   lexdomain.OriginEmbedded,
		LoadedAt: time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC),
	}}
}

func newSvc(cfg Config) (*Svc, *staticLex) {
	lx := newLex()
	return New(lx, cfg, zerolog.Nop()), lx
}

func TestNormalize(t *testing.T) {
	s, _ := newSvc(Config{MaxRunes: 100, CacheSize: 8})
	ctx := context.Background()

	out, err := s.Normalize(ctx, domain.NormalizeInput{Text: "H4l0o, aku k3ren bgt!"})
	require.NoError(t, err)
	require.Equal(t, "halo, aku keren banget!", out.Text)
	require.Equal(t, normalize.Counts{Leet: 2, Slang: 1}, out.Counts)
	require.Equal(t, 3, out.Events)
	require.Nil(t, out.Trace)

	out, err = s.Normalize(ctx, domain.NormalizeInput{Text: "H4l0o, aku k3ren bgt!", Trace: true})
	require.NoError(t, err)
	require.Len(t, out.Trace, 4)
	require.Equal(t, "bgt", out.Trace[3].Original)
	require.Equal(t, []normalize.Stage{normalize.StageSlang}, out.Trace[3].Stages)
	require.Equal(t, 1, s.cache.Len())
}

func TestNormalize_LogsThroughServiceLogger(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf).Level(zerolog.DebugLevel).With().Str("component", "normalize").Logger()
	s := New(newLex(), Config{}, log)

	ctx := logger.WithRequest(context.Background(), "req-42")
	_, err := s.Normalize(ctx, domain.NormalizeInput{Text: "k3ren"})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"component":"normalize"`)
	require.Contains(t, out, `"request_id":"req-42"`)
	require.Contains(t, out, `"events":1`)
}

func TestNormalize_PreparesInput(t *testing.T) {
	s, _ := newSvc(Config{})
	// fullwidth letters and a zero width space
	out, err := s.Normalize(context.Background(), domain.NormalizeInput{Text: "ｂｇｔ\u200b keren\x00"})
	require.NoError(t, err)
	require.Equal(t, "banget keren", out.Text)
}

func TestNormalize_Skip(t *testing.T) {
	s, _ := newSvc(Config{CacheSize: 8})
	ctx := context.Background()

	out, err := s.Normalize(ctx, domain.NormalizeInput{Text: "bgt", Skip: []string{"slang"}})
	require.NoError(t, err)
	require.Equal(t, "bgt", out.Text)

	out, err = s.Normalize(ctx, domain.NormalizeInput{Text: "bgt"})
	require.NoError(t, err)
	require.Equal(t, "banget", out.Text)
	require.Equal(t, 2, s.cache.Len())

	_, err = s.Normalize(ctx, domain.NormalizeInput{Text: "bgt", Skip: []string{"stem"}})
	require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
	e, _ := perr.As(err)
	require.Equal(t, "skip", e.Field())
}

func TestNormalize_Limits(t *testing.T) {
	s, _ := newSvc(Config{MaxRunes: 5})
	ctx := context.Background()

	_, err := s.Normalize(ctx, domain.NormalizeInput{Text: strings.Repeat("a", 6)})
	require.True(t, perr.IsCode(err, perr.ErrorCodeTooLarge))

	_, err = s.Normalize(ctx, domain.NormalizeInput{Text: " \x01\t "})
	require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
}

func TestCacheFollowsLexiconReload(t *testing.T) {
	s, lx := newSvc(Config{CacheSize: 8})
	ctx := context.Background()

	out, err := s.Normalize(ctx, domain.NormalizeInput{Text: "gw"})
	require.NoError(t, err)
	require.Equal(t, "gw", out.Text)

	lx.b.Slang = lexicon.NewSlangMap(map[string]string{"gw": "saya"})
	lx.b.LoadedAt = lx.b.LoadedAt.Add(time.Minute)

	out, err = s.Normalize(ctx, domain.NormalizeInput{Text: "gw"})
	require.NoError(t, err)
	require.Equal(t, "saya", out.Text)
}

func TestCounts(t *testing.T) {
	s, _ := newSvc(Config{})
	out, err := s.Counts(context.Background(), domain.CountsInput{Text: "H4l0o @nj!ng bgt"})
	require.NoError(t, err)
	require.Equal(t, 2, out.Leet)
	require.Equal(t, 1, out.Slang)
	require.Equal(t, 1, out.Counts.ForcedLeet)
}

func TestTokenize(t *testing.T) {
	s, _ := newSvc(Config{})
	out, err := s.Tokenize(context.Background(), domain.TokenizeInput{Text: "aku ! kamu"})
	require.NoError(t, err)
	require.Equal(t, []domain.Token{
		{Text: "aku", Kind: "word"},
		{Text: " ! ", Kind: "other"},
		{Text: "kamu", Kind: "word"},
	}, out.Tokens)
	require.Equal(t, 2, out.Words)
}

func TestLexicon(t *testing.T) {
	s, _ := newSvc(Config{})
	info, err := s.Lexicon(context.Background())
	require.NoError(t, err)
	require.Equal(t, lexdomain.Info{Origin: "embedded", Words: 4, Slang: 1, LoadedAt: "2025-09-03T13:00:00Z"}, info)
}

func TestParseSkip(t *testing.T) {
	stages, mask, err := ParseSkip([]string{"typo", "normalize_leet"})
	require.NoError(t, err)
	require.Equal(t, []normalize.Stage{normalize.StageTypo, normalize.StageLeet}, stages)
	require.Equal(t, uint8(1<<5|1<<1), mask)

	_, mask, err = ParseSkip(nil)
	require.NoError(t, err)
	require.Zero(t, mask)
}

func TestNew_Guards(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, Config{}, zerolog.Nop()) })
}

func TestConfigFrom(t *testing.T) {
	t.Setenv("ALAY_NORMALIZE_MAX_RUNES", "50")
	cfg := ConfigFrom(config.New().Prefix("ALAY_"))
	require.Equal(t, Config{MaxRunes: 50, CacheSize: 4096}, cfg)
}
