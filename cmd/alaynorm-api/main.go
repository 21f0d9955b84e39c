package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"alaynorm/internal/platform/config"
	"alaynorm/internal/platform/logger"
	phttp "alaynorm/internal/platform/net/http"
	"alaynorm/internal/platform/store"

	"alaynorm/internal/services/api"
	lexsvc "alaynorm/internal/services/lexicon/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// service-scoped config (CORE_*) and backend config (SERVICE_*)
	root := config.New()
	coreCfg := root.Prefix("CORE_")
	svcCfg := root.Prefix("SERVICE_")

	l := logger.Get()

	// both backends are optional for the API; pg only matters with CORE_LEXICON_SOURCE=pg
	st, err := store.Open(ctx, store.ConfigFrom(svcCfg, api.ServiceName), store.WithLogger(*logger.Named("store")))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	src, err := lexsvc.FromConfig(coreCfg, st)
	if err != nil {
		l.Panic().Err(err).Msg("lexicon source")
	}
	lex := lexsvc.New(src, *logger.Named("lexicon"))
	if _, err := lex.Load(ctx); err != nil {
		l.Warn().Err(err).Msg("serving with a partial lexicon")
	}

	srv := phttp.NewServer(coreCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         coreCfg,
			Store:          st,
			Logger:         l,
			Lexicon:        lex,
			EnableSwagger:  coreCfg.MayBool("API_SWAGGER", true),
			EnableProfiler: coreCfg.MayBool("API_PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
