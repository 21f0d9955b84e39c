package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alaynorm/internal/core/normalize"
	"alaynorm/internal/modkit/repokit"
	"alaynorm/internal/platform/config"
	"alaynorm/internal/platform/logger"
	"alaynorm/internal/platform/store"
	ptime "alaynorm/internal/platform/time"

	batchdom "alaynorm/internal/services/batch/domain"
	batchrepo "alaynorm/internal/services/batch/repo"
	batchsvc "alaynorm/internal/services/batch/service"
	lexsvc "alaynorm/internal/services/lexicon/service"
)

func main() {
	root := config.New()
	coreCfg := root.Prefix("CORE_")
	svcCfg := root.Prefix("SERVICE_")
	cfg := batchsvc.FromConfig(coreCfg)

	var (
		fSince  = flag.String("since", "", "oldest created_at to read: RFC3339, YYYY-MM-DD or a duration back from now (48h)")
		fUntil  = flag.String("until", "", "created_at upper bound, exclusive; same forms as -since")
		fPage   = flag.Int("page", cfg.PageSize, "rows per page")
		fMax    = flag.Int("max-pages", cfg.MaxPages, "stop after this many pages; 0 = all")
		fDryRun = flag.Bool("dry-run", cfg.DryRun, "normalize and count without writing to clickhouse")
	)
	flag.Parse()
	cfg.PageSize, cfg.MaxPages, cfg.DryRun = *fPage, *fMax, *fDryRun

	l := logger.Get()

	win, err := ptime.ParseWindow(*fSince, *fUntil, time.Now())
	if err != nil {
		l.Fatal().Err(err).Msg("bad -since/-until")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stCfg := store.ConfigFrom(svcCfg, "alaynorm-batch")
	if !stCfg.PG.Enabled {
		l.Fatal().Str("key", svcCfg.Key("PGSQL_DBURL")).Msg("batch needs postgres")
	}
	if !stCfg.CH.Enabled && !cfg.DryRun {
		l.Fatal().Str("key", svcCfg.Key("CLICKHOUSE_DBURL")).Msg("batch needs clickhouse unless -dry-run")
	}
	st, err := store.Open(ctx, stCfg, store.WithLogger(*logger.Named("store")))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	src, err := lexsvc.FromConfig(coreCfg, st)
	if err != nil {
		l.Fatal().Err(err).Msg("lexicon source")
	}
	bundle, err := lexsvc.New(src, *logger.Named("lexicon")).Load(ctx)
	if err != nil {
		l.Warn().Err(err).Msg("running with a partial lexicon")
	}

	var sink batchdom.Sink
	if !cfg.DryRun {
		sink = batchrepo.NewCH(st.CH)
	}
	svc := batchsvc.New(
		repokit.MustBind(batchrepo.NewPG(), st.PG),
		sink,
		normalize.New(bundle.Lexicon, bundle.Slang),
		cfg,
	)

	sum, err := svc.Run(ctx, batchdom.Window{Since: win.Since, Until: win.Until})
	_ = json.NewEncoder(os.Stdout).Encode(sum)
	if err != nil {
		l.Error().Err(err).Str("run_id", sum.RunID).Msg("batch failed")
		os.Exit(1)
	}
}
