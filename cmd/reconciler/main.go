package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/playerpulse/playerpulse/internal/api"
	"github.com/playerpulse/playerpulse/internal/checkpoint"
	"github.com/playerpulse/playerpulse/internal/config"
	"github.com/playerpulse/playerpulse/internal/fetch"
	"github.com/playerpulse/playerpulse/internal/pipeline"
	"github.com/playerpulse/playerpulse/internal/rank"
	"github.com/playerpulse/playerpulse/internal/report"
	"github.com/playerpulse/playerpulse/internal/source"
	"github.com/playerpulse/playerpulse/internal/store"
	"github.com/playerpulse/playerpulse/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/reconciler.yaml", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting reconciler",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	runID := uuid.New()

	chartsClient := api.NewClient(cfg.API.ChartsURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, config.DefaultAPIBackoff),
		api.WithLogger(logger),
	)
	catalogClient := api.NewClient(cfg.API.CatalogURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, config.DefaultAPIBackoff),
		api.WithLogger(logger),
	)
	playersClient := api.NewClient(cfg.API.PlayersURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)

	sources := []source.Source{
		source.NewChartsSource(chartsClient),
		source.NewCatalogSource(catalogClient, cfg.Sources.CatalogMaxPages),
		source.NewCuratedSource(cfg.Sources.Curated),
	}

	checkpointer := checkpoint.New(
		cfg.Checkpoint.Dir,
		cfg.Checkpoint.Interval,
		cfg.Checkpoint.TopN,
		runID.String(),
		logger,
	)

	fetcher := fetch.New(fetch.Config{
		Concurrency: cfg.Fetch.Concurrency,
		WindowSize:  cfg.Fetch.WindowSize,
		WindowDelay: cfg.Fetch.WindowDelay,
		Retry: fetch.Policy{
			MaxRetries: cfg.Fetch.Retries,
			DelayUnit:  cfg.Fetch.RetryDelay,
		},
	}, playersClient, checkpointer, logger)

	reporter := report.NewWriter(cfg.Output.Dir, cfg.Output.SummaryTopN, logger)

	var saver pipeline.Saver
	if cfg.Store.Enabled {
		st, err := store.Connect(ctx, cfg.Store.DB, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer st.Close()
		logger.Info("database connected", "host", cfg.Store.DB.Host, "database", cfg.Store.DB.Name)
		saver = st
	}

	p := pipeline.New(pipeline.Config{
		RunID:           runID,
		SampleTarget:    cfg.Sample.TargetSize,
		MinimumRequired: cfg.Rank.MinimumRequired,
	}, sources, fetcher, reporter, saver, logger)

	ds, err := p.Run(ctx)
	if err != nil {
		var thresholdErr *rank.ThresholdError
		if errors.As(err, &thresholdErr) {
			logger.Error("reconciliation failed",
				"ranked", thresholdErr.Got,
				"required", thresholdErr.Want,
				"error", err,
			)
		} else {
			logger.Error("reconciliation failed", "error", err)
		}
		os.Exit(1)
	}

	logger.Info("reconciler finished",
		"run_id", runID,
		"ranked", ds.TotalItems,
		"failed_lookups", ds.Failed,
		"duration", ds.Duration,
	)
}
