package pipeline

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/playerpulse/playerpulse/internal/fetch"
	"github.com/playerpulse/playerpulse/internal/merge"
	"github.com/playerpulse/playerpulse/internal/model"
	"github.com/playerpulse/playerpulse/internal/rank"
	"github.com/playerpulse/playerpulse/internal/sample"
	"github.com/playerpulse/playerpulse/internal/source"
)

// Reporter renders a finished dataset to its output documents.
type Reporter interface {
	Write(ds *model.Dataset) error
}

// Saver persists a finished dataset.
type Saver interface {
	SaveDataset(ctx context.Context, runID uuid.UUID, ds *model.Dataset) error
}

// Config holds pipeline-level settings.
type Config struct {
	RunID           uuid.UUID // zero value: a fresh id per New
	SampleTarget    int       // 0 disables downsampling
	MinimumRequired int
}

// Pipeline runs one end-to-end reconciliation.
type Pipeline struct {
	cfg      Config
	sources  []source.Source
	fetcher  *fetch.Fetcher
	reporter Reporter // optional
	saver    Saver    // optional
	logger   *slog.Logger
	rng      *rand.Rand
}

// New creates a Pipeline. reporter and saver may be nil.
func New(cfg Config, sources []source.Source, fetcher *fetch.Fetcher, reporter Reporter, saver Saver, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RunID == (uuid.UUID{}) {
		cfg.RunID = uuid.New()
	}
	return &Pipeline{
		cfg:      cfg,
		sources:  sources,
		fetcher:  fetcher,
		reporter: reporter,
		saver:    saver,
		logger:   logger,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// RunID returns the identifier for this pipeline's run.
func (p *Pipeline) RunID() uuid.UUID {
	return p.cfg.RunID
}

// Run executes the full pipeline and returns the validated dataset.
//
// Source and per-lookup failures are absorbed into counters; the only error
// Run returns is the minimum-yield violation (*rank.ThresholdError).
func (p *Pipeline) Run(ctx context.Context) (*model.Dataset, error) {
	start := time.Now()
	logger := p.logger.With("run_id", p.cfg.RunID)

	logger.Info("run started", "sources", len(p.sources))

	lists := p.collect(ctx)

	merged := merge.Merge(lists...)
	logger.Info("candidates merged", "candidates", len(merged))

	candidates := sample.Downsample(merged, p.cfg.SampleTarget, p.rng)
	if len(candidates) < len(merged) {
		logger.Info("pool downsampled",
			"before", len(merged),
			"after", len(candidates),
			"target", p.cfg.SampleTarget,
		)
	}

	ids := make([]int64, len(candidates))
	for i, c := range candidates {
		ids[i] = c.AppID
	}
	outcomes, failed := p.fetcher.FetchAll(ctx, ids)

	records := rank.Build(candidates, outcomes)

	var totalPlayers int64
	for _, r := range records {
		totalPlayers += r.CurrentPlayers
	}

	ds := &model.Dataset{
		GeneratedAt:  start,
		TotalItems:   len(records),
		TotalPlayers: totalPlayers,
		Processed:    len(outcomes),
		Failed:       failed,
		Duration:     time.Since(start),
		Records:      records,
	}

	if err := rank.Validate(records, p.cfg.MinimumRequired); err != nil {
		logger.Error("run below minimum yield",
			"ranked", len(records),
			"required", p.cfg.MinimumRequired,
		)
		return nil, err
	}

	if p.reporter != nil {
		if err := p.reporter.Write(ds); err != nil {
			logger.Error("report write failed", "err", err)
		}
	}
	if p.saver != nil {
		if err := p.saver.SaveDataset(ctx, p.cfg.RunID, ds); err != nil {
			logger.Error("dataset save failed", "err", err)
		}
	}

	logger.Info("run complete",
		"ranked", ds.TotalItems,
		"processed", ds.Processed,
		"failed", ds.Failed,
		"total_players", ds.TotalPlayers,
		"duration", ds.Duration,
	)

	return ds, nil
}

// collect runs every source concurrently and gathers their candidate lists.
// A failing source contributes whatever it managed to discover.
func (p *Pipeline) collect(ctx context.Context) [][]model.Candidate {
	lists := make([][]model.Candidate, len(p.sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range p.sources {
		g.Go(func() error {
			start := time.Now()
			candidates, err := src.Discover(ctx)
			lists[i] = candidates

			if err != nil {
				p.logger.Warn("source degraded",
					"source", src.Name(),
					"candidates", len(candidates),
					"err", err,
				)
				return nil
			}

			p.logger.Info("source complete",
				"source", src.Name(),
				"candidates", len(candidates),
				"duration", time.Since(start),
			)
			return nil
		})
	}
	g.Wait()

	return lists
}
