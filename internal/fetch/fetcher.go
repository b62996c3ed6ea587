package fetch

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/playerpulse/playerpulse/internal/model"
)

// MetricClient performs one live player-count lookup.
type MetricClient interface {
	GetCurrentPlayers(ctx context.Context, appID int64) (int64, error)
}

// ProgressHandler receives cumulative progress after each completed window.
type ProgressHandler interface {
	HandleProgress(p Progress)
}

// ProgressHandlerFunc is a function adapter for ProgressHandler.
type ProgressHandlerFunc func(Progress)

func (f ProgressHandlerFunc) HandleProgress(p Progress) {
	f(p)
}

// Progress is a snapshot of fetch state at a window boundary.
type Progress struct {
	Processed int
	Failed    int
	Outcomes  []model.Outcome // all outcomes settled so far, in dispatch order
}

// Config holds fetcher configuration.
type Config struct {
	Concurrency int           // Max in-flight lookups (default: 10)
	WindowSize  int           // Ids per window (default: Concurrency)
	WindowDelay time.Duration // Pause between windows (default: none)
	Retry       Policy
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency: 10,
		WindowSize:  10,
		Retry: Policy{
			MaxRetries: 3,
			DelayUnit:  2 * time.Second,
		},
	}
}

// Fetcher fetches live player counts for a batch of candidates.
type Fetcher struct {
	cfg     Config
	client  MetricClient
	handler ProgressHandler
	logger  *slog.Logger

	// Session cache: an app id looked up once in a run is never looked up
	// again. Writes are idempotent, so a racing first write is harmless.
	cacheMu sync.RWMutex
	cache   map[int64]int64
}

// New creates a new Fetcher.
func New(cfg Config, client MetricClient, handler ProgressHandler, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.WindowSize < 1 {
		cfg.WindowSize = cfg.Concurrency
	}
	return &Fetcher{
		cfg:     cfg,
		client:  client,
		handler: handler,
		logger:  logger,
		cache:   make(map[int64]int64),
	}
}

// FetchAll produces exactly one outcome per id, in the order given.
// Individual failures are absorbed into zero-metric outcomes and the
// returned failure count; FetchAll itself never fails.
func (f *Fetcher) FetchAll(ctx context.Context, ids []int64) ([]model.Outcome, int) {
	start := time.Now()

	outcomes := make([]model.Outcome, 0, len(ids))
	failed := 0

	for begin := 0; begin < len(ids); begin += f.cfg.WindowSize {
		end := min(begin+f.cfg.WindowSize, len(ids))
		window := ids[begin:end]

		results := f.runWindow(ctx, window)

		// Merge sequentially at the window boundary; nothing else writes
		// to outcomes or the failure counter.
		for _, r := range results {
			if !r.OK {
				failed++
			}
			outcomes = append(outcomes, r)
		}

		f.logger.Debug("window complete",
			"window", begin/f.cfg.WindowSize+1,
			"processed", len(outcomes),
			"failed", failed,
		)

		if f.handler != nil {
			f.handler.HandleProgress(Progress{
				Processed: len(outcomes),
				Failed:    failed,
				Outcomes:  slices.Clone(outcomes),
			})
		}

		if f.cfg.WindowDelay > 0 && end < len(ids) {
			select {
			case <-ctx.Done():
			case <-time.After(f.cfg.WindowDelay):
			}
		}
	}

	f.logger.Info("fetch complete",
		"ids", len(ids),
		"failed", failed,
		"duration", time.Since(start),
	)

	return outcomes, failed
}

// runWindow dispatches one window of lookups and blocks until all settle.
func (f *Fetcher) runWindow(ctx context.Context, window []int64) []model.Outcome {
	results := make([]model.Outcome, len(window))

	sem := make(chan struct{}, f.cfg.Concurrency)
	var wg sync.WaitGroup

	for i, id := range window {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = f.lookup(ctx, id)
		}(i, id)
	}

	wg.Wait()
	return results
}

// lookup fetches one app's player count under the retry policy.
func (f *Fetcher) lookup(ctx context.Context, id int64) model.Outcome {
	if players, ok := f.cached(id); ok {
		return model.Outcome{AppID: id, Players: players, OK: true}
	}

	var lastErr error
	for attempt := 0; attempt <= f.cfg.Retry.MaxRetries; attempt++ {
		if attempt > 0 {
			if wait := f.cfg.Retry.Wait(attempt - 1); wait > 0 {
				select {
				case <-ctx.Done():
					return model.Outcome{AppID: id}
				case <-time.After(wait):
				}
			}
		}

		players, err := f.client.GetCurrentPlayers(ctx, id)
		if err == nil {
			f.remember(id, players)
			return model.Outcome{AppID: id, Players: players, OK: true}
		}
		lastErr = err
	}

	f.logger.Warn("player count lookup failed",
		"appid", id,
		"retries", f.cfg.Retry.MaxRetries,
		"err", lastErr,
	)
	return model.Outcome{AppID: id}
}

func (f *Fetcher) cached(id int64) (int64, bool) {
	f.cacheMu.RLock()
	defer f.cacheMu.RUnlock()
	players, ok := f.cache[id]
	return players, ok
}

func (f *Fetcher) remember(id int64, players int64) {
	f.cacheMu.Lock()
	defer f.cacheMu.Unlock()
	f.cache[id] = players
}
