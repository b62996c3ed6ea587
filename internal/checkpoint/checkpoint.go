// Package checkpoint persists best-effort partial snapshots of fetch
// progress. Snapshots are advisory: the pipeline never reads them back, and
// a failed write never fails the run.
package checkpoint

import (
	"cmp"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/playerpulse/playerpulse/internal/fetch"
	"github.com/playerpulse/playerpulse/internal/model"
)

// Checkpointer writes a partial snapshot each time the cumulative processed
// count crosses an interval boundary. It implements fetch.ProgressHandler.
type Checkpointer struct {
	dir      string
	interval int
	topN     int
	runID    string
	logger   *slog.Logger

	lastBoundary int
	seq          int
}

// New creates a Checkpointer writing into dir. interval <= 0 disables it.
func New(dir string, interval, topN int, runID string, logger *slog.Logger) *Checkpointer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checkpointer{
		dir:      dir,
		interval: interval,
		topN:     topN,
		runID:    runID,
		logger:   logger,
	}
}

// snapshot is the on-disk checkpoint shape.
type snapshot struct {
	Partial   bool        `json:"partial"`
	Processed int         `json:"processed"`
	Failed    int         `json:"failed"`
	Timestamp time.Time   `json:"timestamp"`
	Top       []topResult `json:"top_results"`
}

type topResult struct {
	AppID   int64 `json:"appid"`
	Players int64 `json:"players"`
}

// HandleProgress writes a snapshot if the processed count has crossed into
// a new interval. Write failures are logged and swallowed.
func (c *Checkpointer) HandleProgress(p fetch.Progress) {
	if c.interval <= 0 {
		return
	}

	boundary := p.Processed / c.interval
	if boundary <= c.lastBoundary {
		return
	}
	c.lastBoundary = boundary
	c.seq++

	snap := snapshot{
		Partial:   true,
		Processed: p.Processed,
		Failed:    p.Failed,
		Timestamp: time.Now().UTC(),
		Top:       topPlayers(p.Outcomes, c.topN),
	}

	if err := c.write(snap); err != nil {
		c.logger.Warn("checkpoint write failed",
			"processed", p.Processed,
			"err", err,
		)
		return
	}

	c.logger.Debug("checkpoint written",
		"processed", p.Processed,
		"seq", c.seq,
	)
}

func (c *Checkpointer) write(snap snapshot) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	name := filepath.Join(c.dir, "checkpoint_"+c.runID+".json")
	return os.WriteFile(name, data, 0o644)
}

// topPlayers returns the n highest successful outcomes by player count.
func topPlayers(outcomes []model.Outcome, n int) []topResult {
	ok := make([]model.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK {
			ok = append(ok, o)
		}
	}

	slices.SortStableFunc(ok, func(a, b model.Outcome) int {
		return cmp.Compare(b.Players, a.Players)
	})

	if n > 0 && len(ok) > n {
		ok = ok[:n]
	}

	top := make([]topResult, len(ok))
	for i, o := range ok {
		top[i] = topResult{AppID: o.AppID, Players: o.Players}
	}
	return top
}
