package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/playerpulse/playerpulse/internal/fetch"
	"github.com/playerpulse/playerpulse/internal/model"
	"github.com/playerpulse/playerpulse/internal/rank"
	"github.com/playerpulse/playerpulse/internal/source"
)

// fakeSource returns a canned candidate list, optionally with a diagnostic.
type fakeSource struct {
	name       string
	priority   int
	candidates []model.Candidate
	err        error
}

func (s *fakeSource) Name() string  { return s.name }
func (s *fakeSource) Priority() int { return s.priority }
func (s *fakeSource) Discover(ctx context.Context) ([]model.Candidate, error) {
	return s.candidates, s.err
}

// fakeMetrics serves player counts from a map; missing ids fail.
type fakeMetrics struct {
	players map[int64]int64
}

func (m *fakeMetrics) GetCurrentPlayers(ctx context.Context, appID int64) (int64, error) {
	players, ok := m.players[appID]
	if !ok {
		return 0, errors.New("unknown app")
	}
	return players, nil
}

func candidate(id int64, name string, priority int) model.Candidate {
	return model.Candidate{AppID: id, Name: name, Priority: priority, Origin: "test"}
}

func newTestPipeline(cfg Config, fakes []*fakeSource, metrics *fakeMetrics) *Pipeline {
	fetcher := fetch.New(fetch.Config{
		Concurrency: 2,
		WindowSize:  2,
		Retry:       fetch.Policy{MaxRetries: 0, DelayUnit: time.Millisecond},
	}, metrics, nil, nil)

	sources := make([]source.Source, len(fakes))
	for i, s := range fakes {
		sources[i] = s
	}

	return New(cfg, sources, fetcher, nil, nil, nil)
}

func TestPipeline_Run(t *testing.T) {
	sources := []*fakeSource{
		{
			name:     "charts",
			priority: 1,
			candidates: []model.Candidate{
				{AppID: 10, Priority: 1, Origin: "charts", StaticPlayers: 500, PeakPlayers: 900},
			},
		},
		{
			name:     "catalog",
			priority: 2,
			candidates: []model.Candidate{
				candidate(10, "Foo", 2),
				candidate(20, "Bar", 2),
			},
		},
		{
			name:     "curated",
			priority: 3,
			err:      errors.New("upstream down"),
		},
	}
	metrics := &fakeMetrics{players: map[int64]int64{
		10: 800,
		20: 200,
	}}

	p := newTestPipeline(Config{MinimumRequired: 2}, sources, metrics)

	ds, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if ds.TotalItems != 2 {
		t.Fatalf("TotalItems = %d, want 2", ds.TotalItems)
	}
	if ds.Processed != 2 || ds.Failed != 0 {
		t.Errorf("Processed/Failed = %d/%d, want 2/0", ds.Processed, ds.Failed)
	}

	first := ds.Records[0]
	if first.AppID != 10 || first.Rank != 1 {
		t.Errorf("rank 1 = %+v, want app 10", first)
	}
	if first.Name != "Foo" {
		t.Errorf("name = %q, want backfilled %q", first.Name, "Foo")
	}
	if first.CurrentPlayers != 800 {
		t.Errorf("current = %d, want fetched 800 over static 500", first.CurrentPlayers)
	}
	if first.Origin != "charts" {
		t.Errorf("origin = %q, want the priority-1 source", first.Origin)
	}
	if ds.TotalPlayers != 1000 {
		t.Errorf("TotalPlayers = %d, want 1000", ds.TotalPlayers)
	}
}

func TestPipeline_FetchFailuresExcluded(t *testing.T) {
	sources := []*fakeSource{
		{
			name:     "catalog",
			priority: 2,
			candidates: []model.Candidate{
				candidate(1, "A", 2),
				candidate(2, "B", 2),
				candidate(3, "C", 2),
			},
		},
	}
	// App 2 has no metric and no static count: dropped from the dataset.
	metrics := &fakeMetrics{players: map[int64]int64{1: 100, 3: 300}}

	p := newTestPipeline(Config{MinimumRequired: 2}, sources, metrics)

	ds, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if ds.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", ds.TotalItems)
	}
	if ds.Failed != 1 {
		t.Errorf("Failed = %d, want 1", ds.Failed)
	}
	if ds.Processed != 3 {
		t.Errorf("Processed = %d, want 3 (every candidate gets a lookup)", ds.Processed)
	}
}

func TestPipeline_BelowThreshold(t *testing.T) {
	sources := []*fakeSource{
		{
			name:       "catalog",
			priority:   2,
			candidates: []model.Candidate{candidate(1, "A", 2)},
		},
	}
	metrics := &fakeMetrics{players: map[int64]int64{1: 100}}

	p := newTestPipeline(Config{MinimumRequired: 100}, sources, metrics)

	ds, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("expected threshold error")
	}
	if ds != nil {
		t.Error("no dataset must be returned on a failed run")
	}

	var thresholdErr *rank.ThresholdError
	if !errors.As(err, &thresholdErr) {
		t.Fatalf("error type = %T, want *rank.ThresholdError", err)
	}
	if thresholdErr.Got != 1 || thresholdErr.Want != 100 {
		t.Errorf("counts = %d/%d, want 1/100", thresholdErr.Got, thresholdErr.Want)
	}
}

func TestPipeline_RunID(t *testing.T) {
	id := uuid.New()
	p := New(Config{RunID: id}, nil, fetch.New(fetch.DefaultConfig(), &fakeMetrics{}, nil, nil), nil, nil, nil)
	if p.RunID() != id {
		t.Errorf("RunID = %v, want %v", p.RunID(), id)
	}

	p2 := New(Config{}, nil, fetch.New(fetch.DefaultConfig(), &fakeMetrics{}, nil, nil), nil, nil, nil)
	if p2.RunID() == (uuid.UUID{}) {
		t.Error("RunID not generated")
	}
}
