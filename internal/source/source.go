package source

import (
	"context"

	"github.com/playerpulse/playerpulse/internal/model"
)

// Source priorities. Lower wins merge conflicts.
const (
	PriorityCharts  = 1
	PriorityCatalog = 2
	PriorityCurated = 3
)

// Source produces candidate games from one upstream origin.
//
// Discover never fails the run: a non-nil error is a diagnostic, and the
// returned slice (possibly empty, possibly partial) is still usable.
type Source interface {
	Name() string
	Priority() int
	Discover(ctx context.Context) ([]model.Candidate, error)
}
