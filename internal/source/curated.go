package source

import (
	"context"

	"github.com/playerpulse/playerpulse/internal/config"
	"github.com/playerpulse/playerpulse/internal/model"
)

// CuratedSource serves the hand-maintained fallback list from configuration.
// It performs no remote calls and never fails.
type CuratedSource struct {
	games []config.CuratedGame
}

// NewCuratedSource creates a curated adapter over the configured list.
func NewCuratedSource(games []config.CuratedGame) *CuratedSource {
	return &CuratedSource{games: games}
}

func (s *CuratedSource) Name() string { return "curated" }

func (s *CuratedSource) Priority() int { return PriorityCurated }

func (s *CuratedSource) Discover(ctx context.Context) ([]model.Candidate, error) {
	candidates := make([]model.Candidate, 0, len(s.games))
	for _, g := range s.games {
		if g.AppID == 0 {
			continue
		}
		candidates = append(candidates, model.Candidate{
			AppID:    g.AppID,
			Name:     g.Name,
			Priority: PriorityCurated,
			Origin:   s.Name(),
		})
	}
	return candidates, nil
}
