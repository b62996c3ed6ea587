package source

import (
	"context"
	"fmt"

	"github.com/playerpulse/playerpulse/internal/api"
	"github.com/playerpulse/playerpulse/internal/model"
)

// ChartsSource discovers games from the paginated top-lists endpoint. It is
// the most authoritative source: its entries carry both a static player
// count and an all-time peak hint.
type ChartsSource struct {
	client *api.Client
}

// NewChartsSource creates a charts adapter backed by the given client.
func NewChartsSource(client *api.Client) *ChartsSource {
	return &ChartsSource{client: client}
}

func (s *ChartsSource) Name() string { return "charts" }

func (s *ChartsSource) Priority() int { return PriorityCharts }

// Discover fetches the complete top list and normalizes it into candidates.
func (s *ChartsSource) Discover(ctx context.Context) ([]model.Candidate, error) {
	games, err := s.client.GetAllTopGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("charts: %w", err)
	}

	candidates := make([]model.Candidate, 0, len(games))
	for _, g := range games {
		if g.AppID == 0 {
			continue
		}
		candidates = append(candidates, model.Candidate{
			AppID:         g.AppID,
			Name:          g.Name,
			Priority:      PriorityCharts,
			Origin:        s.Name(),
			StaticPlayers: g.CurrentPlayers,
			PeakPlayers:   g.PeakPlayers,
		})
	}

	return candidates, nil
}
