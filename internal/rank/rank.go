// Package rank joins fetch outcomes onto candidates and produces the final
// ranked records.
package rank

import (
	"fmt"
	"sort"

	"github.com/playerpulse/playerpulse/internal/model"
)

// ThresholdError reports a final dataset smaller than the configured minimum.
// It is the only error that aborts a run.
type ThresholdError struct {
	Got  int
	Want int
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("ranked %d games, need at least %d", e.Got, e.Want)
}

// Build joins each candidate with its fetch outcome, drops games with no
// observable players, and returns records ranked by current player count.
//
// The current count is the larger of the fetched count and the candidate's
// static count. Ties rank in merge order (the sort is stable), and ranks are
// the dense sequence 1..N.
func Build(candidates []model.Candidate, outcomes []model.Outcome) []model.Record {
	byID := make(map[int64]model.Outcome, len(outcomes))
	for _, o := range outcomes {
		byID[o.AppID] = o
	}

	records := make([]model.Record, 0, len(candidates))
	for _, c := range candidates {
		current := byID[c.AppID].Players
		if c.StaticPlayers > current {
			current = c.StaticPlayers
		}
		if current == 0 {
			continue
		}

		peak := c.PeakPlayers
		if peak == 0 {
			peak = current
		}

		records = append(records, model.Record{
			AppID:          c.AppID,
			Name:           c.Name,
			CurrentPlayers: current,
			PeakPlayers:    peak,
			Trend:          classifyTrend(current, peak),
			Origin:         c.Origin,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CurrentPlayers > records[j].CurrentPlayers
	})
	for i := range records {
		records[i].Rank = i + 1
	}

	return records
}

// classifyTrend compares the current count against the peak.
func classifyTrend(current, peak int64) model.Trend {
	if peak == 0 || peak == current {
		return model.TrendStable
	}

	ratio := float64(current) / float64(peak)
	switch {
	case ratio > 0.9:
		return model.TrendStable
	case ratio > 0.7:
		return model.TrendDown
	default:
		return model.TrendDown
	}
}

// Validate enforces the minimum-yield contract on the final records.
func Validate(records []model.Record, minimum int) error {
	if len(records) < minimum {
		return &ThresholdError{Got: len(records), Want: minimum}
	}
	return nil
}
