package rank

import (
	"errors"
	"strings"
	"testing"

	"github.com/playerpulse/playerpulse/internal/model"
)

func TestBuild_JoinAndDrop(t *testing.T) {
	candidates := []model.Candidate{
		{AppID: 1, Name: "One"},
		{AppID: 2, Name: "Two", StaticPlayers: 500}, // lookup failed, static survives
		{AppID: 3, Name: "Three"},                   // lookup failed, no static: dropped
		{AppID: 4, Name: "Four", StaticPlayers: 50}, // fetched beats static
	}
	outcomes := []model.Outcome{
		{AppID: 1, Players: 100, OK: true},
		{AppID: 2, OK: false},
		{AppID: 3, OK: false},
		{AppID: 4, Players: 300, OK: true},
	}

	records := Build(candidates, outcomes)

	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	byID := make(map[int64]model.Record)
	for _, r := range records {
		byID[r.AppID] = r
	}
	if byID[2].CurrentPlayers != 500 {
		t.Errorf("id 2 current = %d, want static 500", byID[2].CurrentPlayers)
	}
	if byID[4].CurrentPlayers != 300 {
		t.Errorf("id 4 current = %d, want fetched 300", byID[4].CurrentPlayers)
	}
	if _, found := byID[3]; found {
		t.Error("id 3 has no players and must be dropped")
	}
}

func TestBuild_RanksDense(t *testing.T) {
	candidates := []model.Candidate{
		{AppID: 1, Name: "A"},
		{AppID: 2, Name: "B"},
		{AppID: 3, Name: "C"},
		{AppID: 4, Name: "D"},
	}
	outcomes := []model.Outcome{
		{AppID: 1, Players: 50, OK: true},
		{AppID: 2, Players: 900, OK: true},
		{AppID: 3, Players: 50, OK: true},
		{AppID: 4, Players: 200, OK: true},
	}

	records := Build(candidates, outcomes)

	for i, r := range records {
		if r.Rank != i+1 {
			t.Errorf("records[%d].Rank = %d, want %d", i, r.Rank, i+1)
		}
		if i > 0 && r.CurrentPlayers > records[i-1].CurrentPlayers {
			t.Errorf("players not non-increasing at rank %d", r.Rank)
		}
	}

	if records[0].AppID != 2 || records[1].AppID != 4 {
		t.Errorf("order = %d,%d, want 2,4", records[0].AppID, records[1].AppID)
	}
	// Tied at 50 players: merge order breaks the tie.
	if records[2].AppID != 1 || records[3].AppID != 3 {
		t.Errorf("tie order = %d,%d, want 1,3 (merge order)", records[2].AppID, records[3].AppID)
	}
}

func TestBuild_PeakDefaultsToCurrent(t *testing.T) {
	records := Build(
		[]model.Candidate{{AppID: 1, Name: "A"}},
		[]model.Outcome{{AppID: 1, Players: 120, OK: true}},
	)

	if records[0].PeakPlayers != 120 {
		t.Errorf("peak = %d, want current 120", records[0].PeakPlayers)
	}
	if records[0].Trend != model.TrendStable {
		t.Errorf("trend = %q, want stable", records[0].Trend)
	}
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		peak    int64
		want    model.Trend
	}{
		{"no peak", 100, 0, model.TrendStable},
		{"at peak", 100, 100, model.TrendStable},
		{"near peak", 95, 100, model.TrendStable},
		{"above 0.7", 80, 100, model.TrendDown},
		{"well below peak", 30, 100, model.TrendDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyTrend(tt.current, tt.peak); got != tt.want {
				t.Errorf("classifyTrend(%d, %d) = %q, want %q", tt.current, tt.peak, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	records := make([]model.Record, 42)

	err := Validate(records, 100)
	if err == nil {
		t.Fatal("expected threshold error")
	}

	var thresholdErr *ThresholdError
	if !errors.As(err, &thresholdErr) {
		t.Fatalf("error type = %T, want *ThresholdError", err)
	}
	if thresholdErr.Got != 42 || thresholdErr.Want != 100 {
		t.Errorf("counts = %d/%d, want 42/100", thresholdErr.Got, thresholdErr.Want)
	}
	if !strings.Contains(err.Error(), "42") || !strings.Contains(err.Error(), "100") {
		t.Errorf("message %q must cite both counts", err.Error())
	}

	if err := Validate(records, 42); err != nil {
		t.Errorf("Validate at exactly the minimum = %v, want nil", err)
	}
	if err := Validate(records, 0); err != nil {
		t.Errorf("Validate with no minimum = %v, want nil", err)
	}
}
