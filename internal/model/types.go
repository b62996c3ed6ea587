package model

import "time"

// Trend classifies a game's current player count against its known peak.
type Trend string

const (
	TrendStable Trend = "stable"
	TrendDown   Trend = "down"
)

// Candidate is a game discovered by an upstream source, before its live
// player count has been fetched.
type Candidate struct {
	AppID    int64  // Primary key across the whole pipeline
	Name     string // Display name, may be empty until backfilled
	Priority int    // Priority of the source that discovered it
	Origin   string // Name of the source that discovered it

	// StaticPlayers is a player count reported by the source itself
	// (e.g. a charts page), 0 if the source has none.
	StaticPlayers int64

	// PeakPlayers is an all-time peak hint from the source, 0 if unknown.
	PeakPlayers int64
}

// Outcome is the result of one live player-count lookup. Exactly one
// Outcome is produced per candidate per run.
type Outcome struct {
	AppID   int64
	Players int64 // 0 on failure
	OK      bool
}

// Record is a fully aggregated, ranked game. Immutable once ranked.
type Record struct {
	AppID          int64  `json:"appid"`
	Name           string `json:"name"`
	CurrentPlayers int64  `json:"current_players"`
	PeakPlayers    int64  `json:"peak_players"`
	Trend          Trend  `json:"trend"`
	Rank           int    `json:"rank"`
	Origin         string `json:"origin"`
}

// Dataset is the final output of a pipeline run: records in rank order
// plus run-level aggregates.
type Dataset struct {
	GeneratedAt  time.Time
	TotalItems   int
	TotalPlayers int64 // Sum of current player counts across all records
	Processed    int   // Lookups attempted (one per candidate)
	Failed       int   // Lookups that exhausted their retries
	Duration     time.Duration
	Records      []Record
}
