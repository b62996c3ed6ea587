package api

// ChartsResponse from GET /top
type ChartsResponse struct {
	Games      []ChartGame `json:"games"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
}

// ChartGame is one entry of the charts top list.
type ChartGame struct {
	AppID          int64  `json:"appid"`
	Name           string `json:"name"`
	CurrentPlayers int64  `json:"current_players"`
	PeakPlayers    int64  `json:"peak_players"`
}

// CatalogPage from GET /all, keyed by app id string. An empty page marks
// the end of pagination.
type CatalogPage map[string]CatalogEntry

// CatalogEntry is one game of the full-catalog listing.
type CatalogEntry struct {
	AppID  int64  `json:"appid"`
	Name   string `json:"name"`
	Owners string `json:"owners"`
}

// PlayersResponse from GET /players
type PlayersResponse struct {
	Response PlayerCount `json:"response"`
}

// PlayerCount is the live player-count payload. Result 1 means success;
// any other value means the app id is unknown or the count is unavailable.
type PlayerCount struct {
	PlayerCount int64 `json:"player_count"`
	Result      int   `json:"result"`
}
