package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultChartsURL       = "https://charts.playerpulse.io/api/v1"
	DefaultCatalogURL      = "https://catalog.playerpulse.io/api/v1"
	DefaultPlayersURL      = "https://players.playerpulse.io/api/v1"
	DefaultAPITimeout      = 30 * time.Second
	DefaultAPIMaxRetries   = 3
	DefaultAPIBackoff      = time.Second
	DefaultCatalogMaxPages = 5
	DefaultConcurrency     = 10
	DefaultRetries         = 3
	DefaultRetryDelay      = 2 * time.Second
	DefaultCheckpointEvery = 25
	DefaultCheckpointDir   = "checkpoints"
	DefaultCheckpointTopN  = 10
	DefaultMinimumRequired = 50
	DefaultOutputDir       = "output"
	DefaultSummaryTopN     = 25
	DefaultDBPort          = 5432
	DefaultDBSSLMode       = "prefer"
	DefaultMaxConns        = 10
	DefaultMinConns        = 2
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.ChartsURL == "" {
		c.API.ChartsURL = DefaultChartsURL
	}
	if c.API.CatalogURL == "" {
		c.API.CatalogURL = DefaultCatalogURL
	}
	if c.API.PlayersURL == "" {
		c.API.PlayersURL = DefaultPlayersURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultAPIMaxRetries
	}

	// Sources defaults
	if c.Sources.CatalogMaxPages == 0 {
		c.Sources.CatalogMaxPages = DefaultCatalogMaxPages
	}

	// Fetch defaults
	if c.Fetch.Concurrency == 0 {
		c.Fetch.Concurrency = DefaultConcurrency
	}
	if c.Fetch.WindowSize == 0 {
		c.Fetch.WindowSize = c.Fetch.Concurrency
	}
	if c.Fetch.Retries == 0 {
		c.Fetch.Retries = DefaultRetries
	}
	if c.Fetch.RetryDelay == 0 {
		c.Fetch.RetryDelay = DefaultRetryDelay
	}

	// Checkpoint defaults
	if c.Checkpoint.Interval == 0 {
		c.Checkpoint.Interval = DefaultCheckpointEvery
	}
	if c.Checkpoint.Dir == "" {
		c.Checkpoint.Dir = DefaultCheckpointDir
	}
	if c.Checkpoint.TopN == 0 {
		c.Checkpoint.TopN = DefaultCheckpointTopN
	}

	// Rank defaults
	if c.Rank.MinimumRequired == 0 {
		c.Rank.MinimumRequired = DefaultMinimumRequired
	}

	// Output defaults
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.SummaryTopN == 0 {
		c.Output.SummaryTopN = DefaultSummaryTopN
	}

	// Store defaults
	if c.Store.Enabled {
		applyDBDefaults(&c.Store.DB)
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
