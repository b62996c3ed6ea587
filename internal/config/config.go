package config

import "time"

// Config is the root configuration for a reconciler run.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Sources    SourcesConfig    `yaml:"sources"`
	Sample     SampleConfig     `yaml:"sample"`
	Fetch      FetchConfig      `yaml:"fetch"`
	Checkpoint CheckpointConfig `yaml:"checkpoint"`
	Rank       RankConfig       `yaml:"rank"`
	Output     OutputConfig     `yaml:"output"`
	Store      StoreConfig      `yaml:"store"`
}

// APIConfig holds upstream endpoint settings.
type APIConfig struct {
	ChartsURL  string        `yaml:"charts_url"`
	CatalogURL string        `yaml:"catalog_url"`
	PlayersURL string        `yaml:"players_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"` // transport-level retries for catalog calls
}

// SourcesConfig holds candidate source settings.
type SourcesConfig struct {
	CatalogMaxPages int           `yaml:"catalog_max_pages"`
	Curated         []CuratedGame `yaml:"curated"`
}

// CuratedGame is one entry of the hand-maintained fallback list.
type CuratedGame struct {
	AppID int64  `yaml:"appid"`
	Name  string `yaml:"name"`
}

// SampleConfig holds downsampling settings. TargetSize 0 disables sampling.
type SampleConfig struct {
	TargetSize int `yaml:"target_size"`
}

// FetchConfig holds player-count fetcher settings.
type FetchConfig struct {
	Concurrency int           `yaml:"concurrency"`  // max in-flight lookups
	WindowSize  int           `yaml:"window_size"`  // ids per window, defaults to concurrency
	WindowDelay time.Duration `yaml:"window_delay"` // pause between windows, 0 = none
	Retries     int           `yaml:"retries"`      // retries per lookup after the first attempt
	RetryDelay  time.Duration `yaml:"retry_delay"`  // backoff unit between retries
}

// CheckpointConfig holds partial snapshot settings. Interval 0 disables
// checkpointing.
type CheckpointConfig struct {
	Interval int    `yaml:"interval"` // results between snapshots
	Dir      string `yaml:"dir"`
	TopN     int    `yaml:"top_n"`
}

// RankConfig holds validation settings for the final dataset.
type RankConfig struct {
	MinimumRequired int `yaml:"minimum_required"`
}

// OutputConfig holds output document settings.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	SummaryTopN int    `yaml:"summary_top_n"`
}

// StoreConfig holds optional database persistence settings.
type StoreConfig struct {
	Enabled bool     `yaml:"enabled"`
	DB      DBConfig `yaml:"db"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}
