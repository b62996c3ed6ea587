package config

import (
	"errors"
	"fmt"
)

// Validate checks that all values are in range. Call after applyDefaults.
func (c *Config) Validate() error {
	if c.API.ChartsURL == "" {
		return errors.New("api.charts_url is required")
	}
	if c.API.CatalogURL == "" {
		return errors.New("api.catalog_url is required")
	}
	if c.API.PlayersURL == "" {
		return errors.New("api.players_url is required")
	}

	if c.Sources.CatalogMaxPages < 1 {
		return errors.New("sources.catalog_max_pages must be >= 1")
	}

	if c.Sample.TargetSize < 0 {
		return errors.New("sample.target_size must be >= 0")
	}

	if c.Fetch.Concurrency < 1 {
		return errors.New("fetch.concurrency must be >= 1")
	}
	if c.Fetch.WindowSize < 1 {
		return errors.New("fetch.window_size must be >= 1")
	}
	if c.Fetch.Retries < 0 {
		return errors.New("fetch.retries must be >= 0")
	}

	if c.Checkpoint.Interval < 0 {
		return errors.New("checkpoint.interval must be >= 0")
	}
	if c.Checkpoint.TopN < 1 {
		return errors.New("checkpoint.top_n must be >= 1")
	}

	if c.Rank.MinimumRequired < 0 {
		return errors.New("rank.minimum_required must be >= 0")
	}

	if c.Output.SummaryTopN < 1 {
		return errors.New("output.summary_top_n must be >= 1")
	}

	if c.Store.Enabled {
		if err := c.Store.DB.validate("store.db"); err != nil {
			return err
		}
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
