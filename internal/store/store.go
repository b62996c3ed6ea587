package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playerpulse/playerpulse/internal/config"
	"github.com/playerpulse/playerpulse/internal/model"
)

// Store writes finished datasets to the rankings table.
type Store struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// Connect creates a connection pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	poolCfg, err := pgxpool.ParseConfig(BuildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: pool, logger: logger}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Ping verifies the connection is healthy.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// SaveDataset inserts every record of the dataset in one batch, keyed by the
// run id. Re-running the same run id is a no-op per row.
func (s *Store) SaveDataset(ctx context.Context, runID uuid.UUID, ds *model.Dataset) error {
	start := time.Now()

	batch := &pgx.Batch{}
	for _, r := range ds.Records {
		batch.Queue(`
			INSERT INTO rankings (run_id, rank, appid, name, current_players, peak_players, trend, origin, generated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (run_id, appid) DO NOTHING
		`, runID, r.Rank, r.AppID, r.Name, r.CurrentPlayers, r.PeakPlayers, string(r.Trend), r.Origin, ds.GeneratedAt)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	conflicts := 0
	for range ds.Records {
		ct, err := results.Exec()
		if err != nil {
			return fmt.Errorf("insert rankings: %w", err)
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	s.logger.Debug("dataset saved",
		"run_id", runID,
		"rows", len(ds.Records)-conflicts,
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
	return nil
}
