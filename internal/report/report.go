// Package report renders a finished dataset into the output documents:
// a pretty-printed rankings file, a minified variant, and a top-K summary.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/playerpulse/playerpulse/internal/model"
)

// Document is the on-disk shape of a finished run.
type Document struct {
	Metadata Metadata                `json:"metadata"`
	Items    map[string]model.Record `json:"items"`
}

// Metadata holds run-level aggregates.
type Metadata struct {
	Timestamp       string  `json:"timestamp"` // ISO-8601
	TotalItems      int     `json:"total_items"`
	TotalPlayers    int64   `json:"total_player_sum"`
	ProcessedCount  int     `json:"processed_count"`
	FailedCount     int     `json:"failed_count"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Summary is the lightweight companion document: metadata plus the top
// records only.
type Summary struct {
	Metadata Metadata       `json:"metadata"`
	Top      []model.Record `json:"top"`
}

// Writer renders datasets into a directory.
type Writer struct {
	dir    string
	topN   int
	logger *slog.Logger
}

// NewWriter creates a report writer targeting dir.
func NewWriter(dir string, topN int, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, topN: topN, logger: logger}
}

// NewDocument converts a dataset into its output document.
func NewDocument(ds *model.Dataset) *Document {
	items := make(map[string]model.Record, len(ds.Records))
	for _, r := range ds.Records {
		items[strconv.FormatInt(r.AppID, 10)] = r
	}

	return &Document{
		Metadata: Metadata{
			Timestamp:       ds.GeneratedAt.UTC().Format(time.RFC3339),
			TotalItems:      ds.TotalItems,
			TotalPlayers:    ds.TotalPlayers,
			ProcessedCount:  ds.Processed,
			FailedCount:     ds.Failed,
			DurationSeconds: ds.Duration.Seconds(),
		},
		Items: items,
	}
}

// Write renders the full document, its minified variant, and the summary.
func (w *Writer) Write(ds *model.Dataset) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	doc := NewDocument(ds)

	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rankings: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, "rankings.json"), pretty, 0o644); err != nil {
		return fmt.Errorf("write rankings: %w", err)
	}

	minified, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal minified rankings: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, "rankings.min.json"), minified, 0o644); err != nil {
		return fmt.Errorf("write minified rankings: %w", err)
	}

	top := ds.Records
	if w.topN > 0 && len(top) > w.topN {
		top = top[:w.topN]
	}
	summary, err := json.MarshalIndent(Summary{Metadata: doc.Metadata, Top: top}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, "summary.json"), summary, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	w.logger.Info("reports written",
		"dir", w.dir,
		"items", len(ds.Records),
		"summary_top", len(top),
	)
	return nil
}
