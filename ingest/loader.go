// Package ingest reads the three raw feed files handed over by the
// extraction jobs. Any unreadable file or malformed top-level structure is
// fatal to the run: the matcher needs both tables, so there is no sensible
// partial output past a corrupt input.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmertens/haulsched/core/fleet"
)

// Config holds the feed file locations.
type Config struct {
	TelemetryPath string `json:"telemetry_path"`
	HistoryPath   string `json:"history_path"`
	BoardPath     string `json:"board_path"`
}

// SetDefaults applies the extraction jobs' default output paths.
func (c *Config) SetDefaults() {
	if c.TelemetryPath == "" {
		c.TelemetryPath = "truck_location.json"
	}
	if c.HistoryPath == "" {
		c.HistoryPath = "truck.json"
	}
	if c.BoardPath == "" {
		c.BoardPath = "api_out.json"
	}
}

// Feeds bundles the three raw record collections for one run.
type Feeds struct {
	Telemetry []fleet.TelemetrySnapshot
	History   []fleet.HistoryGroup
	Board     fleet.JobBoard
}

// Load reads and decodes all three feeds.
func Load(cfg Config) (Feeds, error) {
	var feeds Feeds
	if err := readJSON(cfg.TelemetryPath, &feeds.Telemetry); err != nil {
		return Feeds{}, fmt.Errorf("telemetry feed: %w", err)
	}
	if err := readJSON(cfg.HistoryPath, &feeds.History); err != nil {
		return Feeds{}, fmt.Errorf("job-history feed: %w", err)
	}
	if err := readJSON(cfg.BoardPath, &feeds.Board); err != nil {
		return Feeds{}, fmt.Errorf("job-board feed: %w", err)
	}
	return feeds, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
