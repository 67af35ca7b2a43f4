package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Report captures the full state of a run at a point in time,
// written as JSON on demand (F5) and at shutdown.
type Report struct {
	CreatedAt  time.Time `json:"created_at"`
	Seed       int64     `json:"seed"`
	Shape      string    `json:"shape"`
	Tick       int32     `json:"tick"`
	SimTimeSec float64   `json:"sim_time_sec"`
	Population int       `json:"population"`
	Limit      int       `json:"limit"`

	// Most recent flushed window, if any
	Window *WindowStats `json:"window,omitempty"`

	// Performance over the trailing perf window
	Perf PerfStatsCSV `json:"perf"`
}

// SaveReport writes a report as indented JSON to dir, named by tick.
// Returns the path of the written file.
func SaveReport(r Report, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%d.json", r.Tick))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}

// LoadReport reads a report back from disk.
func LoadReport(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading report: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("unmarshaling report: %w", err)
	}

	return r, nil
}
