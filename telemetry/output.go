package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Pravusnex/DOTS/config"
)

// csvFile appends typed records to one CSV file, emitting the header
// row only on the first write.
type csvFile struct {
	f         *os.File
	hasHeader bool
}

func createCSV(dir, name string) (*csvFile, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvFile{f: f}, nil
}

func (c *csvFile) append(rows any) error {
	if c.hasHeader {
		return gocsv.MarshalWithoutHeaders(rows, c.f)
	}
	if err := gocsv.Marshal(rows, c.f); err != nil {
		return err
	}
	c.hasHeader = true
	return nil
}

func (c *csvFile) close() error {
	if c == nil || c.f == nil {
		return nil
	}
	return c.f.Close()
}

// OutputManager owns the per-run output directory: window and perf
// CSVs, the effective config, and the final report. A nil manager is
// valid and discards everything.
type OutputManager struct {
	dir   string
	stats *csvFile
	perf  *csvFile
}

// NewOutputManager creates dir and opens the CSV files inside it.
// An empty dir disables output; the returned manager is nil.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	stats, err := createCSV(dir, "window_stats.csv")
	if err != nil {
		return nil, err
	}
	perf, err := createCSV(dir, "perf_stats.csv")
	if err != nil {
		stats.close()
		return nil, err
	}
	return &OutputManager{dir: dir, stats: stats, perf: perf}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends one window record to window_stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.stats.append([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing window stats: %w", err)
	}
	return nil
}

// WritePerf appends one perf record to perf_stats.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.append([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf stats: %w", err)
	}
	return nil
}

// Dir returns the output directory, or "" when output is disabled.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes both CSV files, returning the first error.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	err := om.stats.close()
	if e := om.perf.close(); err == nil {
		err = e
	}
	return err
}
