package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Pravusnex/DOTS/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods must be nil-safe.
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Errorf("WriteStats on nil manager: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("WritePerf on nil manager: %v", err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Errorf("WriteConfig on nil manager: %v", err)
	}
	if got := om.Dir(); got != "" {
		t.Errorf("Dir() = %q, want empty", got)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesStats(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	stats := WindowStats{WindowEndTick: 300, Population: 12, Shape: "circle"}
	if err := om.WriteStats(stats); err != nil {
		t.Fatalf("WriteStats error: %v", err)
	}
	stats.WindowEndTick = 600
	if err := om.WriteStats(stats); err != nil {
		t.Fatalf("WriteStats error: %v", err)
	}

	if err := om.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "window_stats.csv"))
	if err != nil {
		t.Fatalf("reading window_stats.csv: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "window_end") {
		t.Error("expected header row with window_end column")
	}

	// Header + 2 records, header written exactly once.
	lines := strings.Count(content, "\n")
	if lines != 3 {
		t.Errorf("expected 3 lines, got %d:\n%s", lines, content)
	}
	if strings.Count(content, "window_end") != 1 {
		t.Error("header written more than once")
	}
}

func TestOutputManagerWritesPerf(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	stats := PerfStats{AvgTickDuration: 250 * time.Microsecond}
	stats.PhasePct[PhasePhysics] = 75
	if err := om.WritePerf(stats, 300); err != nil {
		t.Fatalf("WritePerf error: %v", err)
	}
	if err := om.WritePerf(stats, 600); err != nil {
		t.Fatalf("WritePerf error: %v", err)
	}

	if err := om.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf_stats.csv"))
	if err != nil {
		t.Fatalf("reading perf_stats.csv: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "physics_pct") {
		t.Error("expected header row with physics_pct column")
	}
	if lines := strings.Count(content, "\n"); lines != 3 {
		t.Errorf("expected 3 lines, got %d:\n%s", lines, content)
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config.yaml: %v", err)
	}
	if !strings.Contains(string(data), "simulation:") {
		t.Error("expected simulation section in written config")
	}
}
