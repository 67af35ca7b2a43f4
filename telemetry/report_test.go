package telemetry

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReportSaveLoad(t *testing.T) {
	dir := t.TempDir()

	window := WindowStats{
		WindowEndTick: 600,
		Population:    42,
		Spawns:        3,
		RadialMean:    120.5,
	}
	report := Report{
		CreatedAt:  time.Now().UTC(),
		Seed:       12345,
		Shape:      "triangle",
		Tick:       600,
		SimTimeSec: 10.0,
		Population: 42,
		Limit:      100,
		Window:     &window,
		Perf:       PerfStatsCSV{WindowEnd: 600, AvgTickUS: 250},
	}

	path, err := SaveReport(report, dir)
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if filepath.Base(path) != "report_600.json" {
		t.Errorf("report path = %q, want report_600.json", path)
	}

	loaded, err := LoadReport(path)
	if err != nil {
		t.Fatalf("LoadReport error: %v", err)
	}

	if loaded.Seed != report.Seed {
		t.Errorf("Seed = %d, want %d", loaded.Seed, report.Seed)
	}
	if loaded.Shape != report.Shape {
		t.Errorf("Shape = %q, want %q", loaded.Shape, report.Shape)
	}
	if loaded.Tick != report.Tick {
		t.Errorf("Tick = %d, want %d", loaded.Tick, report.Tick)
	}
	if loaded.Population != report.Population {
		t.Errorf("Population = %d, want %d", loaded.Population, report.Population)
	}
	if loaded.Window == nil {
		t.Fatal("Window is nil after load")
	}
	if loaded.Window.Population != 42 {
		t.Errorf("Window.Population = %d, want 42", loaded.Window.Population)
	}
	if loaded.Perf.AvgTickUS != 250 {
		t.Errorf("Perf.AvgTickUS = %d, want 250", loaded.Perf.AvgTickUS)
	}
}

func TestSaveReportCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "run1")

	path, err := SaveReport(Report{Tick: 1}, dir)
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("report written outside dir: %q", path)
	}

	if _, err := LoadReport(path); err != nil {
		t.Fatalf("LoadReport error: %v", err)
	}
}

func TestSaveReportOmitsEmptyWindow(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveReport(Report{Tick: 7}, dir)
	if err != nil {
		t.Fatalf("SaveReport error: %v", err)
	}

	loaded, err := LoadReport(path)
	if err != nil {
		t.Fatalf("LoadReport error: %v", err)
	}
	if loaded.Window != nil {
		t.Error("expected nil Window when none was recorded")
	}
}
