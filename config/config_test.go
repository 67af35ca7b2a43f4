package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Screen.Width != 1080 || cfg.Screen.Height != 1080 {
		t.Errorf("screen = %dx%d, want 1080x1080", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Simulation.InitialDotLimit != 10000 {
		t.Errorf("initial_dot_limit = %d, want 10000", cfg.Simulation.InitialDotLimit)
	}
	if cfg.Simulation.SplitDelay != 0.05 {
		t.Errorf("split_delay = %f, want 0.05", cfg.Simulation.SplitDelay)
	}
	if len(cfg.Boundary.Shapes) != 5 {
		t.Fatalf("shapes = %v, want 5 entries", cfg.Boundary.Shapes)
	}
	if cfg.Boundary.Shapes[0] != "Circle" {
		t.Errorf("first shape = %q, want Circle", cfg.Boundary.Shapes[0])
	}
	if got := cfg.OffsetFor("Square"); got != -10.0 {
		t.Errorf("OffsetFor(Square) = %f, want -10", got)
	}
	if got := cfg.OffsetFor("NoSuchShape"); got != 0 {
		t.Errorf("OffsetFor(NoSuchShape) = %f, want 0", got)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Derived.CenterX != 540 || cfg.Derived.CenterY != 540 {
		t.Errorf("center = (%f, %f), want (540, 540)", cfg.Derived.CenterX, cfg.Derived.CenterY)
	}
	if math.Abs(cfg.Derived.ExtentRadius-486) > 1e-9 {
		t.Errorf("ExtentRadius = %f, want 486", cfg.Derived.ExtentRadius)
	}
	if math.Abs(cfg.Derived.SplitHalfRange-math.Pi/4) > 1e-9 {
		t.Errorf("SplitHalfRange = %f, want pi/4", cfg.Derived.SplitHalfRange)
	}
	if cfg.Derived.ShapeDropdown != "Circle;Square;Triangle;Parallelogram;Ameba" {
		t.Errorf("ShapeDropdown = %q", cfg.Derived.ShapeDropdown)
	}
	if idx, ok := cfg.Derived.ShapeIndex["Ameba"]; !ok || idx != 4 {
		t.Errorf("ShapeIndex[Ameba] = %d, %v, want 4, true", idx, ok)
	}
	if cfg.Derived.StatsWindowTicks != 300 {
		t.Errorf("StatsWindowTicks = %d, want 300", cfg.Derived.StatsWindowTicks)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	overlay := []byte("screen:\n  width: 800\n  height: 600\nblob:\n  seed: 42\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %dx%d, want 800x600", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Blob.Seed != 42 {
		t.Errorf("blob seed = %d, want 42", cfg.Blob.Seed)
	}
	// Untouched keys keep defaults
	if cfg.Simulation.DotSpeed != 200 {
		t.Errorf("dot_speed = %f, want 200", cfg.Simulation.DotSpeed)
	}
	// Derived values follow the overlay
	if math.Abs(cfg.Derived.ExtentRadius-270) > 1e-9 {
		t.Errorf("ExtentRadius = %f, want 270 (600 * 0.9 / 2)", cfg.Derived.ExtentRadius)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if back.Simulation.SpawnInterval != cfg.Simulation.SpawnInterval {
		t.Errorf("spawn_interval = %f, want %f", back.Simulation.SpawnInterval, cfg.Simulation.SpawnInterval)
	}
	if back.OffsetFor("Triangle") != cfg.OffsetFor("Triangle") {
		t.Errorf("Triangle offset = %f, want %f", back.OffsetFor("Triangle"), cfg.OffsetFor("Triangle"))
	}
}
