// Package config loads the simulation's YAML configuration. Built-in
// defaults are embedded in the binary; a user file overlays them field
// by field.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Blob       BlobConfig       `yaml:"blob"`
	Render     RenderConfig     `yaml:"render"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds dot lifecycle parameters.
type SimulationConfig struct {
	DotRadius       float64 `yaml:"dot_radius"`        // Dot radius in pixels
	DotSpeed        float64 `yaml:"dot_speed"`         // Fixed dot speed in pixels/second
	SpawnInterval   float64 `yaml:"spawn_interval"`    // Seconds between interval spawns
	SplitDelay      float64 `yaml:"split_delay"`       // Seconds between wall hit and split
	SplitAngleRange float64 `yaml:"split_angle_range"` // Total split cone in degrees, centered on the inward normal
	InitialDotLimit int     `yaml:"initial_dot_limit"` // Population cap before auto-pause
	MaxDT           float64 `yaml:"max_dt"`            // Clamp for per-frame dt in seconds
}

// BoundaryConfig holds boundary shape parameters.
type BoundaryConfig struct {
	Factor    float64 `yaml:"factor"`    // Shape extent as a fraction of the window
	Thickness float64 `yaml:"thickness"` // Visual boundary line thickness in pixels
	// Shapes lists the selectable shape names in dropdown order.
	Shapes []string `yaml:"shapes"`
	// CollisionOffsets shifts each shape's collision surface relative to the
	// visual boundary's inner edge. Positive shrinks inward, negative expands.
	CollisionOffsets map[string]float64 `yaml:"collision_offsets"`
}

// BlobConfig holds parameters for the noise-generated Ameba boundary.
type BlobConfig struct {
	Points          int     `yaml:"points"`            // Angular samples around the circle
	Frequency       float64 `yaml:"frequency"`         // Noise sampling frequency
	BaseFactor      float64 `yaml:"base_factor"`       // Base radius as a fraction of the extent radius
	AmplitudeFactor float64 `yaml:"amplitude_factor"`  // Noise amplitude as a fraction of the base radius
	MinRadiusFactor float64 `yaml:"min_radius_factor"` // Radius floor as a fraction of the base radius
	Seed            int64   `yaml:"seed"`              // Noise seed; negative draws a random seed per construction
}

// RenderConfig holds display colors as RGB triples.
type RenderConfig struct {
	Background         []int   `yaml:"background"`
	BoundaryColor      []int   `yaml:"boundary_color"`
	CenterMarkerColor  []int   `yaml:"center_marker_color"`
	CenterMarkerRadius float64 `yaml:"center_marker_radius"`
	StatusColor        []int   `yaml:"status_color"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CenterX          float64        // Window center x
	CenterY          float64        // Window center y
	ExtentRadius     float64        // min(width,height) * boundary factor / 2
	SplitHalfRange   float64        // Half the split cone, in radians
	ScreenW32        float32        // Screen.Width as float32
	ScreenH32        float32        // Screen.Height as float32
	ShapeIndex       map[string]int // shape name -> dropdown index
	ShapeDropdown    string         // Shapes joined with ';' for the dropdown widget
	StatsWindowTicks int            // Telemetry window length in ticks at target FPS
}

var global *Config

// Init installs the global configuration returned by Cfg. An empty
// path keeps the embedded defaults.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is Init for tests and tools that cannot proceed without config.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Cfg returns the configuration installed by Init, panicking when
// called before it.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() before Init()")
	}
	return global
}

// Load parses the embedded defaults and, when path is non-empty,
// overlays the user file on top. Fields absent from the user file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived fills DerivedConfig from the loaded values.
func (c *Config) computeDerived() {
	d := &c.Derived

	d.CenterX = float64(c.Screen.Width) / 2
	d.CenterY = float64(c.Screen.Height) / 2
	d.ScreenW32 = float32(c.Screen.Width)
	d.ScreenH32 = float32(c.Screen.Height)

	extent := min(c.Screen.Width, c.Screen.Height)
	d.ExtentRadius = float64(extent) * c.Boundary.Factor / 2

	d.SplitHalfRange = (c.Simulation.SplitAngleRange / 2) * math.Pi / 180

	if len(c.Boundary.Shapes) == 0 {
		c.Boundary.Shapes = []string{"Circle"}
	}
	d.ShapeIndex = make(map[string]int, len(c.Boundary.Shapes))
	for i, name := range c.Boundary.Shapes {
		d.ShapeIndex[name] = i
	}
	d.ShapeDropdown = strings.Join(c.Boundary.Shapes, ";")

	d.StatsWindowTicks = max(1, int(c.Telemetry.StatsWindow*float64(c.Screen.TargetFPS)))
}

// OffsetFor returns the collision offset for the named shape, 0 when the
// shape has no configured entry.
func (c *Config) OffsetFor(shape string) float64 {
	return c.Boundary.CollisionOffsets[shape]
}

// FallbackShape returns the first configured shape name. Unknown shape
// selections resolve to it.
func (c *Config) FallbackShape() string {
	return c.Boundary.Shapes[0]
}

// WriteYAML saves the effective configuration, e.g. alongside run output.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
