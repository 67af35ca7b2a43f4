// Package game owns the simulation state: the ECS world of dots, the
// active boundary, the population policy, and the per-tick update loop.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/Pravusnex/DOTS/camera"
	"github.com/Pravusnex/DOTS/components"
	"github.com/Pravusnex/DOTS/config"
	"github.com/Pravusnex/DOTS/sim"
	"github.com/Pravusnex/DOTS/telemetry"
	"github.com/Pravusnex/DOTS/ui"
)

// Options configures a Game instance.
type Options struct {
	// Config to run with; nil uses the package global.
	Config *config.Config

	// Seed for the simulation RNG.
	Seed int64

	// Shape is the initial boundary shape; empty uses the first configured one.
	Shape string

	// Headless skips all window, input, and render state.
	Headless bool

	// LogStats emits window and perf stats via slog on every flush.
	LogStats bool

	// StatsWindowSec overrides the configured telemetry window length.
	StatsWindowSec float64

	// OutputDir enables CSV/report output when non-empty.
	OutputDir string
}

// Game holds the complete simulation state.
type Game struct {
	cfg *config.Config

	world     *ecs.World
	dotMapper *ecs.Map4[components.Position, components.Velocity, components.Tint, components.SplitState]
	dotFilter ecs.Filter4[components.Position, components.Velocity, components.Tint, components.SplitState]

	boundary *sim.Boundary
	engine   *sim.Engine

	rng  *rand.Rand
	seed int64

	// Simulation clock: seconds advanced by clamped dt, never wall time
	simTime float64
	tick    int32

	// Population policy
	paused              bool
	capReached          bool
	firstUnpausePending bool
	dotLimit            int
	lastSpawn           float64
	population          int

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	output        *telemetry.OutputManager
	lastWindow    telemetry.WindowStats
	hasWindow     bool
	logStats      bool
	headless      bool

	// Presentation shell (nil in headless mode)
	camera     *camera.Camera
	hud        *ui.HUD
	controls   *ui.ControlsPanel
	statsPanel *ui.StatsPanel

	// Window dimensions
	screenWidth  float32
	screenHeight float32

	// True between a stepped tick and its render phase; Draw finishes
	// the perf sample only for ticks that actually ran physics.
	perfTickActive bool

	// Render colors resolved from config once
	backgroundColor   rl.Color
	boundaryColor     rl.Color
	centerMarkerColor rl.Color
	statusColor       rl.Color
}

// NewGame creates a new game instance. The game starts paused with an
// empty arena; the first unpause seeds a dot.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	shape := opts.Shape
	if shape == "" {
		shape = cfg.FallbackShape()
	}

	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}
	dt := 1.0 / float64(cfg.Screen.TargetFPS)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing run config: %w", err)
	}

	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: &world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		seed:  opts.Seed,

		paused:              true,
		firstUnpausePending: true,
		dotLimit:            cfg.Simulation.InitialDotLimit,

		collector:     telemetry.NewCollector(windowSec, dt),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:        output,
		logStats:      opts.LogStats,
		headless:      opts.Headless,

		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,

		backgroundColor:   colorFrom(cfg.Render.Background),
		boundaryColor:     colorFrom(cfg.Render.BoundaryColor),
		centerMarkerColor: colorFrom(cfg.Render.CenterMarkerColor),
		statusColor:       colorFrom(cfg.Render.StatusColor),
	}
	g.dotMapper = ecs.NewMap4[
		components.Position,
		components.Velocity,
		components.Tint,
		components.SplitState,
	](&world)
	g.dotFilter = *ecs.NewFilter4[
		components.Position,
		components.Velocity,
		components.Tint,
		components.SplitState,
	](&world)

	g.setBoundary(shape)

	if !opts.Headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight, cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel(10, 110, 200)
		g.statsPanel = ui.NewStatsPanel(int32(g.screenWidth)-260, 10, 250)
		g.controls.SetShape(cfg.Derived.ShapeIndex[g.boundary.Shape])
	}

	slog.Info("game_initialized",
		"shape", g.boundary.Shape,
		"dot_limit", g.dotLimit,
		"seed", opts.Seed,
		"headless", opts.Headless,
	)

	return g, nil
}

// setBoundary rebuilds the boundary and collision engine for a shape.
func (g *Game) setBoundary(shape string) {
	g.boundary = sim.NewBoundary(shape, g.cfg)
	g.engine = sim.NewEngine(g.boundary, g.cfg.Simulation.DotRadius)
}

// Tick advances the simulation by dt seconds. No-op while paused.
func (g *Game) Tick(dt float64) {
	if g.paused {
		return
	}
	if maxDT := g.cfg.Simulation.MaxDT; dt > maxDT {
		dt = maxDT
	}

	g.perfCollector.StartTick()
	g.perfTickActive = true

	g.simTime += dt
	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseSpawn)
	g.updateSpawn()

	g.perfCollector.StartPhase(telemetry.PhasePhysics)
	g.updatePhysics(dt)

	g.perfCollector.StartPhase(telemetry.PhaseSplit)
	births, deaths := g.collectSplits()

	g.perfCollector.StartPhase(telemetry.PhaseApply)
	g.applySplits(births, deaths)

	g.updateCapState()

	g.collector.ObservePopulation(g.population)
	if g.collector.ShouldFlush(g.tick) {
		g.flushTelemetry()
	}

	if g.headless {
		g.perfCollector.EndTick()
		g.perfTickActive = false
	}
}

// Update runs one windowed frame: input first, then a tick at the
// measured frame time.
func (g *Game) Update() {
	g.handleInput()
	g.Tick(float64(rl.GetFrameTime()))
}

// UpdateHeadless advances one fixed-step tick without a window.
func (g *Game) UpdateHeadless() {
	g.Tick(1.0 / float64(g.cfg.Screen.TargetFPS))
}

// TogglePause flips the pause state. The first unpause seeds a dot at the
// boundary center; unpausing after the population limit was reached doubles
// the limit.
func (g *Game) TogglePause() {
	if !g.paused {
		g.paused = true
		return
	}

	if g.capReached {
		g.dotLimit *= 2
		g.capReached = false
		slog.Info("limit_doubled", "limit", g.dotLimit, "population", g.population)
	}

	if g.firstUnpausePending {
		g.firstUnpausePending = false
		if g.dotLimit > 0 && g.population == 0 {
			g.spawnDot(g.boundary.Center, g.randomDirection().Scale(g.cfg.Simulation.DotSpeed))
			g.collector.RecordSpawn()
		}
		g.lastSpawn = g.simTime
	}

	g.paused = false
}

// Reset clears the arena, restores the initial limit, rebuilds the boundary
// for the given shape, and leaves the simulation paused.
func (g *Game) Reset(shape string) {
	g.removeAllDots()

	g.setBoundary(shape)
	g.dotLimit = g.cfg.Simulation.InitialDotLimit
	g.paused = true
	g.capReached = false
	g.firstUnpausePending = true
	g.lastSpawn = g.simTime

	if g.controls != nil {
		g.controls.SetShape(g.cfg.Derived.ShapeIndex[g.boundary.Shape])
	}

	slog.Info("simulation_reset", "shape", g.boundary.Shape, "limit", g.dotLimit)
}

// Close writes the final report (when output is enabled) and releases
// output files.
func (g *Game) Close() error {
	if g.output != nil {
		if path, err := g.writeReport(); err != nil {
			slog.Error("report_write_failed", "error", err)
		} else {
			slog.Info("report_written", "path", path)
		}
	}
	return g.output.Close()
}

// TickCount returns the number of stepped ticks since construction.
func (g *Game) TickCount() int32 { return g.tick }

// Population returns the current number of dots.
func (g *Game) Population() int { return g.population }

// Limit returns the current population limit.
func (g *Game) Limit() int { return g.dotLimit }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// CapReached reports whether the limit-reached flag is set.
func (g *Game) CapReached() bool { return g.capReached }

// Shape returns the active boundary shape name.
func (g *Game) Shape() string { return g.boundary.Shape }

// SimTime returns the simulation clock in seconds.
func (g *Game) SimTime() float64 { return g.simTime }
