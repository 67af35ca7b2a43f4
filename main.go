package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Pravusnex/DOTS/config"
	"github.com/Pravusnex/DOTS/game"
)

type cliFlags struct {
	configPath  string
	shape       string
	seed        int64
	headless    bool
	maxTicks    int
	logStats    bool
	statsWindow float64
	outputDir   string
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.StringVar(&f.configPath, "config", "", "path to config.yaml (empty = built-in defaults)")
	flag.StringVar(&f.shape, "shape", "", "initial boundary shape (empty = first configured)")
	flag.Int64Var(&f.seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.BoolVar(&f.headless, "headless", false, "run without graphics")
	flag.IntVar(&f.maxTicks, "max-ticks", 0, "stop after N ticks (0 = unlimited)")
	flag.BoolVar(&f.logStats, "log-stats", false, "log window stats via slog")
	flag.Float64Var(&f.statsWindow, "stats-window", 0, "stats window in seconds (0 = config value)")
	flag.StringVar(&f.outputDir, "output-dir", "", "directory for CSV logs, run config, and reports")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := config.Init(f.configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if f.seed == 0 {
		f.seed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:         config.Cfg(),
		Seed:           f.seed,
		Shape:          f.shape,
		Headless:       f.headless,
		LogStats:       f.logStats,
		StatsWindowSec: f.statsWindow,
		OutputDir:      f.outputDir,
	}

	var err error
	if f.headless {
		err = runHeadless(opts, f.maxTicks)
	} else {
		err = runWindowed(opts, f.maxTicks)
	}
	if err != nil {
		slog.Error("failed to initialize game", "error", err)
		os.Exit(1)
	}
}

// runHeadless drives the simulation without raylib until the population
// cap pauses it or maxTicks elapse.
func runHeadless(opts game.Options, maxTicks int) error {
	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"shape", g.Shape(),
		"max_ticks", maxTicks,
	)

	// The simulation constructs paused; headless runs start at once.
	g.TogglePause()

	for {
		g.UpdateHeadless()

		if g.Paused() {
			slog.Info("population limit reached, stopping",
				"tick", g.TickCount(),
				"population", g.Population(),
			)
			return nil
		}
		if maxTicks > 0 && int(g.TickCount()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.TickCount())
			return nil
		}
	}
}

// runWindowed opens the raylib window and runs the update/draw loop
// until the window closes.
func runWindowed(opts game.Options, maxTicks int) error {
	scr := opts.Config.Screen
	rl.InitWindow(int32(scr.Width), int32(scr.Height), "DOTS")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(scr.TargetFPS))

	g, err := game.NewGame(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && int(g.TickCount()) >= maxTicks {
			break
		}
	}
	return nil
}
