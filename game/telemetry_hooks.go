package game

import (
	"log/slog"
	"time"

	"github.com/Pravusnex/DOTS/telemetry"
)

// flushTelemetry closes the current stats window and persists it.
func (g *Game) flushTelemetry() {
	stats := g.collector.Flush(telemetry.WindowSnapshot{
		Tick:       g.tick,
		SimTime:    g.simTime,
		Population: g.population,
		Limit:      g.dotLimit,
		Shape:      g.boundary.Shape,
		Radial:     g.sampleRadialDistances(),
	})
	perfStats := g.perfCollector.Stats()

	g.lastWindow = stats
	g.hasWindow = true

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteStats(stats); err != nil {
		slog.Error("failed to write window stats", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf stats", "error", err)
	}
}

// sampleRadialDistances collects every dot's distance from the boundary
// center, for the radial distribution stats.
func (g *Game) sampleRadialDistances() []float64 {
	var distances []float64
	query := g.dotFilter.Query()
	for query.Next() {
		pos, _, _, _ := query.Get()
		distances = append(distances, pos.Vec2.Distance(g.boundary.Center))
	}
	return distances
}

// writeReport saves a point-in-time JSON report of the run.
func (g *Game) writeReport() (string, error) {
	report := telemetry.Report{
		CreatedAt:  time.Now().UTC(),
		Seed:       g.seed,
		Shape:      g.boundary.Shape,
		Tick:       g.tick,
		SimTimeSec: g.simTime,
		Population: g.population,
		Limit:      g.dotLimit,
		Perf:       g.perfCollector.Stats().ToCSV(g.tick),
	}
	if g.hasWindow {
		window := g.lastWindow
		report.Window = &window
	}
	return telemetry.SaveReport(report, g.output.Dir())
}
