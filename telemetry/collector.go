package telemetry

import "github.com/Pravusnex/DOTS/sim"

// windowCounters are the per-window event tallies. Flush zeroes them by
// assigning a fresh value.
type windowCounters struct {
	spawns         int
	splits         int
	splitCancels   int
	circleHits     int
	predictiveHits int
	safetyNetHits  int
	peakPopulation int
}

// Collector tallies simulation events into fixed-length tick windows.
type Collector struct {
	windowTicks int32
	startTick   int32
	windowCounters
}

// NewCollector sizes the window from its duration in simulation seconds
// and the seconds-per-tick step. Windows are at least one tick long.
func NewCollector(windowSec, dt float64) *Collector {
	ticks := int32(windowSec / dt)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{windowTicks: ticks}
}

// RecordSpawn tallies an interval-spawned dot.
func (c *Collector) RecordSpawn() { c.spawns++ }

// RecordSplit tallies an executed split.
func (c *Collector) RecordSplit() { c.splits++ }

// RecordSplitCancel tallies a split the population limit blocked.
func (c *Collector) RecordSplitCancel() { c.splitCancels++ }

// RecordCollision tallies a wall hit under the phase that detected it.
func (c *Collector) RecordCollision(phase sim.HitPhase) {
	switch phase {
	case sim.HitCircle:
		c.circleHits++
	case sim.HitPredictive:
		c.predictiveHits++
	case sim.HitSafetyNet:
		c.safetyNetHits++
	}
}

// ObservePopulation raises the window's population peak.
func (c *Collector) ObservePopulation(n int) {
	if n > c.peakPopulation {
		c.peakPopulation = n
	}
}

// ShouldFlush reports whether the current window has run its course.
func (c *Collector) ShouldFlush(tick int32) bool {
	return tick-c.startTick >= c.windowTicks
}

// WindowDurationTicks returns the window length in ticks.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowTicks
}

// WindowSnapshot is the simulation state Flush stamps onto the window
// it closes.
type WindowSnapshot struct {
	Tick       int32
	SimTime    float64
	Population int
	Limit      int
	Shape      string
	// Radial holds each dot's distance from the boundary center.
	Radial []float64
}

// Flush closes the current window, returning its stats and starting the
// next one. The population peak carries the snapshot value forward.
func (c *Collector) Flush(snap WindowSnapshot) WindowStats {
	mean, std, p50, p95 := ComputeRadialStats(snap.Radial)

	stats := WindowStats{
		WindowStartTick: c.startTick,
		WindowEndTick:   snap.Tick,
		SimTimeSec:      snap.SimTime,

		Shape:          snap.Shape,
		Population:     snap.Population,
		PeakPopulation: c.peakPopulation,
		Limit:          snap.Limit,

		Spawns:       c.spawns,
		Splits:       c.splits,
		SplitCancels: c.splitCancels,

		CircleHits:     c.circleHits,
		PredictiveHits: c.predictiveHits,
		SafetyNetHits:  c.safetyNetHits,

		RadialMean: mean,
		RadialStd:  std,
		RadialP50:  p50,
		RadialP95:  p95,
	}

	c.startTick = snap.Tick
	c.windowCounters = windowCounters{peakPopulation: snap.Population}

	return stats
}
