package telemetry

import (
	"log/slog"
	"math"
	"time"
)

// Phase indexes one stage of the simulation step. The pipeline is fixed:
// spawn, physics, split, apply, and, in windowed mode, render.
type Phase uint8

const (
	PhaseSpawn Phase = iota
	PhasePhysics
	PhaseSplit
	PhaseApply
	PhaseRender
	phaseCount
)

var phaseNames = [phaseCount]string{"spawn", "physics", "split", "apply", "render"}

// String returns the phase name used in logs and the stats panel.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// tickSample is the timing record of one completed tick.
type tickSample struct {
	total  time.Duration
	phases [phaseCount]time.Duration
}

// PerfCollector measures tick and phase durations over a rolling window
// of recent ticks. A tick spans StartTick through EndTick; phases run
// back to back, each StartPhase closing the previous one.
type PerfCollector struct {
	ring  []tickSample
	next  int
	count int

	// Sample being accumulated for the tick in progress.
	open       tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	// Frame-to-frame interval, windowed mode only.
	lastFrame time.Time
	frameDur  time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{ring: make([]tickSample, windowSize)}
}

// StartTick begins a fresh sample.
func (p *PerfCollector) StartTick() {
	p.open = tickSample{}
	p.tickStart = time.Now()
	p.inPhase = false
}

// StartPhase switches the running phase, closing the previous one.
func (p *PerfCollector) StartPhase(ph Phase) {
	now := time.Now()
	if p.inPhase {
		p.open.phases[p.phase] += now.Sub(p.phaseStart)
	}
	p.phase = ph
	p.phaseStart = now
	p.inPhase = true
}

// EndTick closes the current phase and sample and stores it in the ring.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.inPhase {
		p.open.phases[p.phase] += now.Sub(p.phaseStart)
		p.inPhase = false
	}
	p.open.total = now.Sub(p.tickStart)

	p.ring[p.next] = p.open
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

// RecordFrame notes a presented frame; consecutive calls measure the
// frame-to-frame interval behind the FPS readout.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDur = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats aggregates the rolling window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Per-phase averages and their share of the average tick, indexed
	// by Phase.
	PhaseAvg [phaseCount]time.Duration
	PhasePct [phaseCount]float64

	TicksPerSecond float64

	// Windowed mode only; zero in headless runs.
	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the currently held samples. Safe to call at any
// time; an empty collector yields zeroed tick stats.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats
	if p.frameDur > 0 {
		s.FrameDuration = p.frameDur
		s.FPS = float64(time.Second) / float64(p.frameDur)
	}
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var phaseSum [phaseCount]time.Duration
	for i := 0; i < p.count; i++ {
		sample := &p.ring[i]
		total += sample.total
		if i == 0 || sample.total < s.MinTickDuration {
			s.MinTickDuration = sample.total
		}
		if sample.total > s.MaxTickDuration {
			s.MaxTickDuration = sample.total
		}
		for ph, d := range sample.phases {
			phaseSum[ph] += d
		}
	}

	n := time.Duration(p.count)
	s.AvgTickDuration = total / n
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	for ph, sum := range phaseSum {
		s.PhaseAvg[ph] = sum / n
		if s.AvgTickDuration > 0 {
			s.PhasePct[ph] = float64(s.PhaseAvg[ph]) / float64(s.AvgTickDuration) * 100
		}
	}
	return s
}

// LogStats logs the aggregate as a flat perf event.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for ph, pct := range s.PhasePct {
		if pct > 0.1 {
			attrs = append(attrs, Phase(ph).String()+"_pct", math.Round(pct*10)/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for ph, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(Phase(ph).String()+"_pct", pct))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is the flat row shape written to perf_stats.csv.
type PerfStatsCSV struct {
	WindowEnd   int32   `csv:"window_end" json:"window_end"`
	AvgTickUS   int64   `csv:"avg_tick_us" json:"avg_tick_us"`
	MinTickUS   int64   `csv:"min_tick_us" json:"min_tick_us"`
	MaxTickUS   int64   `csv:"max_tick_us" json:"max_tick_us"`
	TicksPerSec float64 `csv:"ticks_per_sec" json:"ticks_per_sec"`
	FPS         float64 `csv:"fps" json:"fps"`
	SpawnPct    float64 `csv:"spawn_pct" json:"spawn_pct"`
	PhysicsPct  float64 `csv:"physics_pct" json:"physics_pct"`
	SplitPct    float64 `csv:"split_pct" json:"split_pct"`
	ApplyPct    float64 `csv:"apply_pct" json:"apply_pct"`
	RenderPct   float64 `csv:"render_pct" json:"render_pct"`
}

// ToCSV flattens the aggregate for CSV export, tagged with the tick
// that closed the stats window.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:   windowEnd,
		AvgTickUS:   s.AvgTickDuration.Microseconds(),
		MinTickUS:   s.MinTickDuration.Microseconds(),
		MaxTickUS:   s.MaxTickDuration.Microseconds(),
		TicksPerSec: s.TicksPerSecond,
		FPS:         s.FPS,
		SpawnPct:    s.PhasePct[PhaseSpawn],
		PhysicsPct:  s.PhasePct[PhasePhysics],
		SplitPct:    s.PhasePct[PhaseSplit],
		ApplyPct:    s.PhasePct[PhaseApply],
		RenderPct:   s.PhasePct[PhaseRender],
	}
}
