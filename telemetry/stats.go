package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one tick window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-" json:"window_start"`
	WindowEndTick   int32   `csv:"window_end" json:"window_end"`
	SimTimeSec      float64 `csv:"sim_time" json:"sim_time"`

	// Population state at window end
	Shape          string `csv:"shape" json:"shape"`
	Population     int    `csv:"population" json:"population"`
	PeakPopulation int    `csv:"peak_population" json:"peak_population"`
	Limit          int    `csv:"limit" json:"limit"`

	// Lifecycle events during the window
	Spawns       int `csv:"spawns" json:"spawns"`
	Splits       int `csv:"splits" json:"splits"`
	SplitCancels int `csv:"split_cancels" json:"split_cancels"`

	// Wall collisions during the window, by detection phase
	CircleHits     int `csv:"circle_hits" json:"circle_hits"`
	PredictiveHits int `csv:"predictive_hits" json:"predictive_hits"`
	SafetyNetHits  int `csv:"safety_net_hits" json:"safety_net_hits"`

	// Radial distribution of dots around the boundary center,
	// sampled at window end
	RadialMean float64 `csv:"radial_mean" json:"radial_mean"`
	RadialStd  float64 `csv:"radial_std" json:"radial_std"`
	RadialP50  float64 `csv:"radial_p50" json:"radial_p50"`
	RadialP95  float64 `csv:"radial_p95" json:"radial_p95"`
}

// ComputeRadialStats calculates mean, standard deviation, and empirical
// quantiles from radial distance samples. Returns zeros for an empty slice.
func ComputeRadialStats(values []float64) (mean, std, p50, p95 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	// Quantile needs ascending order; sort a copy so callers keep theirs.
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)

	return mean, std, p50, p95
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("shape", s.Shape),
		slog.Int("population", s.Population),
		slog.Int("peak_population", s.PeakPopulation),
		slog.Int("limit", s.Limit),
		slog.Int("spawns", s.Spawns),
		slog.Int("splits", s.Splits),
		slog.Int("split_cancels", s.SplitCancels),
		slog.Int("circle_hits", s.CircleHits),
		slog.Int("predictive_hits", s.PredictiveHits),
		slog.Int("safety_net_hits", s.SafetyNetHits),
		slog.Float64("radial_mean", s.RadialMean),
		slog.Float64("radial_std", s.RadialStd),
		slog.Float64("radial_p50", s.RadialP50),
		slog.Float64("radial_p95", s.RadialP95),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"shape", s.Shape,
		"population", s.Population,
		"peak_population", s.PeakPopulation,
		"limit", s.Limit,
		"spawns", s.Spawns,
		"splits", s.Splits,
		"split_cancels", s.SplitCancels,
		"circle_hits", s.CircleHits,
		"predictive_hits", s.PredictiveHits,
		"safety_net_hits", s.SafetyNetHits,
		"radial_mean", s.RadialMean,
		"radial_std", s.RadialStd,
		"radial_p50", s.RadialP50,
		"radial_p95", s.RadialP95,
	)
}
