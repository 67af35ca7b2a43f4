package telemetry

import (
	"math"
	"testing"
)

func TestComputeRadialStats(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
		wantP50  float64
		wantP95  float64
	}{
		{"empty slice", []float64{}, 0, 0, 0, 0},
		{"single sample", []float64{7}, 7, 0, 7, 7},
		{"four samples", []float64{10, 20, 30, 40}, 25, 12.9099, 20, 40},
		{"five samples", []float64{1, 2, 3, 4, 5}, 3, 1.5811, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, p50, p95 := ComputeRadialStats(tt.values)
			if math.Abs(mean-tt.wantMean) > 0.001 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(std-tt.wantStd) > 0.001 {
				t.Errorf("std = %v, want %v", std, tt.wantStd)
			}
			if math.Abs(p50-tt.wantP50) > 0.001 {
				t.Errorf("p50 = %v, want %v", p50, tt.wantP50)
			}
			if math.Abs(p95-tt.wantP95) > 0.001 {
				t.Errorf("p95 = %v, want %v", p95, tt.wantP95)
			}
		})
	}
}

func TestComputeRadialStatsLeavesInputUnsorted(t *testing.T) {
	values := []float64{30, 10, 40, 20}
	mean, _, p50, _ := ComputeRadialStats(values)

	if math.Abs(mean-25) > 0.001 {
		t.Errorf("mean = %v, want 25", mean)
	}
	if math.Abs(p50-20) > 0.001 {
		t.Errorf("p50 = %v, want 20", p50)
	}
	if values[0] != 30 || values[3] != 20 {
		t.Errorf("input slice was reordered: %v", values)
	}
}
