package ui

import "github.com/Pravusnex/DOTS/telemetry"

// StatsPanelData holds the telemetry shown in the stats panel.
type StatsPanelData struct {
	Window    telemetry.WindowStats
	HasWindow bool
	Perf      telemetry.PerfStats
}

// StatsPanel renders the telemetry panel (toggled with TAB).
type StatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewStatsPanel creates a hidden stats panel at the given position.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (s *StatsPanel) SetPosition(x, y int32) {
	s.x = x
	s.y = y
}

// IsVisible returns whether the panel is shown.
func (s *StatsPanel) IsVisible() bool {
	return s.visible
}

// Toggle switches panel visibility.
func (s *StatsPanel) Toggle() bool {
	s.visible = !s.visible
	return s.visible
}

// Draw renders the stats panel.
func (s *StatsPanel) Draw(data StatsPanelData) {
	if !s.visible {
		return
	}

	const perfRows = 9 // four totals plus one row per pipeline phase

	t := s.renderer.Theme
	windowRows := int32(1)
	gauge := int32(0)
	if data.HasWindow {
		windowRows = 9
		gauge = t.Row + 2
	}
	height := 2*t.Pad + t.TitleSize + 8 + // title block
		2*t.Row + // two section headings
		(windowRows+perfRows)*t.Row + gauge + t.Row/2

	pen := s.renderer.Panel(s.x, s.y, s.width, height)
	pen.Title("Telemetry")

	pen.Heading("Window")
	if !data.HasWindow {
		pen.Text("collecting first window...")
	} else {
		w := data.Window
		pen.Linef("Ticks", "%d - %d", w.WindowStartTick, w.WindowEndTick)
		pen.Linef("Spawns", "%d", w.Spawns)
		pen.Linef("Splits", "%d", w.Splits)
		pen.Linef("Cancels", "%d", w.SplitCancels)
		pen.Linef("Circle", "%d", w.CircleHits)
		pen.Linef("Predict", "%d", w.PredictiveHits)
		pen.Linef("Safety", "%d", w.SafetyNetHits)
		pen.Linef("Mean r", "%.1f", w.RadialMean)
		pen.Linef("P95 r", "%.1f", w.RadialP95)

		fill := float32(0)
		if w.Limit > 0 {
			fill = float32(w.Population) / float32(w.Limit)
		}
		pen.Gauge("Fill", fill)
	}
	pen.Gap()

	pen.Heading("Performance")
	p := data.Perf
	pen.Linef("Avg us", "%d", p.AvgTickDuration.Microseconds())
	pen.Linef("Max us", "%d", p.MaxTickDuration.Microseconds())
	pen.Linef("Ticks/s", "%.0f", p.TicksPerSecond)
	pen.Linef("FPS", "%.0f", p.FPS)
	for ph := telemetry.PhaseSpawn; ph <= telemetry.PhaseRender; ph++ {
		pen.Linef(ph.String(), "%.1f%%", p.PhasePct[ph])
	}
}
