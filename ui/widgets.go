package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer opens themed panels. Content inside a panel is written
// through the Pen it returns, which tracks the vertical cursor so
// callers never do their own y math.
type Renderer struct {
	Theme Theme
}

// NewRenderer returns a renderer with the dark theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DarkTheme()}
}

// Panel fills a backdrop with a border and returns a pen positioned at
// the first content line.
func (r *Renderer) Panel(x, y, w, h int32) *Pen {
	rl.DrawRectangle(x, y, w, h, r.Theme.Panel)
	rl.DrawRectangleLines(x, y, w, h, r.Theme.Border)
	return &Pen{
		t:     r.Theme,
		x:     x + r.Theme.Pad,
		y:     y + r.Theme.Pad,
		width: w - 2*r.Theme.Pad,
	}
}

// Pen writes panel content top to bottom.
type Pen struct {
	t     Theme
	x, y  int32
	width int32
}

// Title writes the panel title, slightly larger than a heading.
func (p *Pen) Title(s string) {
	rl.DrawText(s, p.x, p.y, p.t.TitleSize, rl.White)
	p.y += p.t.TitleSize + 8
}

// Heading writes a section header.
func (p *Pen) Heading(s string) {
	rl.DrawText(s, p.x, p.y, p.t.HeadingSize, p.t.Heading)
	p.y += p.t.Row
}

// Text writes a full-width line in the muted color.
func (p *Pen) Text(s string) {
	rl.DrawText(s, p.x, p.y, p.t.TextSize, p.t.Muted)
	p.y += p.t.Row
}

// Line writes a label in the left column and a value in the right.
func (p *Pen) Line(label, value string) {
	rl.DrawText(label+":", p.x, p.y, p.t.TextSize, p.t.Muted)
	rl.DrawText(value, p.x+p.t.ValueCol, p.y, p.t.TextSize, p.t.Text)
	p.y += p.t.Row
}

// Linef is Line with a printf-formatted value.
func (p *Pen) Linef(label, format string, args ...any) {
	p.Line(label, fmt.Sprintf(format, args...))
}

// Gauge writes a labelled horizontal bar for a ratio in [0, 1].
// Out-of-range ratios are clamped.
func (p *Pen) Gauge(label string, ratio float32) {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	rl.DrawText(label+":", p.x, p.y, p.t.TextSize, p.t.Muted)

	trackX := p.x + p.t.ValueCol
	trackW := p.width - p.t.ValueCol - 44
	rl.DrawRectangle(trackX, p.y+2, trackW, p.t.GaugeH, p.t.GaugeTrack)
	rl.DrawRectangle(trackX, p.y+2, int32(float32(trackW)*ratio+0.5), p.t.GaugeH, p.t.GaugeFill)
	rl.DrawText(fmt.Sprintf("%d%%", int32(ratio*100+0.5)), trackX+trackW+6, p.y, p.t.TextSize, p.t.Text)

	p.y += p.t.Row + 2
}

// Gap leaves a half-row of vertical space between sections.
func (p *Pen) Gap() {
	p.y += p.t.Row / 2
}

// X and Y expose the cursor for callers that place their own widgets.
func (p *Pen) X() int32 { return p.x }
func (p *Pen) Y() int32 { return p.y }

// Width returns the content width inside the panel.
func (p *Pen) Width() int32 { return p.width }
