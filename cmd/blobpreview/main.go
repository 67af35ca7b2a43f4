// Ameba boundary preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/blobpreview
package main

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Pravusnex/DOTS/config"
	"github.com/Pravusnex/DOTS/geom"
	"github.com/Pravusnex/DOTS/sim"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// panel lays out the right-hand controls column top to bottom.
type panel struct {
	x, y  float32
	width float32
}

func (p *panel) advance(dy float32) { p.y += dy }

func (p *panel) heading(s string) {
	rl.DrawText(s, int32(p.x), int32(p.y), 20, rl.RayWhite)
	p.y += 35
}

func (p *panel) label(s string) {
	rl.DrawText(s, int32(p.x), int32(p.y), 16, rl.RayWhite)
	p.y += 25
}

// slider draws a captioned slider row and returns its current value.
func (p *panel) slider(caption string, value, lo, hi float32, format string) float32 {
	rl.DrawText(caption, int32(p.x), int32(p.y), 14, rl.Gray)
	p.y += 18
	out := gui.SliderBar(
		rl.Rectangle{X: p.x, Y: p.y, Width: p.width - 80, Height: 20},
		fmt.Sprintf("%g", lo), fmt.Sprintf("%g", hi),
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, out), int32(p.x+p.width-70), int32(p.y+2), 16, rl.RayWhite)
	p.y += 35
	return out
}

func (p *panel) button(col int, text string) bool {
	return gui.Button(rl.Rectangle{X: p.x + float32(col)*130, Y: p.y, Width: 120, Height: 30}, text)
}

// tune assigns the slider value and reports whether it moved.
func tune(dst *float64, v float32) bool {
	if float64(v) == *dst {
		return false
	}
	*dst = float64(v)
	return true
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Ameba Boundary Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	defaults := defaultBlob()
	params := defaults

	center := geom.Vec2{X: previewSize / 2, Y: windowHeight / 2}
	extent := float64(windowHeight) * 0.9 / 2
	const thickness = 5.0
	const dotRadius = 5.0

	verts := sim.BlobVertices(center, extent, params)
	regen := false

	for !rl.WindowShouldClose() {
		if regen {
			verts = sim.BlobVertices(center, extent, params)
			regen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		drawBlob(verts, thickness, dotRadius)
		rl.DrawCircleV(rl.Vector2{X: float32(center.X), Y: float32(center.Y)}, 3, rl.White)

		minR, maxR := radiusRange(center, verts)
		rl.DrawText(fmt.Sprintf("Vertices: %d  Rmin: %.0f  Rmax: %.0f", len(verts), minR, maxR),
			15, windowHeight-25, 16, rl.Gray)

		p := &panel{x: previewSize + 20, y: 10, width: panelWidth}
		p.heading("Ameba Parameters")

		regen = tune(&params.Frequency,
			p.slider("Frequency (noise lobes)", float32(params.Frequency), 0.5, 10, "%.1f")) || regen
		regen = tune(&params.BaseFactor,
			p.slider("Base factor (mean radius / extent)", float32(params.BaseFactor), 0.2, 0.9, "%.2f")) || regen
		regen = tune(&params.AmplitudeFactor,
			p.slider("Amplitude factor (noise depth)", float32(params.AmplitudeFactor), 0, 1, "%.2f")) || regen
		regen = tune(&params.MinRadiusFactor,
			p.slider("Min radius factor (pinch floor)", float32(params.MinRadiusFactor), 0, 0.8, "%.2f")) || regen

		if pts := int(p.slider("Points (outline resolution)", float32(params.Points), 16, 720, "%.0f")); pts != params.Points {
			params.Points = pts
			regen = true
		}
		p.advance(10)

		if p.button(0, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			regen = true
		}
		if p.button(1, "Reset All") {
			params = defaults
			regen = true
		}
		p.advance(45)

		p.label(fmt.Sprintf("Seed: %d", params.Seed))
		p.advance(10)

		p.label("YAML Config:")
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(p.x), int32(p.y), 14, rl.Gray)
			p.advance(16)
		}

		rl.DrawText("C copies the YAML block to the clipboard", int32(p.x), windowHeight-30, 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(strings.Join(yamlLines(params), "\n") + "\n")
		}

		rl.EndDrawing()
	}
}

// defaultBlob returns the blob parameters from the embedded defaults,
// with a fixed seed so the preview is stable until randomized.
func defaultBlob() config.BlobConfig {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	bc := cfg.Blob
	if bc.Seed < 0 {
		bc.Seed = 0
	}
	return bc
}

// drawBlob renders the outline plus the inset collision line that dots
// actually bounce off.
func drawBlob(verts []geom.Vec2, thickness, dotRadius float64) {
	n := len(verts)
	inset := thickness/2 + dotRadius

	for i := 0; i < n; i++ {
		start := verts[i]
		end := verts[(i+1)%n]
		rl.DrawLineEx(toScreen(start), toScreen(end), float32(thickness), rl.RayWhite)

		dir := end.Sub(start)
		if dir.LengthSquared() < 1e-9 {
			continue
		}
		// Outward normal for clockwise winding; shift inward against it.
		normal := geom.Vec2{X: dir.Y, Y: -dir.X}.Normalize()
		offset := normal.Scale(-inset)
		rl.DrawLineV(toScreen(start.Add(offset)), toScreen(end.Add(offset)),
			rl.Color{R: 80, G: 140, B: 80, A: 255})
	}
}

func toScreen(p geom.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func radiusRange(center geom.Vec2, verts []geom.Vec2) (minR, maxR float64) {
	if len(verts) == 0 {
		return 0, 0
	}
	minR = center.Distance(verts[0])
	maxR = minR
	for _, v := range verts[1:] {
		r := center.Distance(v)
		if r < minR {
			minR = r
		}
		if r > maxR {
			maxR = r
		}
	}
	return minR, maxR
}

func yamlLines(bc config.BlobConfig) []string {
	return []string{
		"blob:",
		fmt.Sprintf("  points: %d", bc.Points),
		fmt.Sprintf("  frequency: %.1f", bc.Frequency),
		fmt.Sprintf("  base_factor: %.2f", bc.BaseFactor),
		fmt.Sprintf("  amplitude_factor: %.2f", bc.AmplitudeFactor),
		fmt.Sprintf("  min_radius_factor: %.2f", bc.MinRadiusFactor),
		fmt.Sprintf("  seed: %d", bc.Seed),
	}
}
