package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Pravusnex/DOTS/geom"
	"github.com/Pravusnex/DOTS/sim"
	"github.com/Pravusnex/DOTS/telemetry"
	"github.com/Pravusnex/DOTS/ui"
)

// Draw renders the game state. Render time is folded into the perf sample
// of the tick that produced this frame; paused frames only record FPS.
func (g *Game) Draw() {
	if g.perfTickActive {
		g.perfCollector.StartPhase(telemetry.PhaseRender)
	}

	rl.BeginDrawing()
	rl.ClearBackground(g.backgroundColor)

	g.drawBoundary()
	g.drawDots()
	g.drawHUD()

	rl.EndDrawing()

	g.perfCollector.RecordFrame()
	if g.perfTickActive {
		g.perfCollector.EndTick()
		g.perfTickActive = false
	}
}

// drawBoundary renders the arena wall and its center marker.
func (g *Game) drawBoundary() {
	b := g.boundary
	zoom := g.camera.Zoom()
	thickness := float32(b.Thickness) * zoom

	switch b.Kind {
	case sim.KindCircle:
		center := g.worldToScreen(b.Center)
		inner := float32(b.Radius-b.Thickness/2) * zoom
		outer := float32(b.Radius+b.Thickness/2) * zoom
		rl.DrawRing(center, inner, outer, 0, 360, 128, g.boundaryColor)

	case sim.KindPolygon:
		for _, e := range b.Edges {
			rl.DrawLineEx(g.worldToScreen(e.Start), g.worldToScreen(e.End), thickness, g.boundaryColor)
		}
	}

	marker := float32(g.cfg.Render.CenterMarkerRadius) * zoom
	rl.DrawCircleV(g.worldToScreen(b.Center), marker, g.centerMarkerColor)
}

// drawDots renders every dot inside the visible viewport.
func (g *Game) drawDots() {
	radius := float32(g.cfg.Simulation.DotRadius)
	screenRadius := radius * g.camera.Zoom()

	query := g.dotFilter.Query()
	for query.Next() {
		pos, _, tint, _ := query.Get()

		if !g.camera.IsVisible(float32(pos.X), float32(pos.Y), radius) {
			continue
		}

		rl.DrawCircleV(
			g.worldToScreen(pos.Vec2),
			screenRadius,
			rl.Color{R: tint.R, G: tint.G, B: tint.B, A: 255},
		)
	}
}

// drawHUD renders the text HUD, the controls panel, and the stats panel.
func (g *Game) drawHUD() {
	w := int32(g.screenWidth)
	h := int32(g.screenHeight)

	g.hud.Draw(ui.HUDData{
		Population:   g.population,
		Limit:        g.dotLimit,
		Shape:        g.boundary.Shape,
		Paused:       g.paused,
		CapReached:   g.capReached,
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		StatusColor:  g.statusColor,
		ScreenWidth:  w,
		ScreenHeight: h,
	})

	action := g.controls.Draw(ui.ControlsState{
		Paused: g.paused,
		Shapes: g.cfg.Derived.ShapeDropdown,
	})
	switch {
	case action.TogglePause:
		g.TogglePause()
	case action.Reset:
		g.Reset(g.boundary.Shape)
	case action.ShapeChanged:
		g.Reset(g.shapeByIndex(action.ShapeIndex))
	}

	g.statsPanel.Draw(ui.StatsPanelData{
		Window:    g.lastWindow,
		HasWindow: g.hasWindow,
		Perf:      g.perfCollector.Stats(),
	})

	g.hud.DrawControls(w, h,
		"SPACE pause | R reset | TAB stats | F5 report | arrows pan | wheel/+- zoom | HOME view | F11 fullscreen")
}

// worldToScreen converts a world-space point to raylib screen coordinates.
func (g *Game) worldToScreen(p geom.Vec2) rl.Vector2 {
	sx, sy := g.camera.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: sx, Y: sy}
}

// shapeByIndex maps a dropdown index back to a configured shape name.
func (g *Game) shapeByIndex(i int) string {
	shapes := g.cfg.Boundary.Shapes
	if i < 0 || i >= len(shapes) {
		return g.cfg.FallbackShape()
	}
	return shapes[i]
}

// colorFrom builds a raylib color from a configured RGB triple.
func colorFrom(rgb []int) rl.Color {
	c := rl.Color{A: 255}
	if len(rgb) > 0 {
		c.R = uint8(rgb[0])
	}
	if len(rgb) > 1 {
		c.G = uint8(rgb[1])
	}
	if len(rgb) > 2 {
		c.B = uint8(rgb[2])
	}
	return c
}
