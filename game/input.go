package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Screen pixels the view moves per frame while an arrow key is held.
const panStep = 8

// handleInput processes keyboard shortcuts for the windowed shell.
// Headless runs never call into here.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset(g.boundary.Shape)
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.statsPanel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.snapshotReport()
	}

	g.handleCameraInput()
}

// snapshotReport writes an on-demand run report (F5).
func (g *Game) snapshotReport() {
	if g.output == nil {
		return
	}
	path, err := g.writeReport()
	if err != nil {
		slog.Error("report_write_failed", "error", err)
		return
	}
	slog.Info("report_written", "path", path)
}

// handleResize propagates window size changes to the camera and UI.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth, g.screenHeight = w, h
	g.camera.Resize(w, h)
	g.statsPanel.SetPosition(int32(w)-260, 10)
}

// handleCameraInput applies pan, zoom and view-reset controls.
func (g *Game) handleCameraInput() {
	var dx, dy float32
	if rl.IsKeyDown(rl.KeyLeft) {
		dx -= panStep
	}
	if rl.IsKeyDown(rl.KeyRight) {
		dx += panStep
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dy -= panStep
	}
	if rl.IsKeyDown(rl.KeyDown) {
		dy += panStep
	}
	if dx != 0 || dy != 0 {
		g.camera.Pan(dx, dy)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
