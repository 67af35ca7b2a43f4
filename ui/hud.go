package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the top-left overlay shows each frame.
type HUDData struct {
	Population   int
	Limit        int
	Shape        string
	Paused       bool
	CapReached   bool
	Tick         int32
	FPS          int32
	StatusColor  rl.Color
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the always-on text overlay.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("DOTS", 10, 10, 20, rl.White)
	rl.DrawText(
		fmt.Sprintf("Dots: %d / %d | Shape: %s", data.Population, data.Limit, data.Shape),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS),
		10, 55, 16, rl.LightGray,
	)
	rl.DrawText(statusLine(data), 10, 75, 16, data.StatusColor)
}

func statusLine(data HUDData) string {
	switch {
	case data.Paused && data.CapReached:
		return "PAUSED (limit reached, SPACE doubles it)"
	case data.Paused:
		return "PAUSED"
	default:
		return "Running"
	}
}

// DrawControls renders the key legend centered along the bottom edge.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, legend string) {
	x := (screenWidth - rl.MeasureText(legend, 14)) / 2
	if x < 10 {
		x = 10
	}
	rl.DrawText(legend, x, screenHeight-25, 14, rl.Gray)
}
