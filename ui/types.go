// Package ui draws the HUD and overlay panels for the windowed shell.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme groups the colors and metrics shared by every panel.
type Theme struct {
	Panel      rl.Color
	Border     rl.Color
	Heading    rl.Color
	Text       rl.Color
	Muted      rl.Color
	GaugeTrack rl.Color
	GaugeFill  rl.Color

	Pad      int32 // panel inner padding
	Row      int32 // vertical advance per content line
	ValueCol int32 // x offset of the value column within a row
	GaugeH   int32 // gauge bar height

	TextSize    int32
	HeadingSize int32
	TitleSize   int32
}

// DarkTheme is the styling used by all built-in panels.
func DarkTheme() Theme {
	return Theme{
		Panel:       rl.Color{R: 16, G: 18, B: 24, A: 235},
		Border:      rl.Color{R: 74, G: 82, B: 96, A: 255},
		Heading:     rl.Color{R: 242, G: 201, B: 76, A: 255},
		Text:        rl.RayWhite,
		Muted:       rl.Color{R: 168, G: 174, B: 184, A: 255},
		GaugeTrack:  rl.Color{R: 38, G: 42, B: 52, A: 255},
		GaugeFill:   rl.Color{R: 86, G: 156, B: 214, A: 255},
		Pad:         10,
		Row:         16,
		ValueCol:    60,
		GaugeH:      12,
		TextSize:    12,
		HeadingSize: 14,
		TitleSize:   16,
	}
}
