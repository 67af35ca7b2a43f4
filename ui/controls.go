package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsState is the simulation state the panel reflects.
type ControlsState struct {
	Paused bool
	// Shapes is the semicolon-separated dropdown list, e.g. "circle;square".
	Shapes string
}

// ControlsAction reports what the user clicked this frame.
type ControlsAction struct {
	TogglePause  bool
	Reset        bool
	ShapeChanged bool
	ShapeIndex   int
}

// ControlsPanel renders the interactive controls: pause/resume, reset,
// and the boundary shape dropdown.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32

	shapeActive   int32
	shapeEditMode bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetShape syncs the dropdown selection with the active shape,
// e.g. after a keyboard-driven reset.
func (c *ControlsPanel) SetShape(index int) {
	c.shapeActive = int32(index)
}

// Shape returns the currently selected shape index.
func (c *ControlsPanel) Shape() int {
	return int(c.shapeActive)
}

// Draw renders the panel and returns any actions triggered this frame.
func (c *ControlsPanel) Draw(state ControlsState) ControlsAction {
	var action ControlsAction

	t := c.renderer.Theme
	const rowHeight = 24

	height := 2*t.Pad + t.TitleSize + 8 + 2*rowHeight + 8
	pen := c.renderer.Panel(c.x, c.y, c.width, height)
	pen.Title("Controls")

	x := float32(pen.X())
	y := float32(pen.Y())
	innerWidth := float32(pen.Width())

	// Widgets under an open dropdown must not swallow its clicks.
	if c.shapeEditMode {
		gui.Lock()
	}

	buttonWidth := (innerWidth - 6) / 2
	pauseLabel := "Pause"
	if state.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.NewRectangle(x, y, buttonWidth, rowHeight), pauseLabel) {
		action.TogglePause = true
	}
	if gui.Button(rl.NewRectangle(x+buttonWidth+6, y, buttonWidth, rowHeight), "Reset") {
		action.Reset = true
	}
	y += rowHeight + 4

	gui.Unlock()

	// Dropdown last so its expanded list draws over anything below.
	prev := c.shapeActive
	if gui.DropdownBox(rl.NewRectangle(x, y, innerWidth, rowHeight), state.Shapes, &c.shapeActive, c.shapeEditMode) {
		c.shapeEditMode = !c.shapeEditMode
		if !c.shapeEditMode && c.shapeActive != prev {
			action.ShapeChanged = true
			action.ShapeIndex = int(c.shapeActive)
		}
	}

	return action
}
