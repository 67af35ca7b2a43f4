// Package camera maps between world and screen coordinates for the
// windowed shell. The view is a center point plus a zoom factor,
// clamped so the visible rectangle never leaves the world.
package camera

// Camera is the view transform. Construct with New; the zero value is
// not usable.
type Camera struct {
	centerX, centerY float32
	zoom             float32

	viewW, viewH   float32
	worldW, worldH float32

	// zoomFloor is the smallest zoom at which the visible rectangle
	// still fits inside the world; below it the clamp interval inverts.
	zoomFloor float32
}

const zoomCeil = 4.0

// New returns a camera centered on the world at 1:1 zoom, or zoomed
// out just enough to fit when the viewport outsizes the world.
func New(viewW, viewH, worldW, worldH float32) *Camera {
	c := &Camera{
		centerX: worldW / 2,
		centerY: worldH / 2,
		viewW:   viewW,
		viewH:   viewH,
		worldW:  worldW,
		worldH:  worldH,
	}
	c.zoomFloor = max(viewW/worldW, viewH/worldH)
	c.zoom = max(1, c.zoomFloor)
	return c
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float32 { return c.zoom }

// WorldToScreen maps a world point to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float32) (float32, float32) {
	return c.viewW/2 + (wx-c.centerX)*c.zoom,
		c.viewH/2 + (wy-c.centerY)*c.zoom
}

// ScreenToWorld maps a screen pixel to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (float32, float32) {
	return c.centerX + (sx-c.viewW/2)/c.zoom,
		c.centerY + (sy-c.viewH/2)/c.zoom
}

// IsVisible reports whether a circle could intersect the viewport.
// Conservative; used for render culling, never for simulation.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	hw := c.viewW/(2*c.zoom) + radius
	hh := c.viewH/(2*c.zoom) + radius
	dx := wx - c.centerX
	if dx < 0 {
		dx = -dx
	}
	dy := wy - c.centerY
	if dy < 0 {
		dy = -dy
	}
	return dx <= hw && dy <= hh
}

// Pan moves the view by a delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.centerX += dx / c.zoom
	c.centerY += dy / c.zoom
	c.clamp()
}

// SetZoom sets an absolute zoom factor within the allowed range.
func (c *Camera) SetZoom(z float32) {
	if z < c.zoomFloor {
		z = c.zoomFloor
	}
	if z > zoomCeil {
		z = zoomCeil
	}
	c.zoom = z
	// Zooming out can expose space past an edge.
	c.clamp()
}

// ZoomBy scales the current zoom.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.zoom * factor)
}

// Resize adapts the view to a new viewport size.
func (c *Camera) Resize(viewW, viewH float32) {
	if viewW == c.viewW && viewH == c.viewH {
		return
	}
	c.viewW, c.viewH = viewW, viewH
	c.zoomFloor = max(viewW/c.worldW, viewH/c.worldH)
	c.zoom = max(c.zoom, c.zoomFloor)
	c.clamp()
}

// Reset recenters the view at 1:1 zoom.
func (c *Camera) Reset() {
	c.centerX = c.worldW / 2
	c.centerY = c.worldH / 2
	c.SetZoom(1)
}

// clamp keeps the visible rectangle inside the world.
func (c *Camera) clamp() {
	hw := c.viewW / (2 * c.zoom)
	hh := c.viewH / (2 * c.zoom)
	c.centerX = clampf(c.centerX, hw, c.worldW-hw)
	c.centerY = clampf(c.centerY, hh, c.worldH-hh)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
