package camera

import "testing"

const eps = 1e-3

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestNewCentersWorld(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	if got := c.Zoom(); got != 1 {
		t.Fatalf("Zoom() = %v, want 1", got)
	}
	sx, sy := c.WorldToScreen(800, 600)
	if !approx(sx, 400) || !approx(sy, 300) {
		t.Errorf("world center maps to (%v, %v), want (400, 300)", sx, sy)
	}
}

func TestNewFitsSmallWorld(t *testing.T) {
	// A 400x400 world inside an 800x600 viewport needs zoom >= 2 to
	// keep the visible rectangle inside the world.
	c := New(800, 600, 400, 400)
	if got := c.Zoom(); !approx(got, 2) {
		t.Fatalf("Zoom() = %v, want 2", got)
	}
}

func TestRoundTrip(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	c.Pan(137, -42)
	c.SetZoom(1.7)

	points := [][2]float32{
		{400, 300},
		{0, 0},
		{799, 599},
		{123.5, 456.25},
	}
	for _, p := range points {
		wx, wy := c.ScreenToWorld(p[0], p[1])
		sx, sy := c.WorldToScreen(wx, wy)
		if !approx(sx, p[0]) || !approx(sy, p[1]) {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", p[0], p[1], sx, sy)
		}
	}
}

func TestPanClampsAtEdges(t *testing.T) {
	c := New(800, 600, 1600, 1200)

	c.Pan(-1e6, -1e6)
	wx, wy := c.ScreenToWorld(0, 0)
	if !approx(wx, 0) || !approx(wy, 0) {
		t.Errorf("after pan to top-left corner ScreenToWorld(0,0) = (%v, %v), want (0, 0)", wx, wy)
	}

	c.Pan(1e6, 1e6)
	wx, wy = c.ScreenToWorld(800, 600)
	if !approx(wx, 1600) || !approx(wy, 1200) {
		t.Errorf("after pan to bottom-right corner ScreenToWorld(800,600) = (%v, %v), want (1600, 1200)", wx, wy)
	}
}

func TestZoomFloor(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	c.SetZoom(0.01)
	if got := c.Zoom(); !approx(got, 0.5) {
		t.Fatalf("Zoom() = %v, want floor 0.5", got)
	}
	// At the floor the whole world is exactly in view.
	wx, wy := c.ScreenToWorld(0, 0)
	if !approx(wx, 0) || !approx(wy, 0) {
		t.Errorf("top-left = (%v, %v), want (0, 0)", wx, wy)
	}
	wx, wy = c.ScreenToWorld(800, 600)
	if !approx(wx, 1600) || !approx(wy, 1200) {
		t.Errorf("bottom-right = (%v, %v), want (1600, 1200)", wx, wy)
	}
}

func TestZoomCeil(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	c.SetZoom(100)
	if got := c.Zoom(); !approx(got, zoomCeil) {
		t.Errorf("Zoom() = %v, want ceiling %v", got, float32(zoomCeil))
	}
}

func TestZoomByAccumulates(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	c.ZoomBy(2)
	c.ZoomBy(2)
	if got := c.Zoom(); !approx(got, 4) {
		t.Fatalf("Zoom() after two doublings = %v, want 4", got)
	}
	c.ZoomBy(2)
	if got := c.Zoom(); !approx(got, 4) {
		t.Errorf("Zoom() = %v, want to stay at ceiling 4", got)
	}
}

func TestIsVisible(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	tests := []struct {
		name    string
		x, y, r float32
		want    bool
	}{
		{"center", 800, 600, 5, true},
		{"inside view edge", 410, 310, 5, true},
		{"outside view, radius reaches in", 1205, 600, 10, true},
		{"far outside", 1500, 1100, 5, false},
	}
	for _, tt := range tests {
		if got := c.IsVisible(tt.x, tt.y, tt.r); got != tt.want {
			t.Errorf("%s: IsVisible(%v, %v, %v) = %v, want %v", tt.name, tt.x, tt.y, tt.r, got, tt.want)
		}
	}
}

func TestResizeRaisesZoomFloor(t *testing.T) {
	c := New(400, 300, 800, 600)
	if got := c.Zoom(); !approx(got, 1) {
		t.Fatalf("initial Zoom() = %v, want 1", got)
	}
	// Doubling the viewport over the same world forces zoom up to 2.
	c.Resize(1600, 1200)
	if got := c.Zoom(); !approx(got, 2) {
		t.Errorf("Zoom() after resize = %v, want 2", got)
	}
}

func TestResetRestoresView(t *testing.T) {
	c := New(800, 600, 1600, 1200)
	c.Pan(300, 200)
	c.SetZoom(3)
	c.Reset()

	if got := c.Zoom(); !approx(got, 1) {
		t.Errorf("Zoom() after reset = %v, want 1", got)
	}
	sx, sy := c.WorldToScreen(800, 600)
	if !approx(sx, 400) || !approx(sy, 300) {
		t.Errorf("world center maps to (%v, %v) after reset, want (400, 300)", sx, sy)
	}
}
