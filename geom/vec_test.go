package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func vecNear(a, b Vec2) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", Vec2{X: 5, Y: 0}, Vec2{X: 1, Y: 0}},
		{"diagonal", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
		{"negative", Vec2{X: 0, Y: -2}, Vec2{X: 0, Y: -1}},
		{"zero stays zero", Vec2{}, Vec2{}},
		{"near zero stays zero", Vec2{X: 1e-9, Y: -1e-9}, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !vecNear(got, tt.want) {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		n    Vec2
		want Vec2
	}{
		{"head on reverses", Vec2{X: 200, Y: 0}, Vec2{X: 1, Y: 0}, Vec2{X: -200, Y: 0}},
		{"grazing keeps tangent", Vec2{X: 100, Y: 50}, Vec2{X: 0, Y: 1}, Vec2{X: 100, Y: -50}},
		{"parallel unchanged", Vec2{X: 100, Y: 0}, Vec2{X: 0, Y: 1}, Vec2{X: 100, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.n)
			if !vecNear(got, tt.want) {
				t.Errorf("Reflect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReflectPreservesSpeed(t *testing.T) {
	v := Vec2{X: 123.4, Y: -56.7}
	normals := []Vec2{
		{X: 1, Y: 0},
		{X: 0, Y: -1},
		FromAngle(2.3),
		FromAngle(-0.7),
	}
	for _, n := range normals {
		r := v.Reflect(n)
		if math.Abs(r.Length()-v.Length()) > 1e-9 {
			t.Errorf("Reflect(%+v) changed speed: %f -> %f", n, v.Length(), r.Length())
		}
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		rad  float64
		want Vec2
	}{
		{"quarter turn", Vec2{X: 1, Y: 0}, math.Pi / 2, Vec2{X: 0, Y: 1}},
		{"half turn", Vec2{X: 1, Y: 0}, math.Pi, Vec2{X: -1, Y: 0}},
		{"full turn", Vec2{X: 3, Y: -4}, 2 * math.Pi, Vec2{X: 3, Y: -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate(tt.rad)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Rotate(%f) = %+v, want %+v", tt.rad, got, tt.want)
			}
		})
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, rad := range []float64{0, 0.5, 1.5, 3.0, -2.2} {
		v := FromAngle(rad)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("FromAngle(%f) not unit length: %f", rad, v.Length())
		}
		if math.Abs(v.Angle()-rad) > 1e-9 {
			t.Errorf("Angle() = %f, want %f", v.Angle(), rad)
		}
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}
	tests := []struct {
		name string
		p    Vec2
		want Vec2
	}{
		{"projects onto middle", Vec2{X: 5, Y: 3}, Vec2{X: 5, Y: 0}},
		{"clamps to start", Vec2{X: -4, Y: 2}, Vec2{X: 0, Y: 0}},
		{"clamps to end", Vec2{X: 15, Y: -1}, Vec2{X: 10, Y: 0}},
		{"on segment", Vec2{X: 7, Y: 0}, Vec2{X: 7, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosestPointOnSegment(tt.p, a, b)
			if !vecNear(got, tt.want) {
				t.Errorf("ClosestPointOnSegment(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClosestPointDegenerateSegment(t *testing.T) {
	a := Vec2{X: 3, Y: 3}
	got := ClosestPointOnSegment(Vec2{X: 100, Y: 100}, a, Vec2{X: 3, Y: 3})
	if !vecNear(got, a) {
		t.Errorf("degenerate segment should return start, got %+v", got)
	}
}
