// Package geom provides the 2D vector and segment math used by the
// simulation. Coordinates follow screen convention: x grows right,
// y grows down.
package geom

import "math"

// Epsilon is the tolerance used for physics comparisons throughout the
// simulation (containment checks, degenerate-vector guards, nudges).
const Epsilon = 1e-6

// Vec2 is a 2D vector with value semantics.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the unit vector at the given angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of v.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// DistanceSquared returns the squared distance between v and o.
func (v Vec2) DistanceSquared(o Vec2) float64 {
	return v.Sub(o).LengthSquared()
}

// Normalize returns the unit vector in the direction of v. Vectors with
// near-zero length normalize to the zero vector; callers that need a
// direction must supply their own fallback.
func (v Vec2) Normalize() Vec2 {
	lsq := v.LengthSquared()
	if lsq < Epsilon*Epsilon {
		return Vec2{}
	}
	inv := 1.0 / math.Sqrt(lsq)
	return Vec2{X: v.X * inv, Y: v.Y * inv}
}

// Angle returns the angle of v in radians, in (-pi, pi].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate returns v rotated by rad radians. With y growing down, a
// positive angle rotates clockwise on screen.
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Reflect mirrors v about the plane with unit normal n:
// v' = v - 2(v.n)n. The caller guarantees n is unit length.
func (v Vec2) Reflect(n Vec2) Vec2 {
	d := 2 * v.Dot(n)
	return Vec2{X: v.X - d*n.X, Y: v.Y - d*n.Y}
}

// IsZero reports whether v has near-zero magnitude.
func (v Vec2) IsZero() bool {
	return v.LengthSquared() < Epsilon*Epsilon
}

// ClosestPointOnSegment returns the point on segment ab closest to p.
// Degenerate segments collapse to a.
func ClosestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	lsq := ab.LengthSquared()
	if lsq < 1e-9 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lsq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}
