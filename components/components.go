// Package components defines the ECS components carried by every dot.
package components

import "github.com/Pravusnex/DOTS/geom"

// Position is a dot's world position in pixels.
type Position struct {
	geom.Vec2
}

// Velocity is a dot's velocity in pixels per second.
type Velocity struct {
	geom.Vec2
}

// Tint is a dot's display color.
type Tint struct {
	R, G, B uint8
}

// SplitState tracks the delayed-split timer armed by a wall collision.
// Normal holds the inward unit normal recorded at the collision and is
// set only while Pending; it is cleared when the split executes or is
// cancelled for lack of capacity.
type SplitState struct {
	Pending  bool
	Deadline float64 // simulation seconds
	Normal   geom.Vec2
}
