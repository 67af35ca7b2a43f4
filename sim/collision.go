package sim

import (
	"math"

	"github.com/Pravusnex/DOTS/geom"
)

// HitPhase identifies which detection phase resolved a collision.
type HitPhase uint8

const (
	HitCircle HitPhase = iota
	HitPredictive
	HitSafetyNet
)

// Hit describes one resolved collision.
type Hit struct {
	Normal geom.Vec2 // inward unit normal at the contact
	Phase  HitPhase
}

// Engine resolves dot-versus-boundary collisions against one boundary.
// The collision surface is the visual boundary shifted inward by half
// the line thickness, plus the shape's manual offset, plus the dot
// radius, so a resolved dot's circle never crosses the drawn line.
type Engine struct {
	b *Boundary
	// inset shifts the polygon collision line inward from each edge
	// line, measured along the outward normal. May be negative when a
	// shape's manual offset expands the surface past the drawn edge.
	inset float64
	// effectiveRadius is the circle-case collision distance from center.
	effectiveRadius float64
	// proximitySq bounds the safety-net edge scan around the dot.
	proximitySq float64
}

// NewEngine builds a collision engine for one boundary and dot radius.
func NewEngine(b *Boundary, dotRadius float64) *Engine {
	eff := (b.Radius - b.Thickness/2) - b.Offset - dotRadius
	if eff < 0 {
		eff = 0
	}
	prox := dotRadius * 3
	return &Engine{
		b:               b,
		inset:           b.Thickness/2 + b.Offset + dotRadius,
		effectiveRadius: eff,
		proximitySq:     prox * prox,
	}
}

// DetectAndResolve checks whether the dot hits the boundary within dt.
// On a hit it corrects pos, reflects vel, and reports the inward contact
// normal; otherwise pos and vel are untouched and the caller applies
// plain movement. The engine never fails: every degenerate input has a
// fallback.
func (e *Engine) DetectAndResolve(pos, vel *geom.Vec2, dt float64) (Hit, bool) {
	if e.b.Kind == KindCircle {
		return e.resolveCircle(pos, vel, dt)
	}
	if hit, ok := e.resolvePredictive(pos, vel, dt); ok {
		return hit, true
	}
	return e.resolveSafetyNet(pos, vel, dt)
}

// resolveCircle bounces the dot off the inside of the circle. The check
// runs against the predicted next position so the dot never visibly
// crosses the rim.
func (e *Engine) resolveCircle(pos, vel *geom.Vec2, dt float64) (Hit, bool) {
	next := pos.Add(vel.Scale(dt))
	toCenter := e.b.Center.Sub(next)
	distSq := toCenter.LengthSquared()
	if distSq < e.effectiveRadius*e.effectiveRadius-geom.Epsilon {
		return Hit{}, false
	}

	inward := geom.Vec2{X: 0, Y: 1}
	if dist := math.Sqrt(distSq); dist > geom.Epsilon {
		inward = toCenter.Scale(1 / dist)
	}
	*pos = e.b.Center.Sub(inward.Scale(e.effectiveRadius - geom.Epsilon))
	if vel.LengthSquared() > geom.Epsilon {
		*vel = vel.Reflect(inward.Scale(-1))
	}
	return Hit{Normal: inward, Phase: HitCircle}, true
}

// resolvePredictive sweeps the dot's motion against every edge's offset
// collision line and resolves the earliest crossing within dt.
func (e *Engine) resolvePredictive(pos, vel *geom.Vec2, dt float64) (Hit, bool) {
	bestT := math.Inf(1)
	bestIdx := -1
	for i := range e.b.Edges {
		ed := &e.b.Edges[i]

		closest := geom.ClosestPointOnSegment(*pos, ed.Start, ed.End)
		if vel.Dot(closest.Sub(*pos)) <= -geom.Epsilon {
			continue // wall is behind the motion
		}
		vn := vel.Dot(ed.Normal)
		if vn <= geom.Epsilon {
			continue // not moving into this wall
		}

		// The collision line sits at signed distance -inset from the
		// edge line; interior positions are negative.
		sigma := pos.Sub(ed.Start).Dot(ed.Normal)
		t := (-e.inset - sigma) / vn
		if t < -geom.Epsilon || t > dt || t >= bestT {
			continue
		}
		hitPoint := pos.Add(vel.Scale(t))
		proj := hitPoint.Sub(ed.Start).Dot(ed.Dir)
		if proj < -geom.Epsilon || proj > ed.LenSq+geom.Epsilon {
			continue // crossing lies off the finite segment
		}
		bestT = t
		bestIdx = i
	}
	if bestIdx < 0 {
		return Hit{}, false
	}

	ed := &e.b.Edges[bestIdx]
	*pos = pos.Add(vel.Scale(bestT))
	if overlap := pos.Sub(ed.Start).Dot(ed.Normal) + e.inset; overlap > -geom.Epsilon {
		*pos = pos.Sub(ed.Normal.Scale(overlap + geom.Epsilon))
	}
	if vel.LengthSquared() > geom.Epsilon {
		*vel = vel.Reflect(ed.Normal)
	}
	return Hit{Normal: ed.Normal.Scale(-1), Phase: HitPredictive}, true
}

// resolveSafetyNet catches crossings the sweep missed, such as acute
// corners where the dot slips past the earliest edge's finite segment.
// It inspects the already-moved next position and pushes the dot back
// out of the most-overlapped nearby edge.
func (e *Engine) resolveSafetyNet(pos, vel *geom.Vec2, dt float64) (Hit, bool) {
	next := pos.Add(vel.Scale(dt))
	maxOverlap := math.Inf(-1)
	bestIdx := -1
	for i := range e.b.Edges {
		ed := &e.b.Edges[i]
		closest := geom.ClosestPointOnSegment(next, ed.Start, ed.End)
		if next.DistanceSquared(closest) > e.proximitySq {
			continue
		}
		if overlap := next.Sub(ed.Start).Dot(ed.Normal) + e.inset; overlap > maxOverlap {
			maxOverlap = overlap
			bestIdx = i
		}
	}
	if bestIdx < 0 || maxOverlap <= geom.Epsilon {
		return Hit{}, false
	}
	ed := &e.b.Edges[bestIdx]
	if vel.Dot(ed.Normal) <= geom.Epsilon {
		return Hit{}, false // already recovering inward; let it re-enter
	}

	*pos = next.Sub(ed.Normal.Scale(maxOverlap + geom.Epsilon))
	if vel.LengthSquared() > geom.Epsilon {
		*vel = vel.Reflect(ed.Normal)
	}
	return Hit{Normal: ed.Normal.Scale(-1), Phase: HitSafetyNet}, true
}

// MaxOverlap reports how far p sits outside the effective collision
// surface: positive values are violations, negative values are safely
// inside. Polygon edges are only measured within the safety-net
// proximity radius, so positions far outside every edge are not
// meaningful; callers use this to assert containment right after a tick.
func (e *Engine) MaxOverlap(p geom.Vec2) float64 {
	if e.b.Kind == KindCircle {
		return p.Distance(e.b.Center) - e.effectiveRadius
	}
	maxOverlap := math.Inf(-1)
	for i := range e.b.Edges {
		ed := &e.b.Edges[i]
		closest := geom.ClosestPointOnSegment(p, ed.Start, ed.End)
		if p.DistanceSquared(closest) > e.proximitySq {
			continue
		}
		if overlap := p.Sub(ed.Start).Dot(ed.Normal) + e.inset; overlap > maxOverlap {
			maxOverlap = overlap
		}
	}
	return maxOverlap
}
