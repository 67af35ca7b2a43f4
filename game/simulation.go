package game

import (
	"github.com/Pravusnex/DOTS/geom"
)

// updateSpawn emits a dot from the boundary center when the spawn interval
// has elapsed and the population is below the limit. The interval timer only
// resets on an actual spawn, so a full arena spawns immediately once room
// opens up.
func (g *Game) updateSpawn() {
	if g.firstUnpausePending {
		return
	}
	if g.simTime-g.lastSpawn < g.cfg.Simulation.SpawnInterval {
		return
	}
	if g.population >= g.dotLimit {
		return
	}

	g.spawnDot(g.boundary.Center, g.randomDirection().Scale(g.cfg.Simulation.DotSpeed))
	g.lastSpawn = g.simTime
	g.collector.RecordSpawn()
}

// updatePhysics advances every dot by dt, resolving boundary collisions.
// A dot either collides or moves this tick, never both: the collision
// resolution already placed it on the safe side of the wall.
func (g *Game) updatePhysics(dt float64) {
	query := g.dotFilter.Query()
	for query.Next() {
		pos, vel, _, split := query.Get()

		hit, collided := g.engine.DetectAndResolve(&pos.Vec2, &vel.Vec2, dt)
		if collided {
			g.collector.RecordCollision(hit.Phase)
			if !split.Pending {
				split.Pending = true
				split.Deadline = g.simTime + g.cfg.Simulation.SplitDelay
				split.Normal = markNormal(hit.Normal)
			}
			continue
		}

		pos.Vec2 = pos.Vec2.Add(vel.Vec2.Scale(dt))
	}
}

// markNormal normalizes a hit normal for storage, falling back to straight
// up for degenerate hits.
func markNormal(n geom.Vec2) geom.Vec2 {
	n = n.Normalize()
	if n.IsZero() {
		return geom.Vec2{X: 0, Y: -1}
	}
	return n
}
