package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/Pravusnex/DOTS/components"
	"github.com/Pravusnex/DOTS/geom"
)

// birthInfo queues a child dot for creation after the split query finishes.
// Structural ECS changes during iteration would invalidate the query.
type birthInfo struct {
	pos components.Position
	vel components.Velocity
}

// collectSplits walks the dots with an expired split deadline and queues the
// resulting births and deaths. A split that would push the population past
// the limit is cancelled outright: the parent keeps living and is not
// re-armed.
func (g *Game) collectSplits() ([]birthInfo, []ecs.Entity) {
	var births []birthInfo
	var deaths []ecs.Entity

	cfg := g.cfg
	query := g.dotFilter.Query()
	for query.Next() {
		pos, _, _, split := query.Get()

		if !split.Pending || g.simTime < split.Deadline {
			continue
		}

		// Parent dies, two children appear: net +1.
		if g.population+len(births)-len(deaths) >= g.dotLimit {
			split.Pending = false
			split.Normal = geom.Vec2{}
			g.collector.RecordSplitCancel()
			continue
		}

		normal := split.Normal
		if normal.IsZero() {
			normal = g.fallbackNormal(pos.Vec2)
		}

		for i := 0; i < 2; i++ {
			angle := normal.Angle() + (g.rng.Float64()*2-1)*cfg.Derived.SplitHalfRange
			vel := geom.FromAngle(angle).Scale(cfg.Simulation.DotSpeed)
			childPos := pos.Vec2.Add(vel.Normalize().Scale(cfg.Simulation.DotRadius * 1.1))
			births = append(births, birthInfo{
				pos: components.Position{Vec2: childPos},
				vel: components.Velocity{Vec2: vel},
			})
		}

		deaths = append(deaths, query.Entity())
		split.Pending = false
		split.Normal = geom.Vec2{}
		g.collector.RecordSplit()
	}

	return births, deaths
}

// applySplits commits the queued structural changes.
func (g *Game) applySplits(births []birthInfo, deaths []ecs.Entity) {
	for _, e := range deaths {
		g.world.RemoveEntity(e)
	}
	g.population -= len(deaths)

	for _, b := range births {
		g.spawnDot(b.pos.Vec2, b.vel.Vec2)
	}
}

// updateCapState pauses the simulation the first time the population
// reaches the limit. Unpausing clears the flag and doubles the limit.
func (g *Game) updateCapState() {
	if g.population >= g.dotLimit && !g.capReached {
		g.capReached = true
		g.paused = true
		slog.Info("population_limit_reached",
			"population", g.population,
			"limit", g.dotLimit,
			"tick", g.tick,
		)
	}
}

// spawnDot creates a dot entity with a random tint and no pending split.
func (g *Game) spawnDot(pos, vel geom.Vec2) {
	p := components.Position{Vec2: pos}
	v := components.Velocity{Vec2: vel}
	tint := g.randomTint()
	split := components.SplitState{}

	g.dotMapper.NewEntity(&p, &v, &tint, &split)
	g.population++
}

// removeAllDots clears the arena. Entities are collected first since
// removal during iteration is unsafe.
func (g *Game) removeAllDots() {
	var all []ecs.Entity
	query := g.dotFilter.Query()
	for query.Next() {
		all = append(all, query.Entity())
	}
	for _, e := range all {
		g.world.RemoveEntity(e)
	}
	g.population = 0
}

// randomTint picks a bright-ish color so dots stay visible on the dark
// background.
func (g *Game) randomTint() components.Tint {
	return components.Tint{
		R: uint8(50 + g.rng.Intn(206)),
		G: uint8(50 + g.rng.Intn(206)),
		B: uint8(50 + g.rng.Intn(206)),
	}
}

// randomDirection returns a uniformly distributed unit vector.
func (g *Game) randomDirection() geom.Vec2 {
	return geom.FromAngle(g.rng.Float64() * 2 * math.Pi)
}

// fallbackNormal points from a dot back toward the boundary center, for
// splits whose stored normal was lost or degenerate.
func (g *Game) fallbackNormal(p geom.Vec2) geom.Vec2 {
	n := g.boundary.Center.Sub(p).Normalize()
	if n.IsZero() {
		return geom.Vec2{X: 0, Y: -1}
	}
	return n
}
