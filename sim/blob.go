package sim

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"github.com/Pravusnex/DOTS/config"
	"github.com/Pravusnex/DOTS/geom"
)

// BlobVertices generates the Ameba outline: radii sampled around a
// circle and perturbed by 2D simplex noise, floored at a fraction of the
// base radius, then rescaled so the largest radius exactly reaches
// extent. A negative configured seed draws a fresh random seed per
// construction; a fixed seed makes the outline deterministic.
func BlobVertices(center geom.Vec2, extent float64, bc config.BlobConfig) []geom.Vec2 {
	points := bc.Points
	if points < 3 {
		points = 3
	}
	seed := bc.Seed
	if seed < 0 {
		seed = rand.Int63n(10001)
		slog.Info("blob_seed", "seed", seed)
	}
	noise := opensimplex.New(seed)

	base := bc.BaseFactor * extent
	amplitude := bc.AmplitudeFactor * base
	floor := bc.MinRadiusFactor * base

	radii := make([]float64, points)
	maxFactor := 0.0
	for i := 0; i < points; i++ {
		theta := float64(i) / float64(points) * 2 * math.Pi
		n := noise.Eval2(math.Cos(theta)*bc.Frequency, math.Sin(theta)*bc.Frequency)
		r := base + amplitude*n
		if r < floor {
			r = floor
		}
		radii[i] = r
		if f := r / extent; f > maxFactor {
			maxFactor = f
		}
	}
	if maxFactor <= 1e-6 {
		maxFactor = bc.BaseFactor
	}
	scale := 1.0 / maxFactor

	verts := make([]geom.Vec2, points)
	for i, r := range radii {
		r *= scale
		if r > extent {
			r = extent
		}
		theta := float64(i) / float64(points) * 2 * math.Pi
		verts[i] = geom.Vec2{
			X: center.X + r*math.Cos(theta),
			Y: center.Y + r*math.Sin(theta),
		}
	}
	return verts
}
