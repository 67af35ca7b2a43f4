// Package sim implements the bounded region of the dots simulation and
// the collision engine that keeps dots inside it. A boundary is either a
// circle or a closed polygon; the five built-in shapes are Circle,
// Square, Triangle, Parallelogram, and the noise-generated Ameba.
package sim

import (
	"math"

	"github.com/Pravusnex/DOTS/config"
	"github.com/Pravusnex/DOTS/geom"
)

// Kind discriminates the two boundary variants.
type Kind uint8

const (
	KindCircle Kind = iota
	KindPolygon
)

// Edge is one polygon boundary segment with precomputed collision data.
type Edge struct {
	Start  geom.Vec2
	End    geom.Vec2
	Dir    geom.Vec2 // End - Start, unnormalized
	LenSq  float64
	Normal geom.Vec2 // outward unit normal
}

// Boundary is the active region dots are confined to. It is immutable
// after construction; switching shapes builds a fresh Boundary.
type Boundary struct {
	Kind      Kind
	Shape     string
	Center    geom.Vec2
	Radius    float64     // circle only
	Vertices  []geom.Vec2 // polygon only, clockwise in screen coordinates
	Edges     []Edge      // polygon only
	Thickness float64     // visual line thickness
	Offset    float64     // per-shape inward collision offset
}

// NewBoundary builds the boundary for the named shape. Names outside the
// configured shape list fall back to the first configured shape.
func NewBoundary(shape string, cfg *config.Config) *Boundary {
	if _, ok := cfg.Derived.ShapeIndex[shape]; !ok {
		shape = cfg.FallbackShape()
	}

	center := geom.Vec2{X: cfg.Derived.CenterX, Y: cfg.Derived.CenterY}
	extent := cfg.Derived.ExtentRadius
	b := &Boundary{
		Shape:     shape,
		Center:    center,
		Thickness: cfg.Boundary.Thickness,
		Offset:    cfg.OffsetFor(shape),
	}

	switch shape {
	case "Square":
		b.setPolygon(squareVertices(center, extent))
	case "Triangle":
		b.setPolygon(triangleVertices(center, extent))
	case "Parallelogram":
		b.setPolygon(parallelogramVertices(center, extent))
	case "Ameba":
		b.setPolygon(BlobVertices(center, extent, cfg.Blob))
	default:
		// Circle, and the last-resort fallback for a misconfigured
		// shape list whose first entry is not a known constructor.
		b.Kind = KindCircle
		b.Radius = extent
	}
	return b
}

func (b *Boundary) setPolygon(verts []geom.Vec2) {
	b.Kind = KindPolygon
	b.Vertices = verts
	b.Edges = buildEdges(verts)
}

// squareVertices returns a square whose diagonal half-length is extent,
// clockwise from the top-left corner.
func squareVertices(c geom.Vec2, extent float64) []geom.Vec2 {
	half := extent / math.Sqrt2
	return []geom.Vec2{
		{X: c.X - half, Y: c.Y - half},
		{X: c.X + half, Y: c.Y - half},
		{X: c.X + half, Y: c.Y + half},
		{X: c.X - half, Y: c.Y + half},
	}
}

// triangleVertices returns an equilateral triangle with its apex at the
// top, vertices on the extent circle, clockwise.
func triangleVertices(c geom.Vec2, extent float64) []geom.Vec2 {
	up := geom.Vec2{X: 0, Y: -extent}
	return []geom.Vec2{
		c.Add(up),
		c.Add(up.Rotate(2 * math.Pi / 3)),
		c.Add(up.Rotate(4 * math.Pi / 3)),
	}
}

// parallelogramVertices returns a sheared quad: wider than tall, slanted
// by a fixed 30 degree angle, clockwise from the top-left corner.
func parallelogramVertices(c geom.Vec2, extent float64) []geom.Vec2 {
	const widthFactor, heightFactor = 1.6, 1.0
	const slant = 30 * math.Pi / 180

	w := extent * widthFactor
	h := extent * heightFactor
	offsetX := (h / 2) / math.Tan(slant)
	halfW, halfH := w/2, h/2
	return []geom.Vec2{
		{X: c.X - halfW + offsetX, Y: c.Y - halfH},
		{X: c.X + halfW + offsetX, Y: c.Y - halfH},
		{X: c.X + halfW - offsetX, Y: c.Y + halfH},
		{X: c.X - halfW - offsetX, Y: c.Y + halfH},
	}
}

// buildEdges assembles the wrap-around edge list for a vertex loop,
// skipping degenerate near-zero-length edges. Outward normals assume the
// clockwise winding the shape constructors produce.
func buildEdges(verts []geom.Vec2) []Edge {
	edges := make([]Edge, 0, len(verts))
	for i := range verts {
		start := verts[i]
		end := verts[(i+1)%len(verts)]
		dir := end.Sub(start)
		lsq := dir.LengthSquared()
		if lsq < 1e-9 {
			continue
		}
		edges = append(edges, Edge{
			Start:  start,
			End:    end,
			Dir:    dir,
			LenSq:  lsq,
			Normal: outwardNormal(dir),
		})
	}
	return edges
}

// outwardNormal is the 90 degree clockwise rotation of dir in y-down
// screen coordinates, normalized.
func outwardNormal(dir geom.Vec2) geom.Vec2 {
	return geom.Vec2{X: dir.Y, Y: -dir.X}.Normalize()
}
