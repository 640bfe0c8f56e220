package prim

import (
	"fmt"
	"math/rand/v2"
)

// minTriangleAngle is the smallest interior angle, in degrees, a triangle
// may have. Thinner triangles rasterize to slivers that contribute almost
// nothing and destabilize the search.
const minTriangleAngle = 15.0

// Triangle is a filled triangle defined by its three vertices.
type Triangle struct {
	P [3]Point
}

// randomTriangle generates a triangle seeded as a small cluster around a
// uniformly random point, then mutated once to spread it out.
func randomTriangle(rng *rand.Rand, width, height int) *Triangle {
	p0 := randomPoint(rng, width, height)
	t := &Triangle{P: [3]Point{
		p0,
		randomPointNear(rng, p0, borderExtension),
		randomPointNear(rng, p0, borderExtension),
	}}
	t.Mutate(rng, width, height)
	return t
}

// Kind returns ShapeTriangle.
func (t *Triangle) Kind() ShapeKind { return ShapeTriangle }

// Clone returns an independent copy.
func (t *Triangle) Clone() Shape {
	c := *t
	return &c
}

// valid reports whether the triangle has three distinct vertices and all
// interior angles of at least minTriangleAngle degrees.
func (t *Triangle) valid() bool {
	p0, p1, p2 := t.P[0], t.P[1], t.P[2]
	if p0 == p1 || p0 == p2 || p1 == p2 {
		return false
	}
	return p0.Angle(p1, p2) > minTriangleAngle &&
		p1.Angle(p2, p0) > minTriangleAngle &&
		p2.Angle(p0, p1) > minTriangleAngle
}

// Mutate jitters one vertex at a time until the triangle is valid again.
func (t *Triangle) Mutate(rng *rand.Rand, width, height int) {
	for i := 0; i < maxMutationAttempts; i++ {
		r := rng.IntN(3)
		t.P[r] = jitterPoint(rng, t.P[r], width, height)
		if t.valid() {
			return
		}
	}
}

// Outline returns the closed triangle path.
func (t *Triangle) Outline() *Path {
	p := NewPath()
	p.MoveTo(t.P[0].X, t.P[0].Y)
	p.LineTo(t.P[1].X, t.P[1].Y)
	p.LineTo(t.P[2].X, t.P[2].Y)
	p.Close()
	return p
}

// Rasterize fills the triangle into a coverage map.
func (t *Triangle) Rasterize(width, height int) *Coverage {
	return fillPath(t.Outline(), width, height)
}

// SVG renders the triangle as a polygon element.
func (t *Triangle) SVG(c RGBA) string {
	return fmt.Sprintf(
		`<polygon fill="%s" fill-opacity="%.5f" points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" />`,
		c.hexString(), c.A,
		t.P[0].X, t.P[0].Y,
		t.P[1].X, t.P[1].Y,
		t.P[2].X, t.P[2].Y,
	)
}
