package prim

import (
	"fmt"
	"math/rand/v2"
)

// Cubic is a stroked cubic Bezier curve.
type Cubic struct {
	P0, C1, C2, P1 Point
	Width          float64
}

// randomCubic generates a cubic curve seeded as a small cluster around a
// uniformly random point, then mutated once.
func randomCubic(rng *rand.Rand, width, height int) *Cubic {
	p0 := randomPoint(rng, width, height)
	c := &Cubic{
		P0:    p0,
		C1:    randomPointNear(rng, p0, borderExtension),
		C2:    randomPointNear(rng, p0, borderExtension),
		P1:    randomPointNear(rng, p0, borderExtension),
		Width: minStrokeWidth + rng.Float64()*3,
	}
	c.Mutate(rng, width, height)
	return c
}

// Kind returns ShapeCubic.
func (c *Cubic) Kind() ShapeKind { return ShapeCubic }

// Clone returns an independent copy.
func (c *Cubic) Clone() Shape {
	q := *c
	return &q
}

// valid requires the endpoints to be farther from each other than either
// endpoint is from its adjacent control point.
func (c *Cubic) valid() bool {
	d01 := c.P0.DistanceSquared(c.C1)
	d21 := c.C2.DistanceSquared(c.P1)
	d := c.P0.DistanceSquared(c.P1)
	return d > d01 && d > d21
}

// Mutate perturbs one of the four control points or the stroke width,
// repeating until the curve is valid again.
func (c *Cubic) Mutate(rng *rand.Rand, width, height int) {
	for i := 0; i < maxMutationAttempts; i++ {
		switch rng.IntN(5) {
		case 0:
			c.P0 = jitterPoint(rng, c.P0, width, height)
		case 1:
			c.C1 = jitterPoint(rng, c.C1, width, height)
		case 2:
			c.C2 = jitterPoint(rng, c.C2, width, height)
		case 3:
			c.P1 = jitterPoint(rng, c.P1, width, height)
		case 4:
			c.Width = clampF(c.Width+rng.NormFloat64()*strokeSigma, minStrokeWidth, maxStrokeWidth)
		}
		if c.valid() {
			return
		}
	}
}

// Outline returns the open centerline path of the curve.
func (c *Cubic) Outline() *Path {
	p := NewPath()
	p.MoveTo(c.P0.X, c.P0.Y)
	p.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P1.X, c.P1.Y)
	return p
}

// Rasterize strokes the curve at its width into a coverage map.
func (c *Cubic) Rasterize(width, height int) *Coverage {
	return strokePath(c.Outline(), c.Width, width, height)
}

// SVG renders the curve as a stroked path element.
func (c *Cubic) SVG(col RGBA) string {
	return fmt.Sprintf(
		`<path stroke="%s" stroke-opacity="%.5f" fill="none" stroke-width="%.2f" d="M %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f" />`,
		col.hexString(), col.A, c.Width,
		c.P0.X, c.P0.Y,
		c.C1.X, c.C1.Y,
		c.C2.X, c.C2.Y,
		c.P1.X, c.P1.Y,
	)
}
