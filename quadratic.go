package prim

import (
	"fmt"
	"math/rand/v2"
)

// Stroke width bounds for the bezier variants.
const (
	minStrokeWidth = 1.0
	maxStrokeWidth = 16.0

	// strokeSigma is the standard deviation of the normal jitter applied
	// to a stroke width by one mutation.
	strokeSigma = 2.0
)

// Quadratic is a stroked quadratic Bezier curve.
type Quadratic struct {
	P0, Ctrl, P1 Point
	Width        float64
}

// randomQuadratic generates a quadratic curve seeded as a small cluster
// around a uniformly random point, then mutated once.
func randomQuadratic(rng *rand.Rand, width, height int) *Quadratic {
	p0 := randomPoint(rng, width, height)
	q := &Quadratic{
		P0:    p0,
		Ctrl:  randomPointNear(rng, p0, borderExtension),
		P1:    randomPointNear(rng, p0, borderExtension),
		Width: minStrokeWidth + rng.Float64()*3,
	}
	q.Mutate(rng, width, height)
	return q
}

// Kind returns ShapeQuadratic.
func (q *Quadratic) Kind() ShapeKind { return ShapeQuadratic }

// Clone returns an independent copy.
func (q *Quadratic) Clone() Shape {
	c := *q
	return &c
}

// valid requires the endpoints to be farther from each other than either
// is from the control point, which rules out folded-back degenerate arcs.
func (q *Quadratic) valid() bool {
	d12 := q.P0.DistanceSquared(q.Ctrl)
	d23 := q.Ctrl.DistanceSquared(q.P1)
	d13 := q.P0.DistanceSquared(q.P1)
	return d13 > d12 && d13 > d23
}

// Mutate perturbs one of the three control points or the stroke width,
// repeating until the curve is valid again.
func (q *Quadratic) Mutate(rng *rand.Rand, width, height int) {
	for i := 0; i < maxMutationAttempts; i++ {
		switch rng.IntN(4) {
		case 0:
			q.P0 = jitterPoint(rng, q.P0, width, height)
		case 1:
			q.Ctrl = jitterPoint(rng, q.Ctrl, width, height)
		case 2:
			q.P1 = jitterPoint(rng, q.P1, width, height)
		case 3:
			q.Width = clampF(q.Width+rng.NormFloat64()*strokeSigma, minStrokeWidth, maxStrokeWidth)
		}
		if q.valid() {
			return
		}
	}
}

// Outline returns the open centerline path of the curve.
func (q *Quadratic) Outline() *Path {
	p := NewPath()
	p.MoveTo(q.P0.X, q.P0.Y)
	p.QuadraticTo(q.Ctrl.X, q.Ctrl.Y, q.P1.X, q.P1.Y)
	return p
}

// Rasterize strokes the curve at its width into a coverage map.
func (q *Quadratic) Rasterize(width, height int) *Coverage {
	return strokePath(q.Outline(), q.Width, width, height)
}

// SVG renders the curve as a stroked path element.
func (q *Quadratic) SVG(c RGBA) string {
	return fmt.Sprintf(
		`<path stroke="%s" stroke-opacity="%.5f" fill="none" stroke-width="%.2f" d="M %.2f %.2f Q %.2f %.2f, %.2f %.2f" />`,
		c.hexString(), c.A, q.Width,
		q.P0.X, q.P0.Y,
		q.Ctrl.X, q.Ctrl.Y,
		q.P1.X, q.P1.Y,
	)
}
