package prim

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// kappa is the control-point factor that makes four cubic Beziers
// approximate a circle arc of 90 degrees.
const kappa = 0.5522847498307936

// radiusSigma is the standard deviation of the normal jitter applied to an
// ellipse radius by one mutation.
const radiusSigma = 5.0

// Ellipse is a filled ellipse defined by center, semi-axes, and a rotation
// angle in degrees.
type Ellipse struct {
	Center Point
	Rx, Ry float64
	Angle  float64
}

// maxEllipseRadius caps semi-axes at a tenth of the larger canvas
// dimension. Larger ellipses smother too much of the image per shape.
// On tiny canvases the cap is at least one pixel so a valid ellipse
// always exists.
func maxEllipseRadius(width, height int) float64 {
	return math.Max(1, maxDim(width, height)*0.1)
}

// randomEllipse generates an ellipse with uniformly random center, radii,
// and rotation, then mutates it once.
func randomEllipse(rng *rand.Rand, width, height int) *Ellipse {
	limit := maxEllipseRadius(width, height)
	e := &Ellipse{
		Center: randomPoint(rng, width, height),
		Rx:     1 + rng.Float64()*(limit-1),
		Ry:     1 + rng.Float64()*(limit-1),
		Angle:  rng.Float64() * 360,
	}
	e.Mutate(rng, width, height)
	return e
}

// Kind returns ShapeEllipse.
func (e *Ellipse) Kind() ShapeKind { return ShapeEllipse }

// Clone returns an independent copy.
func (e *Ellipse) Clone() Shape {
	c := *e
	return &c
}

// Mutate perturbs one of: center, either semi-axis, or rotation.
func (e *Ellipse) Mutate(rng *rand.Rand, width, height int) {
	limit := maxEllipseRadius(width, height)
	switch rng.IntN(4) {
	case 0:
		e.Center = jitterPoint(rng, e.Center, width, height)
	case 1:
		e.Rx = clampF(e.Rx+rng.NormFloat64()*radiusSigma, 1, limit)
	case 2:
		e.Ry = clampF(e.Ry+rng.NormFloat64()*radiusSigma, 1, limit)
	case 3:
		e.Angle = math.Mod(e.Angle+rng.NormFloat64()*radiusSigma+360, 360)
	}
}

// Outline returns the ellipse as four rotated cubic Bezier arcs.
func (e *Ellipse) Outline() *Path {
	rad := e.Angle * math.Pi / 180
	at := func(x, y float64) Point {
		return Pt(x, y).Rotate(rad).Add(e.Center)
	}

	rx, ry := e.Rx, e.Ry
	cx, cy := rx*kappa, ry*kappa

	p := NewPath()
	start := at(rx, 0)
	p.MoveTo(start.X, start.Y)
	arc := func(c1, c2, end Point) {
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
	arc(at(rx, cy), at(cx, ry), at(0, ry))
	arc(at(-cx, ry), at(-rx, cy), at(-rx, 0))
	arc(at(-rx, -cy), at(-cx, -ry), at(0, -ry))
	arc(at(cx, -ry), at(rx, -cy), at(rx, 0))
	p.Close()
	return p
}

// Rasterize fills the rotated ellipse into a coverage map.
func (e *Ellipse) Rasterize(width, height int) *Coverage {
	return fillPath(e.Outline(), width, height)
}

// SVG renders the ellipse as an ellipse element with a rotate transform.
func (e *Ellipse) SVG(c RGBA) string {
	return fmt.Sprintf(
		`<ellipse fill="%s" fill-opacity="%.5f" cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" transform="rotate(%.2f %.2f %.2f)" />`,
		c.hexString(), c.A,
		e.Center.X, e.Center.Y,
		e.Rx, e.Ry,
		e.Angle, e.Center.X, e.Center.Y,
	)
}
