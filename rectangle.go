package prim

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// minRectSide is the smallest side length a rectangle may have.
const minRectSide = 5.0

// Rectangle is a filled rectangle defined by center, side lengths, and a
// rotation angle in degrees.
type Rectangle struct {
	Center Point
	W, H   float64
	Angle  float64
}

// randomRectangle generates a rectangle with uniformly random center,
// sides, and rotation, then mutates it once.
func randomRectangle(rng *rand.Rand, width, height int) *Rectangle {
	limit := maxDim(width, height) / 2
	if limit < minRectSide {
		limit = minRectSide
	}
	r := &Rectangle{
		Center: randomPoint(rng, width, height),
		W:      minRectSide + rng.Float64()*(limit-minRectSide),
		H:      minRectSide + rng.Float64()*(limit-minRectSide),
		Angle:  rng.Float64() * 180,
	}
	r.Mutate(rng, width, height)
	return r
}

// Kind returns ShapeRectangle.
func (r *Rectangle) Kind() ShapeKind { return ShapeRectangle }

// Clone returns an independent copy.
func (r *Rectangle) Clone() Shape {
	c := *r
	return &c
}

// Mutate perturbs one of: center, width, height, or rotation.
func (r *Rectangle) Mutate(rng *rand.Rand, width, height int) {
	limit := maxDim(width, height)
	switch rng.IntN(4) {
	case 0:
		r.Center = jitterPoint(rng, r.Center, width, height)
	case 1:
		r.W = clampF(r.W+rng.NormFloat64()*pointSigma, minRectSide, limit)
	case 2:
		r.H = clampF(r.H+rng.NormFloat64()*pointSigma, minRectSide, limit)
	case 3:
		r.Angle = rng.Float64() * 180
	}
}

// corners returns the four rotated corner points in drawing order.
func (r *Rectangle) corners() [4]Point {
	rad := r.Angle * math.Pi / 180
	hw, hh := r.W/2, r.H/2
	return [4]Point{
		Pt(-hw, -hh).Rotate(rad).Add(r.Center),
		Pt(hw, -hh).Rotate(rad).Add(r.Center),
		Pt(hw, hh).Rotate(rad).Add(r.Center),
		Pt(-hw, hh).Rotate(rad).Add(r.Center),
	}
}

// Outline returns the closed quadrilateral path of the rotated rectangle.
func (r *Rectangle) Outline() *Path {
	c := r.corners()
	p := NewPath()
	p.MoveTo(c[0].X, c[0].Y)
	p.LineTo(c[1].X, c[1].Y)
	p.LineTo(c[2].X, c[2].Y)
	p.LineTo(c[3].X, c[3].Y)
	p.Close()
	return p
}

// Rasterize fills the rotated rectangle into a coverage map.
func (r *Rectangle) Rasterize(width, height int) *Coverage {
	return fillPath(r.Outline(), width, height)
}

// SVG renders the rectangle as a rect element with a rotate transform.
func (r *Rectangle) SVG(c RGBA) string {
	return fmt.Sprintf(
		`<rect fill="%s" fill-opacity="%.5f" x="%.2f" y="%.2f" width="%.2f" height="%.2f" transform="rotate(%.2f %.2f %.2f)" />`,
		c.hexString(), c.A,
		r.Center.X-r.W/2, r.Center.Y-r.H/2,
		r.W, r.H,
		r.Angle, r.Center.X, r.Center.Y,
	)
}
