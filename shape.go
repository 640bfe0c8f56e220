package prim

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// ShapeKind selects which geometric primitive the optimizer proposes.
type ShapeKind uint8

// Supported shape kinds. ShapeMixed picks one of the concrete kinds at
// random each round.
const (
	ShapeTriangle ShapeKind = iota
	ShapeRectangle
	ShapeEllipse
	ShapeQuadratic
	ShapeCubic
	ShapeMixed
)

// concreteKinds is the number of kinds a mixed-mode round can choose from.
const concreteKinds = 5

// String returns the kind's name as accepted by ParseShapeKind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeTriangle:
		return "TRIANGLE"
	case ShapeRectangle:
		return "RECTANGLE"
	case ShapeEllipse:
		return "ELLIPSE"
	case ShapeQuadratic:
		return "QUADRATIC"
	case ShapeCubic:
		return "CUBIC"
	case ShapeMixed:
		return "MIXED"
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// ParseShapeKind parses a shape kind name, case-insensitively.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToUpper(s) {
	case "TRIANGLE":
		return ShapeTriangle, nil
	case "RECTANGLE":
		return ShapeRectangle, nil
	case "ELLIPSE":
		return ShapeEllipse, nil
	case "QUADRATIC":
		return ShapeQuadratic, nil
	case "CUBIC":
		return ShapeCubic, nil
	case "MIXED":
		return ShapeMixed, nil
	}
	return 0, fmt.Errorf("prim: unknown shape kind %q", s)
}

// Shape is one geometric primitive. Implementations are mutable while a
// candidate is being refined and must not be modified after commit.
//
// Mutate perturbs exactly one geometric degree of freedom, chosen uniformly
// at random among the shape's parameters, then re-clamps to canvas bounds.
// Outline emits the resolution-independent vector path of the geometry.
// Rasterize produces the anti-aliased coverage map clipped to the canvas;
// a degenerate shape yields an empty map.
// SVG renders the shape as an SVG element with the given fill or stroke
// color (alpha taken from the color's A component).
type Shape interface {
	Kind() ShapeKind
	Clone() Shape
	Mutate(rng *rand.Rand, width, height int)
	Outline() *Path
	Rasterize(width, height int) *Coverage
	SVG(c RGBA) string
}

// RandomShape produces a new shape of the given concrete kind with geometry
// drawn uniformly within the canvas bounds. kind must not be ShapeMixed;
// mixed-mode rounds resolve the concrete kind before calling this.
func RandomShape(kind ShapeKind, rng *rand.Rand, width, height int) Shape {
	switch kind {
	case ShapeRectangle:
		return randomRectangle(rng, width, height)
	case ShapeEllipse:
		return randomEllipse(rng, width, height)
	case ShapeQuadratic:
		return randomQuadratic(rng, width, height)
	case ShapeCubic:
		return randomCubic(rng, width, height)
	default:
		return randomTriangle(rng, width, height)
	}
}

// Geometry constraints shared by the shape variants.
const (
	// borderExtension is how far outside the canvas randomized control
	// points may start.
	borderExtension = 6

	// mutationSlack is how far outside the canvas a mutated point may land
	// before clamping.
	mutationSlack = 5

	// pointSigma is the standard deviation of the normal jitter applied to
	// a control point by one mutation.
	pointSigma = 16

	// maxMutationAttempts bounds the validity-restoring loop inside Mutate.
	maxMutationAttempts = 100000
)

// randomPoint returns a point uniformly distributed over the canvas.
func randomPoint(rng *rand.Rand, width, height int) Point {
	return Pt(rng.Float64()*float64(width), rng.Float64()*float64(height))
}

// randomPointNear returns a point uniformly distributed within the square
// of the given radius around p.
func randomPointNear(rng *rand.Rand, p Point, radius float64) Point {
	return Pt(
		p.X+(rng.Float64()*2-1)*radius,
		p.Y+(rng.Float64()*2-1)*radius,
	)
}

// jitterPoint perturbs p by a normal offset and clamps it to the canvas
// bounds extended by mutationSlack.
func jitterPoint(rng *rand.Rand, p Point, width, height int) Point {
	return Pt(
		clampF(p.X+rng.NormFloat64()*pointSigma, -mutationSlack, float64(width)+mutationSlack),
		clampF(p.Y+rng.NormFloat64()*pointSigma, -mutationSlack, float64(height)+mutationSlack),
	)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxDim(width, height int) float64 {
	if width > height {
		return float64(width)
	}
	return float64(height)
}
