package prim

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestParseShapeKind(t *testing.T) {
	for k := ShapeTriangle; k <= ShapeMixed; k++ {
		got, err := ParseShapeKind(k.String())
		if err != nil {
			t.Errorf("ParseShapeKind(%q): %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseShapeKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseShapeKind("triangle"); err != nil {
		t.Errorf("lowercase should parse: %v", err)
	}
	if _, err := ParseShapeKind("hexagon"); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestRandomShapeKinds(t *testing.T) {
	rng := testRNG(1)
	kinds := []ShapeKind{ShapeTriangle, ShapeRectangle, ShapeEllipse, ShapeQuadratic, ShapeCubic}
	for _, k := range kinds {
		sh := RandomShape(k, rng, 64, 48)
		if sh.Kind() != k {
			t.Errorf("RandomShape(%v).Kind() = %v", k, sh.Kind())
		}
		cov := sh.Rasterize(64, 48)
		if cov == nil {
			t.Errorf("%v: nil coverage", k)
		}
	}
}

func TestShapeCloneIndependence(t *testing.T) {
	rng := testRNG(2)
	kinds := []ShapeKind{ShapeTriangle, ShapeRectangle, ShapeEllipse, ShapeQuadratic, ShapeCubic}
	for _, k := range kinds {
		orig := RandomShape(k, rng, 64, 48)
		before := orig.SVG(White)

		clone := orig.Clone()
		for i := 0; i < 20; i++ {
			clone.Mutate(rng, 64, 48)
		}
		if got := orig.SVG(White); got != before {
			t.Errorf("%v: mutating the clone changed the original", k)
		}
	}
}

func TestTriangleValidity(t *testing.T) {
	rng := testRNG(3)
	for i := 0; i < 50; i++ {
		tri := randomTriangle(rng, 100, 80)
		if !tri.valid() {
			t.Fatalf("randomTriangle produced invalid triangle %+v", tri.P)
		}
		tri.Mutate(rng, 100, 80)
		if !tri.valid() {
			t.Fatalf("Mutate left invalid triangle %+v", tri.P)
		}
	}

	sliver := &Triangle{P: [3]Point{{0, 0}, {100, 0}, {50, 0.1}}}
	if sliver.valid() {
		t.Error("sliver triangle should be invalid")
	}
	dup := &Triangle{P: [3]Point{{1, 1}, {1, 1}, {5, 5}}}
	if dup.valid() {
		t.Error("triangle with duplicate vertices should be invalid")
	}
}

func TestQuadraticValidity(t *testing.T) {
	rng := testRNG(4)
	for i := 0; i < 50; i++ {
		q := randomQuadratic(rng, 100, 80)
		if !q.valid() {
			t.Fatalf("randomQuadratic produced invalid curve %+v", q)
		}
		if q.Width < minStrokeWidth || q.Width > maxStrokeWidth {
			t.Fatalf("stroke width %v out of range", q.Width)
		}
	}

	folded := &Quadratic{P0: Pt(0, 0), Ctrl: Pt(100, 0), P1: Pt(10, 0), Width: 2}
	if folded.valid() {
		t.Error("folded-back curve should be invalid")
	}
}

func TestCubicValidity(t *testing.T) {
	rng := testRNG(5)
	for i := 0; i < 50; i++ {
		c := randomCubic(rng, 100, 80)
		if !c.valid() {
			t.Fatalf("randomCubic produced invalid curve %+v", c)
		}
	}
}

func TestEllipseRadiusBounds(t *testing.T) {
	rng := testRNG(6)
	limit := maxEllipseRadius(100, 80)
	for i := 0; i < 50; i++ {
		e := randomEllipse(rng, 100, 80)
		if e.Rx < 1 || e.Rx > limit || e.Ry < 1 || e.Ry > limit {
			t.Fatalf("ellipse radii out of bounds: %+v (limit %v)", e, limit)
		}
	}

	// Tiny canvases still admit a valid ellipse.
	if got := maxEllipseRadius(2, 2); got != 1 {
		t.Errorf("maxEllipseRadius(2,2) = %v, want 1", got)
	}
}

func TestRectangleSideBounds(t *testing.T) {
	rng := testRNG(7)
	for i := 0; i < 50; i++ {
		r := randomRectangle(rng, 100, 80)
		if r.W < minRectSide || r.H < minRectSide {
			t.Fatalf("rectangle sides below minimum: %+v", r)
		}
		if r.W > 100 || r.H > 100 {
			t.Fatalf("rectangle sides above canvas max: %+v", r)
		}
	}
}

func TestShapeRasterizeCoverage(t *testing.T) {
	// A known rectangle covers exactly its interior at full alpha.
	r := &Rectangle{Center: Pt(8, 8), W: 8, H: 4, Angle: 0}
	cov := r.Rasterize(16, 16)
	if cov.Empty() {
		t.Fatal("coverage should not be empty")
	}
	if got := cov.at(8, 8); got != 255 {
		t.Errorf("interior coverage = %d, want 255", got)
	}
}

func TestShapeRasterizeClipped(t *testing.T) {
	// A shape entirely outside the canvas produces an empty map.
	tri := &Triangle{P: [3]Point{{-50, -50}, {-10, -50}, {-10, -10}}}
	cov := tri.Rasterize(16, 16)
	if !cov.Empty() {
		t.Error("fully clipped triangle should have empty coverage")
	}
}

func TestShapeSVG(t *testing.T) {
	c := RGBA{R: 1, A: 0.5}
	tests := []struct {
		shape Shape
		want  string
	}{
		{&Triangle{P: [3]Point{{0, 0}, {10, 0}, {0, 10}}}, "<polygon"},
		{&Rectangle{Center: Pt(5, 5), W: 4, H: 2}, "<rect"},
		{&Ellipse{Center: Pt(5, 5), Rx: 3, Ry: 2}, "<ellipse"},
		{&Quadratic{P0: Pt(0, 0), Ctrl: Pt(5, 9), P1: Pt(10, 0), Width: 2}, "<path"},
		{&Cubic{P0: Pt(0, 0), C1: Pt(2, 3), C2: Pt(8, 3), P1: Pt(10, 0), Width: 2}, "<path"},
	}
	for _, tt := range tests {
		got := tt.shape.SVG(c)
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("%v SVG = %q, want prefix %q", tt.shape.Kind(), got, tt.want)
		}
		if !strings.Contains(got, "#FF0000") {
			t.Errorf("%v SVG missing fill color: %q", tt.shape.Kind(), got)
		}
		if !strings.Contains(got, "0.50000") {
			t.Errorf("%v SVG missing opacity: %q", tt.shape.Kind(), got)
		}
	}
}
