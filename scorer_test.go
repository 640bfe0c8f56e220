package prim

import (
	"image"
	"math"
	"testing"
)

func fullCoverage(w, h int) *Coverage {
	cov := &Coverage{
		Rect:  image.Rect(0, 0, w, h),
		Alpha: make([]uint8, w*h),
	}
	for i := range cov.Alpha {
		cov.Alpha[i] = 255
	}
	return cov
}

func TestDiffTotal(t *testing.T) {
	a := NewPixmap(2, 1)
	b := NewPixmap(2, 1)
	if got := diffTotal(a, b); got != 0 {
		t.Errorf("identical pixmaps diff = %v, want 0", got)
	}

	a.SetPixel(0, 0, White)
	// One pixel, three channels at distance 255.
	want := 3 * 255.0 * 255.0
	if got := diffTotal(a, b); got != want {
		t.Errorf("diff = %v, want %v", got, want)
	}
}

func TestOptimalColorSolidTarget(t *testing.T) {
	target := NewPixmap(4, 4)
	target.Fill(RGB(0.5, 0.25, 0.75))
	canvas := NewPixmap(4, 4)
	canvas.Fill(Black)

	s := newScorer(target, canvas)
	cov := fullCoverage(4, 4)

	// At full opacity the optimal color is the target color itself.
	got := s.optimalColor(cov, 255)
	wantR := target.GetPixel(0, 0).R
	if math.Abs(got.R-wantR) > 1e-9 {
		t.Errorf("optimal R = %v, want %v", got.R, wantR)
	}
	if got.A != 1 {
		t.Errorf("optimal A = %v, want 1", got.A)
	}

	// Committing it drives the error to zero.
	score := s.score(cov, got)
	if score != 0 {
		t.Errorf("score with optimal opaque color = %v, want 0", score)
	}
}

func TestOptimalColorEmptyCoverage(t *testing.T) {
	target := NewPixmap(2, 2)
	canvas := NewPixmap(2, 2)
	s := newScorer(target, canvas)

	got := s.optimalColor(&Coverage{}, 128)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("empty coverage color = %+v, want black", got)
	}
	if s.score(&Coverage{}, got) != s.total {
		t.Error("empty coverage score should equal the running total")
	}
}

func TestScoreMatchesFullRecompute(t *testing.T) {
	// The incremental score must agree exactly with a full-buffer recompute
	// after committing, across several sequential commits.
	target := NewPixmap(16, 12)
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			target.SetPixel(x, y, RGBA{
				R: float64(x) / 15,
				G: float64(y) / 11,
				B: float64(x+y) / 26,
				A: 1,
			})
		}
	}
	canvas := NewPixmap(16, 12)
	canvas.Fill(target.AverageColor())
	s := newScorer(target, canvas)

	rng := testRNG(11)
	kinds := []ShapeKind{ShapeTriangle, ShapeRectangle, ShapeEllipse, ShapeQuadratic, ShapeCubic}
	for _, k := range kinds {
		sh := RandomShape(k, rng, 16, 12)
		cov := sh.Rasterize(16, 12)
		if cov.Empty() {
			continue
		}
		c := s.optimalColor(cov, 128)
		predicted := s.score(cov, c)
		s.commit(cov, c, predicted)

		actual := diffTotal(target, canvas)
		if predicted != actual {
			t.Fatalf("%v: incremental score %v != full recompute %v", k, predicted, actual)
		}
	}
}

func TestScoreImprovesWithOptimalColor(t *testing.T) {
	target := NewPixmap(8, 8)
	target.Fill(RGB(1, 0, 0))
	canvas := NewPixmap(8, 8)
	canvas.Fill(Black)
	s := newScorer(target, canvas)

	cov := fullCoverage(8, 8)
	c := s.optimalColor(cov, 128)
	if got := s.score(cov, c); got >= s.total {
		t.Errorf("optimal color did not improve: %v >= %v", got, s.total)
	}
}
