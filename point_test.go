package prim

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Add(Pt(1, 2)); got != Pt(4, 6) {
		t.Errorf("Add = %+v, want (4,6)", got)
	}
	if got := p.Sub(Pt(3, 4)); got != Pt(0, 0) {
		t.Errorf("Sub = %+v, want origin", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v, want (6,8)", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(0, 0).DistanceSquared(p); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
}

func TestPointRotate(t *testing.T) {
	got := Pt(1, 0).Rotate(math.Pi / 2)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("Rotate(pi/2) = %+v, want (0,1)", got)
	}

	got = Pt(2, 1).RotateAround(Pt(1, 1), math.Pi)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("RotateAround = %+v, want (0,1)", got)
	}
}

func TestPointAngle(t *testing.T) {
	// Right angle at the origin.
	got := Pt(0, 0).Angle(Pt(1, 0), Pt(0, 1))
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("Angle = %v, want 90", got)
	}

	// Collinear rays.
	got = Pt(0, 0).Angle(Pt(1, 0), Pt(2, 0))
	if math.Abs(got) > 1e-9 {
		t.Errorf("collinear Angle = %v, want 0", got)
	}

	// Zero-length ray must not NaN.
	if got := Pt(1, 1).Angle(Pt(1, 1), Pt(2, 2)); got != 0 {
		t.Errorf("degenerate Angle = %v, want 0", got)
	}
}
