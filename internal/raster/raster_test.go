package raster

import (
	"math"
	"testing"
)

func fill(loops [][]Point, w, h int) map[[2]int]uint8 {
	got := make(map[[2]int]uint8)
	FillPolygon(loops, w, h, func(x, y int, cov uint8) {
		got[[2]int{x, y}] = cov
	})
	return got
}

func TestFillPolygonAxisAlignedSquare(t *testing.T) {
	// A square on exact pixel boundaries covers its pixels fully.
	square := []Point{{2, 2}, {6, 2}, {6, 6}, {2, 6}}
	got := fill([][]Point{square}, 10, 10)

	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if got[[2]int{x, y}] != 255 {
				t.Errorf("pixel (%d,%d) coverage = %d, want 255", x, y, got[[2]int{x, y}])
			}
		}
	}
	if _, ok := got[[2]int{1, 2}]; ok {
		t.Error("coverage outside the square")
	}
	if _, ok := got[[2]int{6, 6}]; ok {
		t.Error("coverage outside the square")
	}
	if len(got) != 16 {
		t.Errorf("covered %d pixels, want 16", len(got))
	}
}

func TestFillPolygonHalfPixel(t *testing.T) {
	// A square covering the left half of one pixel.
	half := []Point{{0, 0}, {0.5, 0}, {0.5, 1}, {0, 1}}
	got := fill([][]Point{half}, 4, 4)

	cov := got[[2]int{0, 0}]
	if cov < 125 || cov > 130 {
		t.Errorf("half coverage = %d, want ~128", cov)
	}
	if len(got) != 1 {
		t.Errorf("covered %d pixels, want 1", len(got))
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	cases := [][][]Point{
		nil,
		{{{1, 1}, {2, 2}}},               // too few points
		{{{1, 1}, {5, 1}, {9, 1}}},       // zero area (horizontal)
		{{{-9, -9}, {-5, -9}, {-5, -5}}}, // fully outside the clip
	}
	for i, loops := range cases {
		if got := fill(loops, 8, 8); len(got) != 0 {
			t.Errorf("case %d: degenerate input covered %d pixels", i, len(got))
		}
	}
}

func TestFillPolygonClipsToCanvas(t *testing.T) {
	big := []Point{{-10, -10}, {20, -10}, {20, 20}, {-10, 20}}
	got := fill([][]Point{big}, 4, 4)

	if len(got) != 16 {
		t.Errorf("covered %d pixels, want all 16", len(got))
	}
	for pos, cov := range got {
		if pos[0] < 0 || pos[0] >= 4 || pos[1] < 0 || pos[1] >= 4 {
			t.Errorf("pixel %v outside the clip", pos)
		}
		if cov != 255 {
			t.Errorf("pixel %v coverage = %d, want 255", pos, cov)
		}
	}
}

func TestFillPolygonTriangleArea(t *testing.T) {
	// Total coverage approximates the geometric area.
	tri := []Point{{1, 1}, {9, 1}, {1, 9}}
	got := fill([][]Point{tri}, 12, 12)

	var sum float64
	for _, cov := range got {
		sum += float64(cov) / 255
	}
	want := 32.0 // base 8, height 8
	if math.Abs(sum-want) > 1 {
		t.Errorf("triangle coverage area = %v, want ~%v", sum, want)
	}
}

func TestFlattenQuadEndpoint(t *testing.T) {
	p0 := Point{0, 0}
	p1 := Point{5, 10}
	p2 := Point{10, 0}
	pts := FlattenQuad(p0, p1, p2)
	if len(pts) == 0 {
		t.Fatal("no points")
	}
	last := pts[len(pts)-1]
	if last != p2 {
		t.Errorf("last point = %+v, want %+v", last, p2)
	}
	// Every point lies near the true curve.
	for _, p := range pts {
		tq := solveQuadX(p0, p1, p2, p.X)
		y := (1-tq)*(1-tq)*p0.Y + 2*(1-tq)*tq*p1.Y + tq*tq*p2.Y
		if math.Abs(p.Y-y) > Tolerance*2 {
			t.Errorf("point %+v deviates from curve (y=%v)", p, y)
		}
	}
}

// solveQuadX inverts the symmetric test curve's x(t), which is linear in t.
func solveQuadX(p0, p1, p2 Point, x float64) float64 {
	return (x - p0.X) / (p2.X - p0.X)
}

func TestFlattenCubicEndpoint(t *testing.T) {
	p3 := Point{9, 3}
	pts := FlattenCubic(Point{0, 0}, Point{3, 6}, Point{6, -6}, p3)
	if len(pts) == 0 {
		t.Fatal("no points")
	}
	if pts[len(pts)-1] != p3 {
		t.Errorf("last point = %+v, want %+v", pts[len(pts)-1], p3)
	}
	if len(pts) < 4 {
		t.Errorf("curved cubic flattened to only %d segments", len(pts))
	}
}

func TestFlattenStraightLineIsOneSegment(t *testing.T) {
	pts := FlattenQuad(Point{0, 0}, Point{5, 5}, Point{10, 10})
	if len(pts) != 1 {
		t.Errorf("straight quad flattened to %d points, want 1", len(pts))
	}
}

func TestStrokeOutline(t *testing.T) {
	// A horizontal segment of length 8 stroked at width 2 covers area ~16.
	outline := StrokeOutline([]Point{{1, 5}, {9, 5}}, 2)
	if outline == nil {
		t.Fatal("nil outline")
	}
	got := fill([][]Point{outline}, 12, 12)
	var sum float64
	for _, cov := range got {
		sum += float64(cov) / 255
	}
	if math.Abs(sum-16) > 1 {
		t.Errorf("stroke area = %v, want ~16", sum)
	}
}

func TestStrokeOutlineDegenerate(t *testing.T) {
	if StrokeOutline(nil, 2) != nil {
		t.Error("nil polyline should give nil outline")
	}
	if StrokeOutline([]Point{{1, 1}}, 2) != nil {
		t.Error("single point should give nil outline")
	}
	if StrokeOutline([]Point{{1, 1}, {2, 2}}, 0) != nil {
		t.Error("zero width should give nil outline")
	}
	if StrokeOutline([]Point{{3, 3}, {3, 3}}, 2) != nil {
		t.Error("zero-extent polyline should give nil outline")
	}
}
