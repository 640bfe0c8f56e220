// Package raster provides scanline coverage rasterization for polygons.
//
// The filler computes anti-aliased per-pixel coverage using 4x vertical
// supersampling with exact horizontal span fractions. Cost scales with the
// polygon's clipped bounding box, not the full canvas.
package raster

import (
	"math"
	"sort"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// SupersampleShift controls vertical supersampling: 2 means 4 sub-scanlines.
const SupersampleShift = 2

// SupersampleScale is the number of sub-scanlines per pixel row.
const SupersampleScale = 1 << SupersampleShift

// edge is a non-horizontal line segment prepared for scanline traversal.
type edge struct {
	x0, y0 float64 // top point
	x1, y1 float64 // bottom point
	dir    int     // winding direction: +1 or -1
}

// newEdge creates an edge from two points, oriented so y0 < y1.
// The winding direction is recorded before the swap.
func newEdge(p0, p1 Point) edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir}
}

// xAt returns the x coordinate of the edge at scanline y.
func (e *edge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// crossing is an edge intersection with the current sub-scanline.
type crossing struct {
	x   float64
	dir int
}

// buildEdges converts closed point loops into scanline edges.
// Each loop is implicitly closed from its last point back to its first.
// Horizontal edges contribute nothing to scanline winding and are skipped.
func buildEdges(loops [][]Point) []edge {
	var edges []edge
	for _, loop := range loops {
		n := len(loop)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := loop[i]
			p1 := loop[(i+1)%n]
			if math.Abs(p1.Y-p0.Y) < 1e-9 {
				continue
			}
			edges = append(edges, newEdge(p0, p1))
		}
	}
	return edges
}

// FillPolygon rasterizes closed polygon loops with anti-aliasing, invoking
// fn for every pixel with non-zero coverage. Coverage is 0-255. The fill
// rule is non-zero winding, so self-intersecting stroke outlines fill solid.
//
// Only pixels inside the loops' bounding box intersected with the
// width x height clip region are visited. Degenerate input (no area inside
// the clip) produces no callbacks.
func FillPolygon(loops [][]Point, width, height int, fn func(x, y int, coverage uint8)) {
	edges := buildEdges(loops)
	if len(edges) == 0 {
		return
	}

	// Bounding box over all edges, clipped to the canvas.
	xMin, yMin := math.MaxFloat64, math.MaxFloat64
	xMax, yMax := -math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		xMin = math.Min(xMin, math.Min(e.x0, e.x1))
		xMax = math.Max(xMax, math.Max(e.x0, e.x1))
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	x0 := maxInt(int(math.Floor(xMin)), 0)
	y0 := maxInt(int(math.Floor(yMin)), 0)
	x1 := minInt(int(math.Ceil(xMax)), width)
	y1 := minInt(int(math.Ceil(yMax)), height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	bw := x1 - x0
	acc := make([]float64, bw)
	crossings := make([]crossing, 0, 16)

	for py := y0; py < y1; py++ {
		for i := range acc {
			acc[i] = 0
		}
		rowCovered := false

		for s := 0; s < SupersampleScale; s++ {
			y := float64(py) + (float64(s)+0.5)/SupersampleScale

			crossings = crossings[:0]
			for i := range edges {
				e := &edges[i]
				if e.y0 <= y && y < e.y1 {
					crossings = append(crossings, crossing{x: e.xAt(y), dir: e.dir})
				}
			}
			if len(crossings) < 2 {
				continue
			}
			sort.Slice(crossings, func(i, j int) bool { return crossings[i].x < crossings[j].x })

			// Non-zero winding: a span is inside while the winding sum is non-zero.
			winding := 0
			var spanStart float64
			for _, c := range crossings {
				if winding == 0 {
					spanStart = c.x
				}
				winding += c.dir
				if winding == 0 {
					if addSpan(acc, spanStart, c.x, x0, x1) {
						rowCovered = true
					}
				}
			}
		}

		if !rowCovered {
			continue
		}
		for i, a := range acc {
			if a <= 0 {
				continue
			}
			// acc is in [0, SupersampleScale]; scale to 0-255 alpha.
			v := a * (255.0 / SupersampleScale)
			if v > 255 {
				v = 255
			}
			fn(x0+i, py, uint8(v+0.5))
		}
	}
}

// addSpan accumulates the horizontal coverage of [xa, xb) into acc,
// where acc index 0 corresponds to pixel column x0. Partial pixels at the
// span ends receive fractional coverage. Reports whether anything was added.
func addSpan(acc []float64, xa, xb float64, x0, x1 int) bool {
	if xa < float64(x0) {
		xa = float64(x0)
	}
	if xb > float64(x1) {
		xb = float64(x1)
	}
	if xa >= xb {
		return false
	}

	ia := int(math.Floor(xa))
	ib := int(math.Floor(xb))
	if ia == ib {
		acc[ia-x0] += xb - xa
		return true
	}

	acc[ia-x0] += float64(ia+1) - xa
	for i := ia + 1; i < ib; i++ {
		acc[i-x0] += 1
	}
	if ib < x1 {
		acc[ib-x0] += xb - float64(ib)
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
