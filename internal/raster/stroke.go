package raster

import "math"

// StrokeOutline expands an open polyline into a closed outline polygon of
// the given stroke width, suitable for FillPolygon with non-zero winding.
//
// Each segment is offset by half the width on both sides; consecutive
// offset segments connect directly, producing bevel joins. Overlaps at
// joins are harmless under the non-zero fill rule. Caps are flat (butt).
//
// Returns nil when the polyline has no extent or the width is not positive.
func StrokeOutline(pts []Point, width float64) []Point {
	if width <= 0 || len(pts) < 2 {
		return nil
	}

	h := width / 2
	left := make([]Point, 0, 2*len(pts))
	right := make([]Point, 0, 2*len(pts))

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		dx := b.X - a.X
		dy := b.Y - a.Y
		length := math.Hypot(dx, dy)
		if length < 1e-12 {
			continue
		}
		// Unit normal, scaled to half width.
		nx := -dy / length * h
		ny := dx / length * h

		left = append(left, Point{a.X + nx, a.Y + ny}, Point{b.X + nx, b.Y + ny})
		right = append(right, Point{a.X - nx, a.Y - ny}, Point{b.X - nx, b.Y - ny})
	}
	if len(left) == 0 {
		return nil
	}

	outline := left
	for i := len(right) - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	return outline
}
