package raster

import "math"

// Tolerance is the maximum distance a flattened segment may deviate from
// the true curve, in pixels.
const Tolerance = 0.1

// FlattenQuad flattens a quadratic Bezier curve into line segments.
// The returned points include the endpoint but not the start point.
func FlattenQuad(p0, p1, p2 Point) []Point {
	var points []Point
	flattenQuadRec(p0, p1, p2, Tolerance, &points)
	return points
}

func flattenQuadRec(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	mid := lerp(q0, q1, 0.5)

	flattenQuadRec(p0, q0, mid, tolerance, points)
	flattenQuadRec(mid, q1, p2, tolerance, points)
}

// FlattenCubic flattens a cubic Bezier curve into line segments.
// The returned points include the endpoint but not the start point.
func FlattenCubic(p0, p1, p2, p3 Point) []Point {
	var points []Point
	flattenCubicRec(p0, p1, p2, p3, Tolerance, &points)
	return points
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	// De Casteljau subdivision at t=0.5.
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	mid := lerp(r0, r1, 0.5)

	flattenCubicRec(p0, q0, r0, mid, tolerance, points)
	flattenCubicRec(mid, r1, q2, p3, tolerance, points)
}

func lerp(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// distanceToLine returns the distance from point p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	abX := b.X - a.X
	abY := b.Y - a.Y
	lenSq := abX*abX + abY*abY
	if lenSq < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}

	t := ((p.X-a.X)*abX + (p.Y-a.Y)*abY) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := a.X + t*abX
	cy := a.Y + t*abY
	return math.Hypot(p.X-cx, p.Y-cy)
}
