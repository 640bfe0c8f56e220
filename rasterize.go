package prim

import (
	"image"
	"math"

	"github.com/gopix/prim/internal/raster"
)

// pathLoops flattens a path into closed point loops, one per subpath.
// Curves are subdivided to the rasterizer's flatness tolerance.
func pathLoops(p *Path) [][]raster.Point {
	var loops [][]raster.Point
	var current []raster.Point
	var currentPt raster.Point

	flush := func() {
		if len(current) >= 3 {
			loops = append(loops, current)
		}
		current = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			currentPt = raster.Point{X: e.Point.X, Y: e.Point.Y}
			current = append(current, currentPt)

		case LineTo:
			currentPt = raster.Point{X: e.Point.X, Y: e.Point.Y}
			current = append(current, currentPt)

		case QuadTo:
			pts := raster.FlattenQuad(currentPt,
				raster.Point{X: e.Control.X, Y: e.Control.Y},
				raster.Point{X: e.Point.X, Y: e.Point.Y})
			current = append(current, pts...)
			currentPt = raster.Point{X: e.Point.X, Y: e.Point.Y}

		case CubicTo:
			pts := raster.FlattenCubic(currentPt,
				raster.Point{X: e.Control1.X, Y: e.Control1.Y},
				raster.Point{X: e.Control2.X, Y: e.Control2.Y},
				raster.Point{X: e.Point.X, Y: e.Point.Y})
			current = append(current, pts...)
			currentPt = raster.Point{X: e.Point.X, Y: e.Point.Y}

		case Close:
			flush()
		}
	}
	flush()
	return loops
}

// pathPolyline flattens an open path into a single polyline for stroking.
func pathPolyline(p *Path) []raster.Point {
	var pts []raster.Point
	var currentPt raster.Point

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			currentPt = raster.Point{X: e.Point.X, Y: e.Point.Y}
			pts = append(pts, currentPt)

		case LineTo:
			currentPt = raster.Point{X: e.Point.X, Y: e.Point.Y}
			pts = append(pts, currentPt)

		case QuadTo:
			seg := raster.FlattenQuad(currentPt,
				raster.Point{X: e.Control.X, Y: e.Control.Y},
				raster.Point{X: e.Point.X, Y: e.Point.Y})
			pts = append(pts, seg...)
			currentPt = raster.Point{X: e.Point.X, Y: e.Point.Y}

		case CubicTo:
			seg := raster.FlattenCubic(currentPt,
				raster.Point{X: e.Control1.X, Y: e.Control1.Y},
				raster.Point{X: e.Control2.X, Y: e.Control2.Y},
				raster.Point{X: e.Point.X, Y: e.Point.Y})
			pts = append(pts, seg...)
			currentPt = raster.Point{X: e.Point.X, Y: e.Point.Y}

		case Close:
			// Open paths only; a Close is treated as end of input.
		}
	}
	return pts
}

// fillPath rasterizes a closed path into an anti-aliased coverage map
// clipped to width x height. Degenerate paths yield an empty map.
func fillPath(p *Path, width, height int) *Coverage {
	return fillLoops(pathLoops(p), width, height)
}

// strokePath rasterizes an open path stroked at the given width into an
// anti-aliased coverage map clipped to the canvas.
func strokePath(p *Path, strokeWidth float64, width, height int) *Coverage {
	outline := raster.StrokeOutline(pathPolyline(p), strokeWidth)
	if outline == nil {
		return &Coverage{}
	}
	return fillLoops([][]raster.Point{outline}, width, height)
}

// loopBounds returns the integer bounding box of the loops, clipped to
// the canvas.
func loopBounds(loops [][]raster.Point, width, height int) image.Rectangle {
	first := true
	var xMin, yMin, xMax, yMax float64
	for _, loop := range loops {
		for _, pt := range loop {
			if first {
				xMin, xMax = pt.X, pt.X
				yMin, yMax = pt.Y, pt.Y
				first = false
				continue
			}
			xMin = math.Min(xMin, pt.X)
			xMax = math.Max(xMax, pt.X)
			yMin = math.Min(yMin, pt.Y)
			yMax = math.Max(yMax, pt.Y)
		}
	}
	if first {
		return image.Rectangle{}
	}

	box := image.Rect(
		int(math.Floor(xMin)), int(math.Floor(yMin)),
		int(math.Ceil(xMax)), int(math.Ceil(yMax)),
	)
	return box.Intersect(image.Rect(0, 0, width, height))
}

// fillLoops rasterizes point loops into a coverage map over their clipped
// bounding box.
func fillLoops(loops [][]raster.Point, width, height int) *Coverage {
	bounds := loopBounds(loops, width, height)
	if bounds.Empty() {
		return &Coverage{}
	}

	cov := &Coverage{
		Rect:  bounds,
		Alpha: make([]uint8, bounds.Dx()*bounds.Dy()),
	}
	covered := false
	raster.FillPolygon(loops, width, height, func(x, y int, alpha uint8) {
		cov.Alpha[(y-bounds.Min.Y)*bounds.Dx()+(x-bounds.Min.X)] = alpha
		covered = true
	})
	if !covered {
		return &Coverage{}
	}
	return cov
}
