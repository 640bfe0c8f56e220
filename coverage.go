package prim

import "image"

// Coverage is an anti-aliased coverage map over a shape's bounding box,
// clipped to the canvas. Alpha holds one byte per pixel, row-major over
// Rect, where 0 means outside the shape and 255 means fully covered.
type Coverage struct {
	Rect  image.Rectangle
	Alpha []uint8
}

// Empty reports whether the coverage map covers no pixels at all.
// Degenerate shapes (zero area, fully clipped) rasterize to an empty map.
func (c *Coverage) Empty() bool {
	return c == nil || c.Rect.Empty() || len(c.Alpha) == 0
}

// at returns the coverage of the canvas pixel (x, y), which must lie
// within Rect.
func (c *Coverage) at(x, y int) uint8 {
	return c.Alpha[(y-c.Rect.Min.Y)*c.Rect.Dx()+(x-c.Rect.Min.X)]
}
