package prim

import (
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer.
//
// The engine treats pixmaps as opaque RGB: the alpha byte is kept at 255.
// The target pixmap is immutable for the duration of a run; the canvas
// pixmap is mutated only through Composite.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new opaque black pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	for i := 3; i < len(p.data); i += 4 {
		p.data[i] = 255
	}
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Fill sets every pixel to the given color.
func (p *Pixmap) Fill(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = 255
	}
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = 255
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: 1,
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	q := &Pixmap{
		width:  p.width,
		height: p.height,
		data:   make([]uint8, len(p.data)),
	}
	copy(q.data, p.data)
	return q
}

// Equal reports whether two pixmaps have identical dimensions and pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p.width != q.width || p.height != q.height {
		return false
	}
	for i := range p.data {
		if p.data[i] != q.data[i] {
			return false
		}
	}
	return true
}

// AverageColor returns the mean RGB value over all pixels.
func (p *Pixmap) AverageColor() RGBA {
	if p.width == 0 || p.height == 0 {
		return Black
	}
	var r, g, b int64
	for i := 0; i < len(p.data); i += 4 {
		r += int64(p.data[i+0])
		g += int64(p.data[i+1])
		b += int64(p.data[i+2])
	}
	n := float64(p.width * p.height)
	return RGBA{
		R: float64(r) / n / 255,
		G: float64(g) / n / 255,
		B: float64(b) / n / 255,
		A: 1,
	}
}

// Composite alpha-blends the colored coverage map onto the pixmap using
// the standard over rule: result = color*k + canvas*(1-k), where k is the
// per-pixel coverage scaled by the color's alpha. This permanently mutates
// the pixmap; the scorer's incremental arithmetic depends on using exactly
// this blend (see blendChannel).
func (p *Pixmap) Composite(cov *Coverage, c RGBA) {
	if cov.Empty() {
		return
	}

	srcR := clamp255(c.R * 255)
	srcG := clamp255(c.G * 255)
	srcB := clamp255(c.B * 255)
	alpha := c.A

	r := cov.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := (y - r.Min.Y) * r.Dx()
		for x := r.Min.X; x < r.Max.X; x++ {
			a := cov.Alpha[row+x-r.Min.X]
			if a == 0 {
				continue
			}
			k := float64(a) / 255 * alpha
			i := (y*p.width + x) * 4
			p.data[i+0] = blendChannel(p.data[i+0], srcR, k)
			p.data[i+1] = blendChannel(p.data[i+1], srcG, k)
			p.data[i+2] = blendChannel(p.data[i+2], srcB, k)
		}
	}
}

// blendChannel applies the over rule to one 8-bit channel.
// src is in [0, 255]; k is the effective alpha in [0, 1].
func blendChannel(dst uint8, src, k float64) uint8 {
	return uint8(src*k + float64(dst)*(1-k) + 0.5)
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, discarding alpha.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
