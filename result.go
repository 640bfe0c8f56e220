package prim

import (
	"fmt"
	"strings"
)

// Placed is a committed shape with its error-optimal fill color.
// Both the shape and the color are immutable after commit.
type Placed struct {
	Shape Shape
	Color RGBA
}

// Result accumulates the output of a run: the canvas background color and
// the committed shapes in paint order. It is append-only during a run and
// never reordered.
//
// The result is the sole artifact a downstream serializer or renderer
// needs: SVG reproduces it as vector markup, Render as pixels.
type Result struct {
	Width, Height int
	Background    RGBA
	Shapes        []Placed
}

// SVG serializes the result as an SVG document at canvas resolution.
func (r *Result) SVG() string {
	return r.SVGSized(r.Width, r.Height)
}

// SVGSized serializes the result as an SVG document with the given outer
// dimensions. Shape coordinates stay in canvas space; a group transform
// scales them to the output size.
func (r *Result) SVGSized(outWidth, outHeight int) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d">`,
		outWidth, outHeight)
	b.WriteByte('\n')
	fmt.Fprintf(&b,
		`<rect x="0" y="0" width="%d" height="%d" fill="%s" />`,
		outWidth, outHeight, r.Background.hexString())
	b.WriteByte('\n')

	scale := 1.0
	if r.Width > 0 {
		scale = float64(outWidth) / float64(r.Width)
	}
	if scale != 1.0 {
		fmt.Fprintf(&b, `<g transform="scale(%g)">`, scale)
	} else {
		b.WriteString("<g>")
	}
	b.WriteByte('\n')

	for _, p := range r.Shapes {
		b.WriteString(p.Shape.SVG(p.Color))
		b.WriteByte('\n')
	}

	b.WriteString("</g></svg>\n")
	return b.String()
}

// Render rasterizes the result back into a pixmap. The output is
// byte-identical to the canvas the optimizer produced, because the same
// coverage and blend arithmetic is applied in the same order.
func (r *Result) Render() *Pixmap {
	pm := NewPixmap(r.Width, r.Height)
	pm.Fill(r.Background)
	for _, p := range r.Shapes {
		cov := p.Shape.Rasterize(r.Width, r.Height)
		pm.Composite(cov, p.Color)
	}
	return pm
}
