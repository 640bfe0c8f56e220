// Command prim approximates a raster image with a sequence of translucent
// geometric shapes and writes the result as SVG or PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gopix/prim"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func main() {
	var (
		input      = flag.String("input", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
		output     = flag.String("output", "out.svg", "output file (.svg or .png)")
		count      = flag.Int("n", prim.DefaultShapeCount, "number of shapes")
		mode       = flag.String("mode", "triangle", "shape mode: triangle, rectangle, ellipse, quadratic, cubic, mixed")
		maxAge     = flag.Int("max-age", prim.DefaultMaxAge, "consecutive failed mutations that end a round")
		candidates = flag.Int("candidates", prim.DefaultCandidates, "random candidates per round")
		alpha      = flag.Int("alpha", prim.DefaultAlpha, "shape alpha (1-255)")
		background = flag.String("bg", "", "background color as hex (default: input average)")
		seed       = flag.Uint64("seed", 0, "random seed (0: derive from clock)")
		resize     = flag.Int("resize", 0, "downscale input so the longer side is at most this (0: no resize)")
		scale      = flag.Int("scale", 1, "output size multiplier")
		workers    = flag.Int("workers", 0, "worker goroutines (0: all CPUs)")
		verbose    = flag.Bool("v", false, "log progress per shape")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		prim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	kind, err := prim.ParseShapeKind(*mode)
	if err != nil {
		log.Fatal(err)
	}
	if *alpha < 1 || *alpha > 255 {
		log.Fatalf("alpha must be in 1..255, got %d", *alpha)
	}

	img, err := loadImage(*input)
	if err != nil {
		log.Fatalf("load %s: %v", *input, err)
	}
	if *resize > 0 {
		img = downscale(img, *resize)
	}
	target := prim.FromImage(img)

	opts := []prim.Option{
		prim.WithShapeCount(*count),
		prim.WithKind(kind),
		prim.WithMaxAge(*maxAge),
		prim.WithCandidates(*candidates),
		prim.WithAlpha(uint8(*alpha)),
		prim.WithWorkers(*workers),
	}
	if *seed != 0 {
		opts = append(opts, prim.WithSeed(*seed))
	}
	if *background != "" {
		bg, err := prim.Hex(*background)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, prim.WithBackground(bg))
	}

	opt, err := prim.NewOptimizer(target, opts...)
	if err != nil {
		log.Fatal(err)
	}
	result := opt.Run()

	if err := writeResult(result, *output, *scale); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
	log.Printf("wrote %s (%d shapes, error %.0f)", *output, len(result.Shapes), opt.TotalError())
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// downscale shrinks img so its longer side is at most limit, preserving
// aspect ratio. Images already within the limit pass through unchanged.
func downscale(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longer := w
	if h > longer {
		longer = h
	}
	if longer <= limit {
		return img
	}
	k := float64(limit) / float64(longer)
	dw := int(float64(w)*k + 0.5)
	dh := int(float64(h)*k + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writeResult(r *prim.Result, path string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return os.WriteFile(path, []byte(r.SVGSized(r.Width*scale, r.Height*scale)), 0o644)
	case ".png":
		img := r.Render().ToImage()
		if scale > 1 {
			dst := image.NewRGBA(image.Rect(0, 0, r.Width*scale, r.Height*scale))
			draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
			img = dst
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return png.Encode(f, img)
	default:
		return fmt.Errorf("unsupported output extension %q (want .svg or .png)", filepath.Ext(path))
	}
}
