// Package prim approximates a raster image with an ordered sequence of
// simple geometric shapes composited with transparency.
//
// # Overview
//
// prim runs a greedy hill-climbing search: each round it proposes a batch
// of random shapes, scores them against the target image, refines the best
// one through local mutations, and commits the winner onto a working canvas.
// The result is an ordered shape list plus a background color, ready for
// SVG serialization or re-rasterization.
//
// # Quick Start
//
//	import "github.com/gopix/prim"
//
//	target := prim.FromImage(img) // already decoded and scaled
//	opt, err := prim.NewOptimizer(target,
//		prim.WithShapeCount(100),
//		prim.WithKind(prim.ShapeTriangle),
//		prim.WithSeed(42),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := opt.Run()
//	svg := result.SVG()
//
// # Determinism
//
// Given an explicit seed, output is bit-for-bit reproducible across runs
// and across worker counts: every candidate's random stream is derived from
// the seed and the candidate's (round, index) position, never from thread
// scheduling.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Optimizer, Shape variants, Pixmap, Coverage, Result
//   - Internal: raster (scanline coverage), parallel (worker pool)
package prim
