package prim

// scorer maintains the running sum-of-squared-differences error between
// the canvas and the target, and evaluates candidate shapes incrementally.
//
// All methods except commit are read-only and safe to call concurrently
// while the canvas is not being mutated.
type scorer struct {
	target *Pixmap
	canvas *Pixmap
	total  float64
}

func newScorer(target, canvas *Pixmap) *scorer {
	return &scorer{
		target: target,
		canvas: canvas,
		total:  diffTotal(target, canvas),
	}
}

// diffTotal computes the full-buffer error: the sum over all pixels of the
// squared per-channel differences (R, G, B).
func diffTotal(a, b *Pixmap) float64 {
	da := a.Data()
	db := b.Data()
	var total float64
	for i := 0; i < len(da); i += 4 {
		dr := float64(da[i+0]) - float64(db[i+0])
		dg := float64(da[i+1]) - float64(db[i+1])
		dbl := float64(da[i+2]) - float64(db[i+2])
		total += dr*dr + dg*dg + dbl*dbl
	}
	return total
}

// optimalColor computes the single RGB color that, blended over the canvas
// at the given alpha through the candidate's coverage, minimizes the
// squared error against the target over the shape's footprint. Solved in
// closed form per channel: with k the effective per-pixel alpha, the
// blended value is col*k + canvas*(1-k), so the least-squares color is
// sum(k*(target - canvas*(1-k))) / sum(k*k).
//
// The returned color carries alpha/255 in its A component.
func (s *scorer) optimalColor(cov *Coverage, alpha uint8) RGBA {
	a := float64(alpha) / 255
	if cov.Empty() || a == 0 {
		return RGBA{A: a}
	}

	td := s.target.Data()
	cd := s.canvas.Data()
	w := s.target.Width()

	var denom float64
	var num [3]float64

	r := cov.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := (y - r.Min.Y) * r.Dx()
		for x := r.Min.X; x < r.Max.X; x++ {
			cv := cov.Alpha[row+x-r.Min.X]
			if cv == 0 {
				continue
			}
			k := float64(cv) / 255 * a
			denom += k * k
			i := (y*w + x) * 4
			for ch := 0; ch < 3; ch++ {
				t := float64(td[i+ch])
				d := float64(cd[i+ch])
				num[ch] += k * (t - d*(1-k))
			}
		}
	}
	if denom == 0 {
		return RGBA{A: a}
	}

	return RGBA{
		R: clamp255(num[0]/denom) / 255,
		G: clamp255(num[1]/denom) / 255,
		B: clamp255(num[2]/denom) / 255,
		A: a,
	}
}

// score returns the total error the canvas would have if the candidate
// were committed, computed incrementally over the coverage footprint:
// total - error(region before) + error(region after). Pixels outside the
// footprint are unchanged by a commit and therefore never revisited.
//
// The predicted blend uses blendChannel, the same 8-bit arithmetic the
// compositor applies, so the incremental total matches a full recompute
// exactly.
func (s *scorer) score(cov *Coverage, c RGBA) float64 {
	if cov.Empty() {
		return s.total
	}

	td := s.target.Data()
	cd := s.canvas.Data()
	w := s.target.Width()

	srcR := clamp255(c.R * 255)
	srcG := clamp255(c.G * 255)
	srcB := clamp255(c.B * 255)

	var before, after float64
	r := cov.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := (y - r.Min.Y) * r.Dx()
		for x := r.Min.X; x < r.Max.X; x++ {
			cv := cov.Alpha[row+x-r.Min.X]
			if cv == 0 {
				continue
			}
			k := float64(cv) / 255 * c.A
			i := (y*w + x) * 4

			before += sqDiff(cd[i+0], td[i+0]) + sqDiff(cd[i+1], td[i+1]) + sqDiff(cd[i+2], td[i+2])
			after += sqDiff(blendChannel(cd[i+0], srcR, k), td[i+0]) +
				sqDiff(blendChannel(cd[i+1], srcG, k), td[i+1]) +
				sqDiff(blendChannel(cd[i+2], srcB, k), td[i+2])
		}
	}
	return s.total - before + after
}

// commit composites the candidate onto the canvas and adopts its score as
// the new running total. Must not run concurrently with score.
func (s *scorer) commit(cov *Coverage, c RGBA, total float64) {
	s.canvas.Composite(cov, c)
	s.total = total
}

func sqDiff(a, b uint8) float64 {
	d := float64(a) - float64(b)
	return d * d
}
