package prim

import (
	"math/rand/v2"
	"time"

	"github.com/gopix/prim/internal/parallel"
)

// Optimizer runs the hill-climbing search that approximates a target image
// with an ordered sequence of shapes.
//
// Each round proceeds Init -> Explore -> Refine -> Commit: a batch of
// independent random candidates is generated and scored in parallel, the
// best one is refined by local mutations until MaxAge consecutive attempts
// fail to improve it, and the final candidate is composited onto the
// canvas and appended to the result. Rounds are strictly sequential; each
// depends on the canvas state left by the previous one.
type Optimizer struct {
	cfg    Config
	target *Pixmap
	canvas *Pixmap
	sc     *scorer
	result *Result
}

// candidate is a shape under evaluation during one round, together with
// its coverage, error-optimal color, and would-be total error.
type candidate struct {
	shape Shape
	cov   *Coverage
	color RGBA
	score float64
}

// refineStream is the per-round random stream index reserved for the
// sequential parts of a round (kind selection and mutation). Candidate
// streams use their candidate index, which is always below this.
const refineStream = 0xFFFFFFFF

// NewOptimizer validates the configuration and prepares a run against the
// given target pixmap. The target must not be modified during the run.
func NewOptimizer(target *Pixmap, opts ...Option) (*Optimizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(target.Width(), target.Height()); err != nil {
		return nil, err
	}
	if !cfg.HasSeed {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	bg := target.AverageColor()
	if cfg.Background != nil {
		bg = *cfg.Background
		bg.A = 1
	}

	canvas := NewPixmap(target.Width(), target.Height())
	canvas.Fill(bg)

	return &Optimizer{
		cfg:    cfg,
		target: target,
		canvas: canvas,
		sc:     newScorer(target, canvas),
		result: &Result{
			Width:      target.Width(),
			Height:     target.Height(),
			Background: bg,
			Shapes:     make([]Placed, 0, cfg.ShapeCount),
		},
	}, nil
}

// Run executes all rounds and returns the accumulated result. The engine
// performs no I/O; it is pure computation over in-memory buffers.
func (o *Optimizer) Run() *Result {
	pool := parallel.NewWorkerPool(o.cfg.Workers)
	defer pool.Close()

	log := Logger()
	log.Debug("run started",
		"shapes", o.cfg.ShapeCount,
		"kind", o.cfg.Kind.String(),
		"candidates", o.cfg.Candidates,
		"maxAge", o.cfg.MaxAge,
		"seed", o.cfg.Seed,
		"workers", pool.Workers(),
	)

	for round := 0; round < o.cfg.ShapeCount; round++ {
		best := o.addShape(pool, round)
		log.Info("shape committed",
			"round", round+1,
			"kind", best.shape.Kind().String(),
			"error", best.score,
		)
	}
	return o.result
}

// addShape runs one full round and commits its winner.
func (o *Optimizer) addShape(pool *parallel.WorkerPool, round int) candidate {
	width := o.target.Width()
	height := o.target.Height()

	// roundRNG drives the single-threaded parts of the round.
	roundRNG := o.rng(round, refineStream)
	kind := o.cfg.Kind
	if kind == ShapeMixed {
		kind = ShapeKind(roundRNG.IntN(concreteKinds))
	}

	// Explore: K independent candidates, evaluated in parallel. Each
	// candidate's stream is derived from its index, not from scheduling,
	// so the outcome is identical for any worker count.
	cands := make([]candidate, o.cfg.Candidates)
	work := make([]func(), o.cfg.Candidates)
	for i := range cands {
		idx := i
		work[idx] = func() {
			rng := o.rng(round, idx)
			cands[idx] = o.evaluate(RandomShape(kind, rng, width, height))
		}
	}
	pool.ExecuteAll(work)

	best := cands[0]
	for _, c := range cands[1:] {
		if c.score < best.score {
			best = c
		}
	}

	// Refine: hill climb on the best candidate until MaxAge consecutive
	// mutations fail to improve it.
	age := 0
	for age < o.cfg.MaxAge {
		mutated := best.shape.Clone()
		mutated.Mutate(roundRNG, width, height)
		cand := o.evaluate(mutated)
		if cand.score < best.score {
			best = cand
			age = 0
		} else {
			age++
		}
	}

	// Commit: the round always adds its best candidate, even when the
	// improvement is marginal. A degenerate winner leaves the canvas and
	// the running error untouched.
	o.sc.commit(best.cov, best.color, best.score)
	o.result.Shapes = append(o.result.Shapes, Placed{Shape: best.shape, Color: best.color})
	return best
}

// evaluate rasterizes a shape, solves its optimal color, and computes the
// total error it would leave if committed. Degenerate shapes score as
// "no change" and can never win over an improving candidate.
func (o *Optimizer) evaluate(sh Shape) candidate {
	cov := sh.Rasterize(o.target.Width(), o.target.Height())
	if cov.Empty() {
		return candidate{
			shape: sh,
			cov:   cov,
			color: RGBA{A: float64(o.cfg.Alpha) / 255},
			score: o.sc.total,
		}
	}
	color := o.sc.optimalColor(cov, o.cfg.Alpha)
	return candidate{
		shape: sh,
		cov:   cov,
		color: color,
		score: o.sc.score(cov, color),
	}
}

// rng returns the random stream for the given (round, stream) position,
// derived deterministically from the run seed.
func (o *Optimizer) rng(round, stream int) *rand.Rand {
	return rand.New(rand.NewPCG(o.cfg.Seed, uint64(round)<<32|uint64(uint32(stream))))
}

// Canvas returns a copy of the current working canvas. After Run it holds
// the final composited approximation.
func (o *Optimizer) Canvas() *Pixmap {
	return o.canvas.Clone()
}

// TotalError returns the running sum-of-squared-differences error between
// the canvas and the target.
func (o *Optimizer) TotalError() float64 {
	return o.sc.total
}
