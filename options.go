package prim

import "fmt"

// Config holds the optimizer's settings. Zero values are replaced by
// defaults in NewOptimizer; use the With* options to customize.
type Config struct {
	// ShapeCount is the number of shapes to commit (one per round).
	ShapeCount int

	// MaxAge is how many consecutive non-improving mutations end a
	// round's refinement phase.
	MaxAge int

	// Candidates is the number of independent random candidates evaluated
	// at the start of each round.
	Candidates int

	// Workers is the number of goroutines evaluating candidates.
	// 0 means GOMAXPROCS.
	Workers int

	// Kind selects the shape variant; ShapeMixed picks per round.
	Kind ShapeKind

	// Alpha is the fixed transparency applied to every committed shape.
	Alpha uint8

	// Background overrides the canvas background color. When nil, the
	// target's average color is used.
	Background *RGBA

	// Seed seeds all random streams. When HasSeed is false, a seed is
	// derived from the wall clock and the run is not reproducible.
	Seed    uint64
	HasSeed bool
}

// Default configuration values.
const (
	DefaultShapeCount = 100
	DefaultMaxAge     = 100
	DefaultCandidates = 64
	DefaultAlpha      = 128
)

func defaultConfig() Config {
	return Config{
		ShapeCount: DefaultShapeCount,
		MaxAge:     DefaultMaxAge,
		Candidates: DefaultCandidates,
		Kind:       ShapeTriangle,
		Alpha:      DefaultAlpha,
	}
}

// validate rejects configurations the optimizer cannot run with.
// Called once before any round; no later operation is expected to fail.
func (c *Config) validate(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("prim: canvas dimensions must be positive, got %dx%d", width, height)
	}
	if c.ShapeCount <= 0 {
		return fmt.Errorf("prim: shape count must be positive, got %d", c.ShapeCount)
	}
	if c.MaxAge <= 0 {
		return fmt.Errorf("prim: max age must be positive, got %d", c.MaxAge)
	}
	if c.Candidates <= 0 {
		return fmt.Errorf("prim: candidate count must be positive, got %d", c.Candidates)
	}
	if c.Kind > ShapeMixed {
		return fmt.Errorf("prim: unknown shape kind %d", c.Kind)
	}
	return nil
}

// Option configures an Optimizer during creation.
type Option func(*Config)

// WithShapeCount sets the number of shapes to commit.
func WithShapeCount(n int) Option {
	return func(c *Config) { c.ShapeCount = n }
}

// WithMaxAge sets the per-round mutation budget: refinement stops after
// this many consecutive non-improving mutations.
func WithMaxAge(n int) Option {
	return func(c *Config) { c.MaxAge = n }
}

// WithCandidates sets how many independent random candidates each round
// evaluates before refinement.
func WithCandidates(n int) Option {
	return func(c *Config) { c.Candidates = n }
}

// WithWorkers sets the number of goroutines evaluating candidates.
// The result is identical for any worker count; this only affects speed.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithKind selects the shape variant proposed each round.
func WithKind(k ShapeKind) Option {
	return func(c *Config) { c.Kind = k }
}

// WithAlpha sets the fixed transparency of committed shapes (0-255).
func WithAlpha(a uint8) Option {
	return func(c *Config) { c.Alpha = a }
}

// WithBackground sets an explicit canvas background color instead of the
// target's average.
func WithBackground(bg RGBA) Option {
	return func(c *Config) { c.Background = &bg }
}

// WithSeed makes the run reproducible: the same seed, target, and settings
// produce a bit-identical shape list regardless of worker count.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.HasSeed = true
	}
}
