package bench

import (
	"math/rand"

	"github.com/katalvlaran/closestpair/pointgen"
)

// Option customizes Run.
type Option func(*config)

// config aggregates every knob Run reads.
type config struct {
	startSize  int
	maxSize    int
	repeats    int
	rng        *rand.Rand
	pointOpts  []pointgen.Option
	scratchDir string
	progress   func(Progress)
}

// Defaults follow the classic experiment: sizes 2,4,…,32768 with 10 runs each.
const (
	DefaultStartSize = 2
	DefaultMaxSize   = 50_000
	DefaultRepeats   = 10
	defaultSeed      = int64(1)
)

// newConfig applies opts over the defaults, in order.
func newConfig(opts ...Option) config {
	cfg := config{
		startSize: DefaultStartSize,
		maxSize:   DefaultMaxSize,
		repeats:   DefaultRepeats,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	if cfg.progress == nil {
		cfg.progress = func(Progress) {}
	}

	return cfg
}

// WithSizes sets the first size and the exclusive upper bound of the doubling
// sequence. Panics unless 2 ≤ start.
func WithSizes(start, limit int) Option {
	if start < 2 {
		panic("bench: WithSizes requires start ≥ 2")
	}
	return func(c *config) {
		c.startSize = start
		c.maxSize = limit
	}
}

// WithRepeats sets the number of runs per size. Panics unless n > 0.
func WithRepeats(n int) Option {
	if n <= 0 {
		panic("bench: WithRepeats requires n > 0")
	}
	return func(c *config) {
		c.repeats = n
	}
}

// WithSeed seeds the RNG shared by every generated point set.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws every point set from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bench: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithPointOptions forwards extra options to pointgen.Generate, after the
// shared RNG. A pointgen.WithSeed here pins every run to the same point set.
func WithPointOptions(opts ...pointgen.Option) Option {
	return func(c *config) {
		c.pointOpts = append(c.pointOpts, opts...)
	}
}

// WithScratchDir round-trips every generated set through a file in dir.
func WithScratchDir(dir string) Option {
	return func(c *config) {
		c.scratchDir = dir
	}
}

// WithProgress registers a hook called before each solver run. Panics on nil.
func WithProgress(fn func(Progress)) Option {
	if fn == nil {
		panic("bench: WithProgress(nil)")
	}
	return func(c *config) {
		c.progress = fn
	}
}
