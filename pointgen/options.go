package pointgen

import "math/rand"

// Option customizes Generate by mutating a config before any point is drawn.
type Option func(*config)

// config holds every knob Generate reads. Later options override earlier ones.
type config struct {
	rng        *rand.Rand
	halfX      int
	halfY      int
	continuous bool
}

// newConfig applies opts over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		halfX: DefaultHalfExtent,
		halfY: DefaultHalfExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed draws from a new *rand.Rand seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBounds sets the half-extents of the sampling box. Panics unless both
// are positive.
func WithBounds(halfX, halfY int) Option {
	if halfX <= 0 || halfY <= 0 {
		panic("pointgen: WithBounds requires positive half-extents")
	}
	return func(c *config) {
		c.halfX = halfX
		c.halfY = halfY
	}
}

// WithContinuous draws float coordinates instead of integers.
func WithContinuous() Option {
	return func(c *config) {
		c.continuous = true
	}
}
