package pointgen

import (
	"math/rand"

	"github.com/katalvlaran/closestpair/point"
)

// Generate returns n pairwise-distinct random points in draw order.
//
// Complexity: O(n) expected draws while n is well below the box capacity;
// rejection sampling slows down as n approaches it.
func Generate(n int, opts ...Option) ([]point.Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	cfg := newConfig(opts...)
	if !cfg.continuous && int64(2*cfg.halfX)*int64(2*cfg.halfY) < int64(n) {
		return nil, ErrTooManyPoints
	}

	var (
		out  = make([]point.Point, 0, n)
		seen = make(map[point.Point]struct{}, n)
		p    point.Point
		ok   bool
	)
	for len(out) < n {
		p = draw(cfg)
		if _, ok = seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}

// draw samples one point from the configured box.
func draw(cfg config) point.Point {
	if cfg.continuous {
		return point.New(uniform(cfg.rng, cfg.halfX), uniform(cfg.rng, cfg.halfY))
	}

	return point.New(
		float64(cfg.rng.Intn(2*cfg.halfX)-cfg.halfX),
		float64(cfg.rng.Intn(2*cfg.halfY)-cfg.halfY),
	)
}

// uniform returns a float in [-half, half).
func uniform(r *rand.Rand, half int) float64 {
	return (r.Float64()*2 - 1) * float64(half)
}

// Collinear returns (0,y),(1,y),…,(n-1,y). It is already sorted.
// A non-positive n yields an empty slice.
func Collinear(n int, y float64) []point.Point {
	if n <= 0 {
		return []point.Point{}
	}
	out := make([]point.Point, n)
	for i := range out {
		out[i] = point.New(float64(i), y)
	}

	return out
}
