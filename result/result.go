// Package result defines the record both closest-pair solvers return and the
// sentinel error they share.
package result

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/closestpair/point"
)

var (
	// ErrInsufficientPoints is returned when a closest-pair computation receives
	// fewer than two points, so no pair exists.
	ErrInsufficientPoints = errors.New("closestpair: at least two points are required")

	// ErrNonFinitePoint is returned when a point has a NaN or ±Inf coordinate.
	ErrNonFinitePoint = errors.New("closestpair: point coordinates must be finite")
)

// Validate checks the preconditions shared by both solvers: at least two
// points, every coordinate finite. Complexity: O(N).
func Validate(points []point.Point) error {
	if len(points) < 2 {
		return ErrInsufficientPoints
	}
	for _, p := range points {
		if !p.IsFinite() {
			return ErrNonFinitePoint
		}
	}

	return nil
}

// Result is the outcome of a closest-pair computation or of one of its steps.
//
// Invariant: when Found, Distance == P1.DistanceTo(P2) and no pair examined by
// the producing computation is strictly closer. When !Found, P1 and P2 are zero
// and Distance is +Inf. A found pair may itself be +Inf apart when the distance
// of two finite points overflows float64.
type Result struct {
	// P1, P2 are the closest pair, in the order they were discovered.
	P1, P2 point.Point

	// Found is false when fewer than two points were examined.
	Found bool

	// Distance is the Euclidean distance between P1 and P2.
	Distance float64

	// Iterations counts pairwise comparisons plus bookkeeping steps.
	Iterations int64

	// Elapsed is the measured computation time.
	Elapsed time.Duration
}

// None returns the empty result: no pair, +Inf distance, zero counters.
func None() Result {
	return Result{Distance: math.Inf(1)}
}

// Of builds a found result for the pair (p1, p2).
func Of(p1, p2 point.Point) Result {
	return Result{P1: p1, P2: p2, Found: true, Distance: p1.DistanceTo(p2)}
}

// Closer reports whether r holds a pair strictly closer than o.
// Any found pair beats an empty o, even at +Inf. Equal distances are not
// closer, so the first minimum found is kept.
func (r Result) Closer(o Result) bool {
	return r.Found && (!o.Found || r.Distance < o.Distance)
}
