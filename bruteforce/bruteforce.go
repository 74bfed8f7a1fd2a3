package bruteforce

import (
	"time"

	"github.com/katalvlaran/closestpair/point"
	"github.com/katalvlaran/closestpair/result"
)

// Scan returns the closest pair among points, comparing every pair once.
// With fewer than two points the result is result.None() (plus timing).
// The first pair is always taken, so an overflowing +Inf distance still
// yields a found pair.
//
// Iterations is the number of pairs examined: M(M-1)/2.
func Scan(points []point.Point) result.Result {
	var (
		began = time.Now()
		best  = result.None()
		n     = len(points)
		i, j  int
		d     float64
		first point.Point
	)

	for i = 0; i < n-1; i++ {
		first = points[i]
		for j = i + 1; j < n; j++ {
			best.Iterations++
			d = first.DistanceTo(points[j])
			if !best.Found || d < best.Distance {
				best.P1, best.P2 = first, points[j]
				best.Distance = d
				best.Found = true
			}
		}
	}
	best.Elapsed = time.Since(began)

	return best
}

// Cross returns the closest pair with one point in left and the other in
// right, comparing each of the len(left)·len(right) pairs once. Pairs within a
// side are never compared. If either side is empty the result is
// result.None() (plus timing).
func Cross(left, right []point.Point) result.Result {
	var (
		began = time.Now()
		best  = result.None()
		d     float64
	)

	for _, p := range left {
		for _, q := range right {
			best.Iterations++
			d = p.DistanceTo(q)
			if !best.Found || d < best.Distance {
				best.P1, best.P2 = p, q
				best.Distance = d
				best.Found = true
			}
		}
	}
	best.Elapsed = time.Since(began)

	return best
}

// Solve is the quadratic baseline over the full point set. The input order
// does not affect the distance, only which pair wins a tie.
// Returns result.ErrInsufficientPoints when fewer than two points are given
// and result.ErrNonFinitePoint when a coordinate is NaN or ±Inf.
func Solve(points []point.Point) (result.Result, error) {
	if err := result.Validate(points); err != nil {
		return result.None(), err
	}

	return Scan(points), nil
}
