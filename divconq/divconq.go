package divconq

import (
	"github.com/katalvlaran/closestpair/bruteforce"
	"github.com/katalvlaran/closestpair/partition"
	"github.com/katalvlaran/closestpair/point"
	"github.com/katalvlaran/closestpair/quicksort"
	"github.com/katalvlaran/closestpair/result"
)

// Solve returns the closest pair of a sequence sorted by point order.
// The input is only read.
//
// Returns result.ErrInsufficientPoints for fewer than two points,
// result.ErrNonFinitePoint for a NaN or ±Inf coordinate and ErrUnsorted if the
// sequence is not ascending.
func Solve(sorted []point.Point) (result.Result, error) {
	if err := result.Validate(sorted); err != nil {
		return result.None(), err
	}
	if !quicksort.IsSorted(sorted) {
		return result.None(), ErrUnsorted
	}

	split, err := partition.Split(sorted)
	if err != nil {
		return result.None(), err
	}

	var (
		best       = result.None()
		iterations = split.Iterations
		elapsed    = split.Elapsed
		leaves     = split.Partitions
		r          result.Result
		i          int
	)

	// Leaves.
	for i = range leaves {
		r = bruteforce.Scan(leaves[i].Points)
		iterations += 1 + r.Iterations
		elapsed += r.Elapsed
		if r.Closer(best) {
			best = r
		}
	}

	// Seams.
	var lhs, rhs []point.Point
	for i = 0; i < len(leaves)-1; i++ {
		lhs, rhs = seamBand(sorted, leaves[i], leaves[i+1], best.Distance, lhs[:0], rhs[:0])
		if len(lhs) == 0 || len(rhs) == 0 {
			continue
		}
		r = bruteforce.Cross(lhs, rhs)
		iterations += 1 + r.Iterations
		elapsed += r.Elapsed
		if r.Closer(best) {
			best = r
		}
	}

	best.Iterations = iterations
	best.Elapsed = elapsed

	return best, nil
}

// SortAndSolve sorts a copy of points with quicksort.Sort and solves it.
// The caller's slice is left untouched.
func SortAndSolve(points []point.Point) (result.Result, error) {
	if err := result.Validate(points); err != nil {
		return result.None(), err
	}
	sorted := make([]point.Point, len(points))
	copy(sorted, points)
	quicksort.Sort(sorted)

	return Solve(sorted)
}

// seamBand collects the candidates around the seam between the adjacent leaves
// left and right, for the current minimum distance d. The left side never
// leaves its leaf; the right side runs on past right while the x-gap allows.
//
// Left side: seq[j] for j from left.End-1 down to left.Start while right.MinX - seq[j].X < d.
// Right side: seq[j] for j from right.Start up while seq[j].X - left.MaxX < d.
func seamBand(seq []point.Point, left, right partition.Partition, d float64, lhs, rhs []point.Point) ([]point.Point, []point.Point) {
	var j int
	for j = left.End - 1; j >= left.Start && right.MinX-seq[j].X < d; j-- {
		lhs = append(lhs, seq[j])
	}
	for j = right.Start; j < len(seq) && seq[j].X-left.MaxX < d; j++ {
		rhs = append(rhs, seq[j])
	}

	return lhs, rhs
}
