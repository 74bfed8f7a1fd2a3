package partition

import (
	"time"

	"github.com/katalvlaran/closestpair/point"
)

// New wraps points as a single Partition with Start=0 and End=len(points).
// The slice is not copied; callers must not mutate it afterwards.
// Returns ErrEmptyInput if points is empty.
func New(points []point.Point) (Partition, error) {
	if len(points) == 0 {
		return Partition{}, ErrEmptyInput
	}

	return view(points, 0, len(points)), nil
}

// Split cuts a sorted sequence into leaves of at most LeafSize points.
// The input is assumed sorted by point order; Split does not check it.
// Returns ErrEmptyInput if sorted is empty.
//
// Complexity: O(N) time and O(N) memory for the leaf headers.
func Split(sorted []point.Point) (Result, error) {
	if len(sorted) == 0 {
		return Result{}, ErrEmptyInput
	}

	began := time.Now()
	leaves := make([]Partition, 0, len(sorted)/2+1)
	iterations := split(sorted, 0, len(sorted), &leaves)

	return Result{
		Partitions: leaves,
		Iterations: iterations,
		Elapsed:    time.Since(began),
	}, nil
}

// split appends the leaves of seq[start:end] to out and returns the number of
// recursion nodes visited, this one included.
func split(seq []point.Point, start, end int, out *[]Partition) int64 {
	if end-start <= LeafSize {
		*out = append(*out, view(seq, start, end))

		return 1
	}

	mid := start + (end-start)/2
	left := split(seq, start, mid, out)
	right := split(seq, mid, end, out)

	return 1 + left + right
}

// view builds the Partition for seq[start:end]. The capacity is clipped so an
// append on the view can never overwrite the neighbouring leaf.
func view(seq []point.Point, start, end int) Partition {
	pts := seq[start:end:end]

	return Partition{
		Points: pts,
		Start:  start,
		End:    end,
		MinX:   pts[0].X,
		MaxX:   pts[len(pts)-1].X,
	}
}
