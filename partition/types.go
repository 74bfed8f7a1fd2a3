package partition

import (
	"errors"
	"time"

	"github.com/katalvlaran/closestpair/point"
)

// ErrEmptyInput indicates a partition was requested over zero points.
var ErrEmptyInput = errors.New("partition: input must contain at least one point")

// LeafSize is the largest number of points a leaf produced by Split holds.
const LeafSize = 3

// Partition is a non-empty, contiguous, read-only run of x-sorted points.
type Partition struct {
	// Points is a view into the sequence the partition was cut from.
	Points []point.Point

	// Start and End locate Points in that sequence: Points == seq[Start:End].
	Start, End int

	// MinX and MaxX are the X of the first and the last point.
	MinX, MaxX float64
}

// Len returns the number of points in the partition.
func (p Partition) Len() int {
	return len(p.Points)
}

// Result is the outcome of Split.
type Result struct {
	// Partitions are the leaves, left to right.
	Partitions []Partition

	// Iterations is the number of recursion nodes visited.
	Iterations int64

	// Elapsed is the wall time Split took.
	Elapsed time.Duration
}
