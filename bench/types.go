package bench

import (
	"errors"

	"github.com/katalvlaran/closestpair/result"
)

// ErrDisagreement indicates the two solvers found different minimum distances.
var ErrDisagreement = errors.New("bench: solvers disagree on the minimum distance")

// Algorithm labels one of the two compared solvers.
type Algorithm string

const (
	// Recursive is the divide-and-conquer solver (divconq).
	Recursive Algorithm = "recursive"
	// BruteForce is the quadratic baseline (bruteforce).
	BruteForce Algorithm = "brute_force"
)

// Average holds per-size means over all runs.
type Average struct {
	// Elapsed is the mean elapsed time in nanoseconds.
	Elapsed float64
	// Iterations is the mean iteration count.
	Iterations float64
}

// Progress describes the solver run about to start.
type Progress struct {
	Algorithm Algorithm
	Size      int
	Run       int // 0-based
	Repeats   int
}

// Sink consumes the results of one algorithm.
// For every size Run calls Begin once, Consume once per run, then End.
type Sink interface {
	Begin(size int) error
	Consume(r result.Result) error
	End(avg Average) error
}
