package bruteforce_test

import (
	"fmt"

	"github.com/katalvlaran/closestpair/bruteforce"
	"github.com/katalvlaran/closestpair/point"
)

// ExampleSolve runs the quadratic baseline on four points.
func ExampleSolve() {
	pts := []point.Point{point.New(0, 0), point.New(4, 0), point.New(5, 5), point.New(5, 6)}

	r, err := bruteforce.Solve(pts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%v %v d=%g iterations=%d\n", r.P1, r.P2, r.Distance, r.Iterations)
	// Output:
	// (5,5) (5,6) d=1 iterations=6
}
