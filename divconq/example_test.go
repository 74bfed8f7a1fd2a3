package divconq_test

import (
	"fmt"

	"github.com/katalvlaran/closestpair/divconq"
	"github.com/katalvlaran/closestpair/point"
)

// ExampleSortAndSolve finds the closest pair of an unsorted set.
func ExampleSortAndSolve() {
	pts := []point.Point{
		point.New(5, 6), point.New(0, 0), point.New(9, 1), point.New(5, 5), point.New(2, 0),
	}

	r, err := divconq.SortAndSolve(pts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%v %v d=%g\n", r.P1, r.P2, r.Distance)
	// Output:
	// (5,5) (5,6) d=1
}
