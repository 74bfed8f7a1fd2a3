package quicksort_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closestpair/point"
	"github.com/katalvlaran/closestpair/quicksort"
)

// reference sorts a copy with the standard library for comparison.
func reference(pts []point.Point) []point.Point {
	out := append([]point.Point(nil), pts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// TestSort_SmallRanges covers the 0, 1 and 2 element base cases.
func TestSort_SmallRanges(t *testing.T) {
	var empty []point.Point
	quicksort.Sort(empty)
	assert.Empty(t, empty)

	one := []point.Point{point.New(3, 3)}
	quicksort.Sort(one)
	assert.Equal(t, []point.Point{point.New(3, 3)}, one)

	two := []point.Point{point.New(2, 0), point.New(1, 5)}
	quicksort.Sort(two)
	assert.Equal(t, []point.Point{point.New(1, 5), point.New(2, 0)}, two)

	tie := []point.Point{point.New(1, 5), point.New(1, 2)}
	quicksort.Sort(tie)
	assert.Equal(t, []point.Point{point.New(1, 2), point.New(1, 5)}, tie)
}

// TestSort_TieBreakOnY verifies that equal X values are ordered by Y.
func TestSort_TieBreakOnY(t *testing.T) {
	pts := []point.Point{
		point.New(1, 3), point.New(0, 9), point.New(1, -1), point.New(1, 0), point.New(0, 2),
	}
	quicksort.Sort(pts)

	want := []point.Point{
		point.New(0, 2), point.New(0, 9), point.New(1, -1), point.New(1, 0), point.New(1, 3),
	}
	if diff := cmp.Diff(want, pts); diff != "" {
		t.Fatalf("sorted mismatch (-want +got):\n%s", diff)
	}
}

// TestSort_RandomMatchesReference sorts random sets of several sizes and
// compares against sort.Slice.
func TestSort_RandomMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{3, 4, 5, 17, 100, 1000} {
		pts := make([]point.Point, n)
		for i := range pts {
			pts[i] = point.New(float64(rng.Intn(50)), float64(rng.Intn(50)))
		}
		want := reference(pts)

		quicksort.Sort(pts)
		require.True(t, quicksort.IsSorted(pts), "n=%d not sorted", n)
		if diff := cmp.Diff(want, pts); diff != "" {
			t.Fatalf("n=%d mismatch (-want +got):\n%s", n, diff)
		}
	}
}

// TestSort_Idempotent checks that sorting a sorted sequence is a fixed point.
func TestSort_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pts := make([]point.Point, 257)
	for i := range pts {
		pts[i] = point.New(rng.Float64(), rng.Float64())
	}
	quicksort.Sort(pts)
	once := append([]point.Point(nil), pts...)

	quicksort.Sort(pts)
	assert.Equal(t, once, pts)
}

// TestSort_AdversarialShapes exercises already sorted, reversed and all-equal input.
func TestSort_AdversarialShapes(t *testing.T) {
	const n = 300
	asc := make([]point.Point, n)
	desc := make([]point.Point, n)
	same := make([]point.Point, n)
	for i := 0; i < n; i++ {
		asc[i] = point.New(float64(i), 0)
		desc[i] = point.New(float64(n-i), 0)
		same[i] = point.New(4, 4)
	}
	for name, pts := range map[string][]point.Point{"asc": asc, "desc": desc, "same": same} {
		want := reference(pts)
		quicksort.Sort(pts)
		assert.Equal(t, want, pts, name)
	}
}

// TestMedian3 checks each of the three pivot outcomes and that the pivot is
// parked at the end of the range.
func TestMedian3(t *testing.T) {
	cases := []struct {
		name  string
		input []point.Point
		want  point.Point
	}{
		{"first is median", []point.Point{point.New(2, 0), point.New(3, 0), point.New(1, 0)}, point.New(2, 0)},
		{"middle is median", []point.Point{point.New(1, 0), point.New(2, 0), point.New(3, 0)}, point.New(2, 0)},
		{"last is median", []point.Point{point.New(1, 0), point.New(3, 0), point.New(2, 0)}, point.New(2, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pts := append([]point.Point(nil), tc.input...)
			got := quicksort.Median3(pts, 0, len(pts))
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want, pts[len(pts)-1], "pivot must be moved to the end")
			require.ElementsMatch(t, tc.input, pts, "median3 only permutes")
		})
	}
}

// TestIsSorted covers the negative case.
func TestIsSorted(t *testing.T) {
	assert.True(t, quicksort.IsSorted(nil))
	assert.True(t, quicksort.IsSorted([]point.Point{point.New(0, 0), point.New(0, 0), point.New(0, 1)}))
	assert.False(t, quicksort.IsSorted([]point.Point{point.New(0, 1), point.New(0, 0)}))
}
