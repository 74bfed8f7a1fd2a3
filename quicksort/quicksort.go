package quicksort

import "github.com/katalvlaran/closestpair/point"

// Sort orders points ascending by point.Point.Less, in place.
func Sort(points []point.Point) {
	sortRange(points, 0, len(points))
}

// IsSorted reports whether points is ascending (non-decreasing) in point order.
// Complexity: O(N).
func IsSorted(points []point.Point) bool {
	var i int
	for i = 1; i < len(points); i++ {
		if points[i].Less(points[i-1]) {
			return false
		}
	}

	return true
}

// Median3 picks the median of points[start], points[mid] and points[end-1],
// where mid = start + (end-start)/2, moves it to end-1 and returns it.
// The range must hold at least one point.
//
// The first point is the median when exactly one of the other two is smaller
// than it; the middle point likewise. Otherwise the last point already is.
func Median3(points []point.Point, start, end int) point.Point {
	var (
		mid    = start + (end-start)/2
		first  = points[start]
		middle = points[mid]
		last   = points[end-1]
	)

	if middle.Less(first) != last.Less(first) {
		points[start], points[end-1] = points[end-1], points[start]

		return first
	}
	if first.Less(middle) != last.Less(middle) {
		points[mid], points[end-1] = points[end-1], points[mid]

		return middle
	}

	return last
}

// sortRange sorts points[start:end]; end is exclusive.
func sortRange(points []point.Point, start, end int) {
	if start+1 >= end {
		return
	}
	pivotPos := partition(points, start, end)
	sortRange(points, start, pivotPos)
	sortRange(points, pivotPos+1, end)
}

// partition places a pivot at its final position in points[start:end] with
// every smaller point before it, and returns that position.
func partition(points []point.Point, start, end int) int {
	if end-start == 2 {
		if points[start+1].Less(points[start]) {
			points[start], points[start+1] = points[start+1], points[start]
		}

		return start
	}

	// Pivot now sits at end-1.
	pivot := Median3(points, start, end)

	var (
		pos = start
		i   int
	)
	for i = start; i < end-1; i++ {
		if points[i].Less(pivot) {
			points[i], points[pos] = points[pos], points[i]
			pos++
		}
	}
	points[end-1], points[pos] = points[pos], points[end-1]

	return pos
}
