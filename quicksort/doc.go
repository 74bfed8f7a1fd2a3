// Package quicksort sorts point sequences in place by the (X, Y) order of
// point.Point.
//
// Algorithm:
//
//  1. Ranges of 0 or 1 points are sorted.
//  2. A range of exactly 2 points is sorted by one compare-and-swap.
//  3. Otherwise the pivot is the median of the first, middle and last points,
//     picked with two XOR-of-comparison tests and parked at the end of the range.
//  4. A Lomuto scan moves every point smaller than the pivot to the front; the
//     pivot is swapped into its final slot and both sides are sorted recursively.
//
// No second full-size buffer is allocated. The sort is not stable; points
// carry no payload beyond their coordinates, so stability is irrelevant.
//
// Complexity:
//
//   - Time:   O(N log N) expected, O(N²) worst case (median-of-three mitigates
//     but does not remove adversarial inputs; many equal points also degrade).
//   - Memory: O(log N) expected recursion depth, O(N) worst case.
package quicksort
