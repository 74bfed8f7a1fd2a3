// Package partition splits a sorted point sequence into small x-ordered
// groups ("leaves") for the divide-and-conquer closest-pair solver.
//
// What:
//
//   - Split recursively halves the index range [start,end) at
//     mid = start + (end-start)/2 until a range holds at most 3 points, and
//     emits one Partition per such leaf, left to right.
//   - A Partition is a read-only view (sub-slice, no copy) of the sorted input
//     with its x-bounds cached: MinX is the X of its first point, MaxX of its last.
//   - New wraps an arbitrary non-empty sequence, e.g. a seam band.
//
// Instrumentation:
//
//	Result.Iterations counts every node of the recursion tree (split nodes and
//	leaves). It is reported, never used for correctness.
//
// Invariants:
//
//   - Concatenating the leaves in order yields the input sequence.
//   - Every leaf holds 1..3 points; with ≥2 input points every leaf holds ≥2.
//
// Complexity: O(N) time, O(N/2) partitions, O(log N) recursion depth.
//
// Errors:
//
//   - ErrEmptyInput: Split or New received no points.
package partition
