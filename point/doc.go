// Package point defines the immutable 2D point used by every solver in
// closestpair, together with its distance and ordering operations.
//
// What:
//
//   - Point is a value type over r2.Point (github.com/golang/geo/r2).
//   - DistanceTo returns the Euclidean distance; SquaredDistanceTo skips the root.
//   - Compare / Less implement the lexicographic (X, Y) order that the sorter
//     and the divide-and-conquer solver rely on.
//
// Equality is structural: two points with the same coordinates are ==, which
// lets a Point key a map when a generator needs to drop duplicates.
//
// Complexity: every operation is O(1) and allocation-free.
package point
