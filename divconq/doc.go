// Package divconq finds the closest pair of points with a divide-and-conquer
// scheme over an x-sorted sequence.
//
// Algorithm:
//
//  1. Reject inputs with fewer than two points, a non-finite coordinate, or
//     not in point order.
//  2. partition.Split the sequence into leaves of at most three points.
//  3. bruteforce.Scan each leaf, keeping the running minimum d.
//  4. Seam merge, left to right over adjacent leaves (i, i+1): collect the
//     points of leaf i whose X is within d of MinX(i+1), scanning backward from
//     its end, and every point right of the seam whose X is within d of
//     MaxX(i), scanning forward from the start of leaf i+1. When both sides are
//     non-empty, bruteforce.Cross them and keep the result if it is strictly
//     closer.
//
// The forward scan does not stop at leaf i+1's edge: it runs until the x-gap
// reaches d. A pair (p, q) with p in leaf i, q further right and distance
// below d has both points within d of the seam after leaf i in X, so it is
// compared there. This holds for any input, not just well-spread ones.
//
// Each pair is compared at most once: inside its leaf, or at the seam right
// after the leaf of its left point. The solver therefore never does more
// pairwise work than bruteforce.Solve. d only ever shrinks, so later bands get
// narrower. Bands are not filtered by Y; with many points sharing one X the
// right side of a band can span most of the input.
//
// Instrumentation:
//
//	Iterations = split nodes + Σ(1 + leaf pairs) + Σ(1 + seam cross pairs)
//	Elapsed    = split time  + Σ leaf scan time  + Σ seam scan time
//
// Ties: the first minimum found in processing order wins (strict "<").
//
// Complexity: O(N log N) after sorting for well-distributed input;
// O(N²) worst case (at most C(N,2) pair comparisons plus O(N) bookkeeping).
//
// Errors:
//
//   - result.ErrInsufficientPoints: fewer than two points.
//   - result.ErrNonFinitePoint: a NaN or ±Inf coordinate.
//   - ErrUnsorted: Solve input is not ascending in point order.
package divconq
