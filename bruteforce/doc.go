// Package bruteforce finds the closest pair by examining every unordered pair.
//
// It serves two roles:
//
//   - Scan is the base case of the divide-and-conquer solver: it runs over a
//     leaf partition or an ad hoc seam band and never fails.
//   - Solve is the standalone quadratic baseline over a whole point set.
//
// Both examine each of the C(M,2) pairs exactly once and keep the minimum with
// a strict "<", so when several pairs share the minimum the first one found in
// (i, j) scan order wins.
//
// Complexity: O(M²) time, O(1) extra memory. Iterations == M(M-1)/2.
package bruteforce
