// Package closestpair finds the closest pair of points in the plane and
// compares a brute-force baseline against a divide-and-conquer solver.
//
// What is inside?
//
//	point/      — immutable 2D point (github.com/golang/geo/r2), distance & ordering
//	quicksort/  — in-place median-of-three quicksort over points
//	partition/  — recursive halving of a sorted sequence into leaves of ≤3 points
//	result/     — the result record both solvers return
//	bruteforce/ — exhaustive O(n²) pair scan, standalone baseline
//	divconq/    — divide-and-conquer solver: leaves + seam merge
//	pointio/    — flat "x,y" text format for point sets
//	pointgen/   — seeded synthetic point sets with structural dedupe
//	bench/      — doubling-size comparison harness with pluggable sinks
//
// Quick ASCII example:
//
//	  y
//	  │        •(5,6)
//	  │        •(5,5)      ← closest pair, distance 1
//	  │
//	  •───•────────── x
//	(0,0) (1,0)
//
// Every algorithm is single-threaded and deterministic; randomness only enters
// through an explicitly seeded *rand.Rand in pointgen.
//
//	go install github.com/katalvlaran/closestpair/cmd/closestpair@latest
package closestpair
