// Package pointgen produces synthetic point sets for tests and benchmarks.
//
// What:
//
//   - Generate draws n pairwise-distinct points from an explicitly seeded RNG.
//     By default coordinates are integers in [-HalfX, HalfX) × [-HalfY, HalfY);
//     WithContinuous switches to uniform float coordinates in the same box.
//   - Duplicates are dropped through a map keyed by point.Point, so equality is
//     structural (same coordinates ⇒ same point).
//   - Collinear builds the deterministic fixture (0,y),(1,y),…,(n-1,y).
//
// Determinism:
//
//	There is no package-level random state. Same options and seed ⇒ same
//	points, in the same order. Seed 0 maps to a fixed default seed.
//
// Options:
//
//   - WithSeed(seed)      — fresh *rand.Rand from seed.
//   - WithRand(rng)       — caller-owned RNG (advanced by Generate).
//   - WithBounds(hx, hy)  — half-extents of the sampling box.
//   - WithContinuous()    — float coordinates instead of integers.
//
// Errors:
//
//   - ErrNegativeCount: n < 0.
//   - ErrTooManyPoints: n exceeds the number of distinct integer points in the box.
package pointgen
