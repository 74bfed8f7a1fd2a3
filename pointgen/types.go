package pointgen

import "errors"

var (
	// ErrNegativeCount indicates a negative number of points was requested.
	ErrNegativeCount = errors.New("pointgen: point count must be non-negative")

	// ErrTooManyPoints indicates the integer box cannot hold n distinct points.
	ErrTooManyPoints = errors.New("pointgen: more points requested than the bounds can hold")
)

// Deterministic defaults.
const (
	// DefaultHalfExtent is the default half-width and half-height of the box.
	DefaultHalfExtent = 100_000
)
