package point

import (
	"math"
	"strconv"

	"github.com/golang/geo/r2"
)

// Point is a 2D coordinate. It is never mutated after construction.
type Point r2.Point

// New returns the point (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// R2 returns p as an r2.Point.
func (p Point) R2() r2.Point {
	return r2.Point(p)
}

// DistanceTo returns the Euclidean distance between p and o.
// It is symmetric and p.DistanceTo(p) == 0.
func (p Point) DistanceTo(o Point) float64 {
	return r2.Point(o).Sub(r2.Point(p)).Norm()
}

// SquaredDistanceTo returns the squared Euclidean distance between p and o.
// Ordering by squared distance matches ordering by distance.
func (p Point) SquaredDistanceTo(o Point) float64 {
	d := r2.Point(o).Sub(r2.Point(p))

	return d.Dot(d)
}

// Compare orders points by X, then by Y.
// Returns -1 if p < o, +1 if p > o and 0 when both coordinates are equal.
func (p Point) Compare(o Point) int {
	switch {
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	}

	return 0
}

// Less reports whether p sorts strictly before o.
func (p Point) Less(o Point) bool {
	return p.X < o.X || (p.X == o.X && p.Y < o.Y)
}

// IsFinite reports whether neither coordinate is NaN or ±Inf.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String renders p as "(x,y)" with the shortest exact decimal form.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
