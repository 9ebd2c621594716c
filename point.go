package beziers

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*t,
		Y: pt.Y + (o.Y-pt.Y)*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// Near reports whether o lies within distance tol of pt.
func (pt Point) Near(o Point, tol float64) bool {
	return pt.Distance(o) <= tol
}

// Equal reports whether two points are the same up to rounding error. Each
// coordinate may differ by 1e-9, relative to the larger magnitude, or
// absolutely for coordinates close to zero.
func (pt Point) Equal(o Point) bool {
	return closeTo(pt.X, o.X) && closeTo(pt.Y, o.Y)
}

func closeTo(a, b float64) bool {
	const epsilon = 1e-9
	return math.Abs(a-b) <= max(epsilon*max(math.Abs(a), math.Abs(b)), epsilon)
}

// Rotate rotates the point by th radians about the origin.
func (pt Point) Rotate(th float64) Point {
	return pt.Transform(Rotate(th))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
