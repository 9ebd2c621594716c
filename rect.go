package beziers

import "math"

// Rect is an axis-aligned rectangle. Bounding boxes of segments and paths are
// represented as rectangles with non-negative width and height.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// boundingRect returns the smallest rectangle containing all points. It
// returns the zero Rect for an empty list.
func boundingRect(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Area returns the area of the rectangle. It is never negative.
func (r Rect) Area() float64 {
	return math.Abs(r.Width() * r.Height())
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Overlaps reports whether r and o share at least one point. Rectangles that
// only touch along an edge or at a corner overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 &&
		o.X0 <= r.X1 &&
		r.Y0 <= o.Y1 &&
		o.Y0 <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Path returns the rectangle as a closed path of four lines, running
// clockwise in a y-down coordinate system.
func (r Rect) Path() Path {
	p0 := Pt(r.X0, r.Y0)
	p1 := Pt(r.X1, r.Y0)
	p2 := Pt(r.X1, r.Y1)
	p3 := Pt(r.X0, r.Y1)
	return Path{
		Segments: []Segment{
			NewLine(p0, p1),
			NewLine(p1, p2),
			NewLine(p2, p3),
			NewLine(p3, p0),
		},
		Closed: true,
	}
}
