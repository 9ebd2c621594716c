package beziers

import (
	"fmt"
	"slices"
)

// DefaultAccuracy is the accuracy used for arc length computations when the
// caller has no particular requirement.
const DefaultAccuracy = 1e-6

// extremaMargin excludes extrema this close to either end of a segment.
// Extrema at the very ends produce slivers when splitting and are treated as
// noise.
const extremaMargin = 0.01

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case QuadKind:
		return "Quad"
	case CubicKind:
		return "Cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Axis selects a coordinate of a point.
type Axis int

const (
	XAxis Axis = iota
	YAxis
)

// Segment represents a segment of a Bézier path. This type acts as a tagged
// union over [Line], [QuadBez], and [CubicBez]. Only the first Kind-dependent
// number of points are meaningful: two for lines, three for quadratics, and
// four for cubics.
//
// Segments are values. Operations such as splitting return new segments and
// never modify their receiver.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point

	// Range is the interval of the parent curve's parameter space that this
	// segment covers. Splitting a segment at t produces children covering
	// [lo, lo+(hi-lo)t] and [lo+(hi-lo)t, hi]. The zero value means [0, 1].
	Range [2]float64
}

func NewLine(p0, p1 Point) Segment {
	return Segment{Kind: LineKind, P0: p0, P1: p1, Range: [2]float64{0, 1}}
}

func NewQuad(p0, p1, p2 Point) Segment {
	return Segment{Kind: QuadKind, P0: p0, P1: p1, P2: p2, Range: [2]float64{0, 1}}
}

func NewCubic(p0, p1, p2, p3 Point) Segment {
	return Segment{Kind: CubicKind, P0: p0, P1: p1, P2: p2, P3: p3, Range: [2]float64{0, 1}}
}

func unhandledKind(k SegmentKind) string {
	return fmt.Sprintf("unhandled case %v", k)
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0.Lerp(seg.P1, 1.0/3.0), seg.P0.Lerp(seg.P1, 2.0/3.0), seg.P1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		panic(unhandledKind(seg.Kind))
	}
}

// Degree returns the polynomial degree of the segment: 1, 2, or 3.
func (seg Segment) Degree() int {
	switch seg.Kind {
	case LineKind:
		return 1
	case QuadKind:
		return 2
	case CubicKind:
		return 3
	default:
		panic(unhandledKind(seg.Kind))
	}
}

// Points returns the segment's control points, starting with its start
// point and ending with its end point.
func (seg Segment) Points() []Point {
	return []Point{seg.P0, seg.P1, seg.P2, seg.P3}[:seg.Degree()+1]
}

func (seg Segment) String() string {
	return fmt.Sprintf("%s%v", seg.Kind, seg.Points())
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		panic(unhandledKind(seg.Kind))
	}
}

// span returns the segment's parameter range, treating the zero value as
// [0, 1].
func (seg Segment) span() (lo, hi float64) {
	if seg.Range == [2]float64{} {
		return 0, 1
	}
	return seg.Range[0], seg.Range[1]
}

// ParentT maps a parameter of the segment to the corresponding parameter of
// the curve it was split from.
func (seg Segment) ParentT(t float64) float64 {
	lo, hi := seg.span()
	return lo + (hi-lo)*t
}

func (seg Segment) withRange(lo, hi float64) Segment {
	seg.Range = [2]float64{lo, hi}
	return seg
}

// Eval evaluates the segment at t.
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		panic(unhandledKind(seg.Kind))
	}
}

// Split splits the segment at t using de Casteljau's algorithm. The two
// halves together trace the same curve as seg, and their ranges partition
// seg's range at the mapped parameter.
func (seg Segment) Split(t float64) (Segment, Segment) {
	var left, right Segment
	switch seg.Kind {
	case LineKind:
		l, r := seg.Line().Split(t)
		left, right = l.Seg(), r.Seg()
	case QuadKind:
		l, r := seg.Quad().Split(t)
		left, right = l.Seg(), r.Seg()
	case CubicKind:
		l, r := seg.Cubic().Split(t)
		left, right = l.Seg(), r.Seg()
	default:
		panic(unhandledKind(seg.Kind))
	}
	lo, hi := seg.span()
	mid := seg.ParentT(t)
	return left.withRange(lo, mid), right.withRange(mid, hi)
}

// Subdivide splits the segment into halves.
func (seg Segment) Subdivide() (Segment, Segment) {
	return seg.Split(0.5)
}

// Derivative returns the hodograph of the segment, a segment one degree
// lower whose points are derivative vectors. The derivative of a line is
// constant and is represented by a degenerate line whose two points are both
// the line's direction vector.
func (seg Segment) Derivative() Segment {
	switch seg.Kind {
	case LineKind:
		d := Point(seg.P1.Sub(seg.P0))
		return NewLine(d, d)
	case QuadKind:
		return seg.Quad().Differentiate().Seg()
	case CubicKind:
		return seg.Cubic().Differentiate().Seg()
	default:
		panic(unhandledKind(seg.Kind))
	}
}

// ControlBox returns the bounding box of the segment's control points. It
// contains the curve but is generally larger than its tight bounding box.
func (seg Segment) ControlBox() Rect {
	return boundingRect(seg.Points()...)
}

// BoundingBox returns the tight bounding box of the curve.
func (seg Segment) BoundingBox() Rect {
	r := boundingRect(seg.Start(), seg.End())
	for _, t := range seg.extrema() {
		r = r.UnionPoint(seg.Eval(t))
	}
	return r
}

// AxisRoots returns the parameters in [0, 1], in ascending order, at which
// the given coordinate of the curve is zero.
func (seg Segment) AxisRoots(axis Axis) []float64 {
	pts := seg.Points()
	v := make([]float64, len(pts))
	for i, pt := range pts {
		if axis == XAxis {
			v[i] = pt.X
		} else {
			v[i] = pt.Y
		}
	}
	return bernsteinRoots(v...)
}

// extrema returns all parameters in [0, 1] at which the derivative has a
// zero x or y component.
func (seg Segment) extrema() []float64 {
	if seg.Kind == LineKind {
		return nil
	}
	d := seg.Derivative()
	out := append(d.AxisRoots(XAxis), d.AxisRoots(YAxis)...)
	slices.Sort(out)
	return slices.Compact(out)
}

// Extremes returns the parameters of the curve's horizontal and vertical
// extrema, in ascending order. Extrema within 0.01 of either end are
// omitted.
func (seg Segment) Extremes() []float64 {
	var out []float64
	for _, t := range seg.extrema() {
		if t >= extremaMargin && t <= 1-extremaMargin {
			out = append(out, t)
		}
	}
	return out
}

// Tangent returns the unit tangent vector at t. Where the derivative
// vanishes, as it does at an endpoint that coincides with its control point,
// the direction towards the nearest distinct control point is used instead.
func (seg Segment) Tangent(t float64) Vec2 {
	const epsilon = 1e-12
	d := Vec2(seg.Derivative().Eval(t))
	if d.Hypot2() > epsilon {
		return d.Normalize()
	}
	pts := seg.Points()
	if t < 0.5 {
		for _, p := range pts[1:] {
			if v := p.Sub(pts[0]); v.Hypot2() > epsilon {
				return v.Normalize()
			}
		}
	} else {
		last := pts[len(pts)-1]
		for i := len(pts) - 2; i >= 0; i-- {
			if v := last.Sub(pts[i]); v.Hypot2() > epsilon {
				return v.Normalize()
			}
		}
	}
	return Vec2{}
}

// Normal returns the unit normal at t, the tangent turned a quarter turn
// from positive x towards positive y.
func (seg Segment) Normal(t float64) Vec2 {
	return seg.Tangent(t).Turn()
}

// Curvature returns the signed curvature at t.
func (seg Segment) Curvature(t float64) float64 {
	d1 := seg.Derivative()
	d := Vec2(d1.Eval(t))
	dd := Vec2(d1.Derivative().Eval(t))
	n := d.Hypot()
	if n == 0 {
		return 0
	}
	return d.Cross(dd) / (n * n * n)
}

// Reverse returns a new segment describing the same curve, traversed in the
// opposite direction. The range is kept.
func (seg Segment) Reverse() Segment {
	switch seg.Kind {
	case LineKind:
		seg.P0, seg.P1 = seg.P1, seg.P0
	case QuadKind:
		seg.P0, seg.P2 = seg.P2, seg.P0
	case CubicKind:
		seg.P0, seg.P1, seg.P2, seg.P3 = seg.P3, seg.P2, seg.P1, seg.P0
	default:
		panic(unhandledKind(seg.Kind))
	}
	return seg
}

func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case CubicKind:
		seg.P3 = seg.P3.Transform(aff)
		fallthrough
	case QuadKind:
		seg.P2 = seg.P2.Transform(aff)
		fallthrough
	case LineKind:
		seg.P0 = seg.P0.Transform(aff)
		seg.P1 = seg.P1.Transform(aff)
	default:
		panic(unhandledKind(seg.Kind))
	}
	return seg
}

func (seg Segment) Translate(v Vec2) Segment {
	return seg.Transform(Translate(v))
}

// Align returns the segment transformed so that it starts at the origin and
// ends on the positive x-axis.
func (seg Segment) Align() Segment {
	return seg.Transform(AlignLine(seg.Start(), seg.End()))
}

func (seg Segment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	case CubicKind:
		return seg.Cubic().Arclen(accuracy)
	default:
		panic(unhandledKind(seg.Kind))
	}
}

// SignedArea returns the signed area under the segment, as a contribution to
// the area of a closed path by Green's theorem.
func (seg Segment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		panic(unhandledKind(seg.Kind))
	}
}

// HasLoop reports whether a cubic segment crosses itself, and if so at which
// two parameters. It always reports false for lines and quadratics.
func (seg Segment) HasLoop() ([2]float64, bool) {
	if seg.Kind != CubicKind {
		return [2]float64{}, false
	}
	return seg.Cubic().HasLoop()
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg Segment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		panic(unhandledKind(seg.Kind))
	}
}

func (seg Segment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}
