package beziers

import (
	"cmp"
	"math"
	"slices"
)

// Intersection describes a point where two segments cross.
type Intersection struct {
	// The segments as passed to [Intersect].
	Seg1, Seg2 Segment
	// The parameters of the crossing on Seg1 and Seg2.
	T1, T2 float64
	// The crossing point.
	Point Point
	// Unresolved is set when curve/curve subdivision reached its depth limit
	// before the sub-curves became small enough. T1, T2, and Point are then
	// estimates.
	Unresolved bool
}

type hit struct {
	t1, t2     float64
	pt         Point
	unresolved bool
}

// Intersect returns the points where a and b cross, ordered by their
// parameter on a.
//
// The higher-degree segment drives the computation, but results always
// report T1 on a and T2 on b, so that Intersect(a, b) and Intersect(b, a)
// agree up to the order of parameters. Parallel or coincident lines and
// zero-length lines have no intersections.
//
// Intersect panics if either segment has an invalid Kind.
func Intersect(a, b Segment, opts ...Option) []Intersection {
	o := newOptions(opts)
	swap := a.Degree() < b.Degree()
	s, other := a, b
	if swap {
		s, other = b, a
	}

	var hits []hit
	switch {
	case s.Kind == LineKind:
		hits = intersectLines(s.Line(), other.Line())
	case other.Kind == LineKind:
		hits = intersectCurveLine(s, other.Line())
	default:
		hits = intersectCurves(s, other, o)
	}

	out := make([]Intersection, 0, len(hits))
	for _, h := range hits {
		if swap {
			h.t1, h.t2 = h.t2, h.t1
		}
		out = append(out, Intersection{
			Seg1:       a,
			Seg2:       b,
			T1:         h.t1,
			T2:         h.t2,
			Point:      h.pt,
			Unresolved: h.unresolved,
		})
	}
	slices.SortFunc(out, func(x, y Intersection) int { return cmp.Compare(x.T1, y.T1) })
	return out
}

// intersectLines intersects two line segments. The crossing must lie within
// both segments, allowing for rootEpsilon of slack at the ends.
func intersectLines(l1, l2 Line) []hit {
	d1 := l1.P1.Sub(l1.P0)
	d2 := l2.P1.Sub(l2.P0)
	det := d1.Cross(d2)
	if math.Abs(det) <= 1e-9*d1.Hypot()*d2.Hypot() {
		// Parallel, coincident, or degenerate.
		return nil
	}
	w := l2.P0.Sub(l1.P0)
	t := w.Cross(d2) / det
	u := w.Cross(d1) / det
	if t < -rootEpsilon || t > 1+rootEpsilon || u < -rootEpsilon || u > 1+rootEpsilon {
		return nil
	}
	t = clamp(t, 0, 1)
	u = clamp(u, 0, 1)
	return []hit{{t1: t, t2: u, pt: l1.Eval(t)}}
}

// intersectCurveLine moves the line onto the positive x-axis and finds the
// parameters at which the equally transformed curve has a zero y
// coordinate. A root is a crossing if its x coordinate lies within the
// line's length.
func intersectCurveLine(c Segment, l Line) []hit {
	length := l.Length()
	if length == 0 {
		return nil
	}
	aligned := c.Transform(AlignLine(l.P0, l.P1))
	var out []hit
	for _, t := range aligned.AxisRoots(YAxis) {
		u := aligned.Eval(t).X / length
		if u < -rootEpsilon || u > 1+rootEpsilon {
			continue
		}
		out = append(out, hit{t1: t, t2: clamp(u, 0, 1), pt: c.Eval(t)})
	}
	return out
}

// leaf is a pair of parameter windows, one per curve, in which subdivision
// located a crossing.
type leaf struct {
	r1, r2     [2]float64
	unresolved bool
}

func (l leaf) touches(o leaf) bool {
	const epsilon = 1e-9
	return l.r1[0] <= o.r1[1]+epsilon && o.r1[0] <= l.r1[1]+epsilon &&
		l.r2[0] <= o.r2[1]+epsilon && o.r2[0] <= l.r2[1]+epsilon
}

func (l leaf) union(o leaf) leaf {
	return leaf{
		r1:         [2]float64{min(l.r1[0], o.r1[0]), max(l.r1[1], o.r1[1])},
		r2:         [2]float64{min(l.r2[0], o.r2[0]), max(l.r2[1], o.r2[1])},
		unresolved: l.unresolved || o.unresolved,
	}
}

// intersectCurves finds crossings of two curves by recursively halving both
// and discarding pairs whose control boxes are disjoint. Pairs whose boxes
// have both shrunk below the precision area are leaves. Adjacent leaves
// belong to the same crossing and are merged, and each merged estimate is
// then polished with Newton's method.
func intersectCurves(a, b Segment, o options) []hit {
	var leaves []leaf
	capped := 0
	var subdivide func(s1, s2 Segment, depth int)
	subdivide = func(s1, s2 Segment, depth int) {
		b1 := s1.ControlBox()
		b2 := s2.ControlBox()
		if !b1.Overlaps(b2) {
			return
		}
		if b1.Area() < o.precision && b2.Area() < o.precision {
			leaves = append(leaves, leaf{r1: s1.Range, r2: s2.Range})
			return
		}
		if depth >= o.maxDepth {
			leaves = append(leaves, leaf{r1: s1.Range, r2: s2.Range, unresolved: true})
			capped++
			return
		}
		l1, r1 := s1.Subdivide()
		l2, r2 := s2.Subdivide()
		subdivide(l1, l2, depth+1)
		subdivide(l1, r2, depth+1)
		subdivide(r1, l2, depth+1)
		subdivide(r1, r2, depth+1)
	}
	subdivide(a.withRange(0, 1), b.withRange(0, 1), 0)
	if capped > 0 {
		Logger().Debug("curve subdivision reached depth limit",
			"max_depth", o.maxDepth, "leaves", capped, "seg1", a, "seg2", b)
	}

	var out []hit
	for _, l := range mergeLeaves(leaves) {
		t1 := 0.5 * (l.r1[0] + l.r1[1])
		t2 := 0.5 * (l.r2[0] + l.r2[1])
		t1, t2 = refineCrossing(a, b, t1, t2)
		if slices.ContainsFunc(out, func(h hit) bool {
			return math.Abs(h.t1-t1) < 1e-7 && math.Abs(h.t2-t2) < 1e-7
		}) {
			continue
		}
		out = append(out, hit{
			t1:         t1,
			t2:         t2,
			pt:         a.Eval(t1).Midpoint(b.Eval(t2)),
			unresolved: l.unresolved,
		})
	}
	return out
}

// mergeLeaves merges leaves whose windows touch on both curves, until no
// two of the remaining leaves touch.
func mergeLeaves(leaves []leaf) []leaf {
	var clusters []leaf
	for _, l := range leaves {
		for {
			merged := false
			n := 0
			for _, c := range clusters {
				if c.touches(l) {
					l = l.union(c)
					merged = true
				} else {
					clusters[n] = c
					n++
				}
			}
			clusters = clusters[:n]
			if !merged {
				break
			}
		}
		clusters = append(clusters, l)
	}
	return clusters
}

// refineCrossing runs a few Newton iterations on a(t1) − b(t2) = 0. It
// returns the original estimate if the Jacobian becomes singular, if an
// iterate leaves the unit square, or if refinement does not reduce the
// distance between the two points.
func refineCrossing(a, b Segment, t1, t2 float64) (float64, float64) {
	const (
		iterations = 8
		converged  = 1e-12
		singular   = 1e-12
	)
	da := a.Derivative()
	db := b.Derivative()
	s1, s2 := t1, t2
	for range iterations {
		f := a.Eval(s1).Sub(b.Eval(s2))
		if f.Hypot() < converged {
			break
		}
		j1 := Vec2(da.Eval(s1))
		j2 := Vec2(db.Eval(s2)).Negate()
		det := j1.Cross(j2)
		if math.Abs(det) < singular {
			Logger().Debug("newton refinement hit singular jacobian", "t1", t1, "t2", t2)
			return t1, t2
		}
		// Solve j1·Δ1 + j2·Δ2 = −f with Cramer's rule.
		nf := f.Negate()
		s1 += nf.Cross(j2) / det
		s2 += j1.Cross(nf) / det
		if s1 < -rootEpsilon || s1 > 1+rootEpsilon || s2 < -rootEpsilon || s2 > 1+rootEpsilon {
			Logger().Debug("newton refinement left the unit square", "t1", t1, "t2", t2)
			return t1, t2
		}
	}
	s1 = clamp(s1, 0, 1)
	s2 = clamp(s2, 0, 1)
	if a.Eval(s1).Distance(b.Eval(s2)) > a.Eval(t1).Distance(b.Eval(t2)) {
		return t1, t2
	}
	return s1, s2
}
