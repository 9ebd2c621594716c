package beziers

import "fmt"

// endpointMargin excludes crossings this close to either end of a segment, in
// parameter space. Such crossings are shared vertices rather than true
// intersections.
const endpointMargin = 0.01

// PathIntersection is an intersection between segments of paths, together
// with the indices of those segments.
type PathIntersection struct {
	Intersection
	// Index1 is the index of Seg1 in the first path, Index2 that of Seg2 in
	// the second.
	Index1, Index2 int
}

func (x PathIntersection) String() string {
	return fmt.Sprintf("%d@%g × %d@%g at %s", x.Index1, x.T1, x.Index2, x.T2, x.Point)
}

func interior(t float64) bool {
	return t > endpointMargin && t < 1-endpointMargin
}

// pathIntersections returns the crossings between segments of a and b that
// lie in the interior of both segments. If same is set, a and b are the same
// path and only pairs i < j are tested.
func pathIntersections(a, b Path, same bool, opts []Option) []PathIntersection {
	var out []PathIntersection
	for i, sa := range a.Segments {
		j0 := 0
		if same {
			j0 = i + 1
		}
		for j := j0; j < len(b.Segments); j++ {
			for _, x := range Intersect(sa, b.Segments[j], opts...) {
				if !interior(x.T1) || !interior(x.T2) {
					continue
				}
				out = append(out, PathIntersection{Intersection: x, Index1: i, Index2: j})
			}
		}
	}
	return out
}

// SelfIntersections returns the points where p crosses itself: loops within
// single cubic segments, and crossings between distinct segments. Crossings
// within 1% of a segment's end, in parameter space, are not reported.
func SelfIntersections(p Path, opts ...Option) []PathIntersection {
	var out []PathIntersection
	for i, seg := range p.Segments {
		ts, ok := seg.HasLoop()
		if !ok {
			continue
		}
		out = append(out, PathIntersection{
			Intersection: Intersection{
				Seg1:  seg,
				Seg2:  seg,
				T1:    ts[0],
				T2:    ts[1],
				Point: seg.Eval(ts[0]),
			},
			Index1: i,
			Index2: i,
		})
	}
	return append(out, pathIntersections(p, p, true, opts)...)
}

// RemoveOverlap returns the outline of a closed, self-intersecting path: the
// path with the parts that lie inside other parts of itself removed.
//
// The path is split at its self-intersections. Fragments that lie inside
// another part of the path, that is, fragments whose midpoint has a winding
// number of 2 or more, are discarded. The rest are walked from fragment to
// fragment; at each intersection the walk continues along the outgoing
// fragment that turns left the most.
//
// A path without self-intersections is returned unchanged, which makes
// RemoveOverlap idempotent. It returns [ErrOpenPath] if p is not closed.
func RemoveOverlap(p Path, opts ...Option) (Path, error) {
	if !p.Closed {
		return Path{}, fmt.Errorf("remove overlap: %w", ErrOpenPath)
	}
	o := newOptions(opts)
	xs := SelfIntersections(p, opts...)
	if len(xs) == 0 {
		return p, nil
	}

	points := make([]SplitPoint, 0, 2*len(xs))
	for _, x := range xs {
		points = append(points,
			SplitPoint{Segment: x.Index1, T: x.T1},
			SplitPoint{Segment: x.Index2, T: x.T2})
	}
	split := SplitPathAt(p, points)

	var frags arena
	frags.addRing(split.Segments)
	for i := range frags {
		frags[i].winding = WindingNumber(p, frags[i].seg.Eval(0.5))
	}

	// A junction lists the fragments leaving one intersection point that
	// have not been taken yet.
	type junction struct {
		pt       Point
		outgoing []int
	}
	junctions := make([]junction, len(xs))
	for k, x := range xs {
		junctions[k].pt = x.Point
		for i := range frags {
			if frags.startsNear(i, []Point{x.Point}, o.tolerance) {
				junctions[k].outgoing = append(junctions[k].outgoing, i)
			}
		}
	}

	// The fragment leaving the lowest start point, ordered by x then y, lies
	// on the outline whatever order the segments come in.
	start := noFragment
	for i := range frags {
		if frags[i].winding >= 2 {
			continue
		}
		if start == noFragment || lowerStart(frags[i].seg.Start(), frags[start].seg.Start()) {
			start = i
		}
	}
	if start == noFragment {
		Logger().Warn("remove overlap: every fragment is covered twice", "fragments", len(frags))
		return p, nil
	}

	var out []Segment
	for cur, steps := start, 0; !frags[cur].visited; steps++ {
		if steps > 4*len(frags) {
			Logger().Warn("remove overlap: walk did not return to its start", "fragments", len(frags))
			break
		}
		f := &frags[cur]
		f.visited = true
		out = append(out, f.seg)
		next := f.next
		end := f.seg.End()
		for k := range junctions {
			j := &junctions[k]
			if !end.Near(j.pt, o.tolerance) {
				continue
			}
			best, bestTurn := -1, 0.0
			in := f.seg.Tangent(1)
			for idx, c := range j.outgoing {
				if frags[c].winding >= 2 {
					continue
				}
				turn := turnAngle(in, frags[c].seg.Tangent(0))
				if best == -1 || turn > bestTurn {
					best, bestTurn = idx, turn
				}
			}
			if best != -1 {
				next = j.outgoing[best]
				j.outgoing = append(j.outgoing[:best], j.outgoing[best+1:]...)
			}
			break
		}
		cur = next
	}
	return fragmentPath(out), nil
}

func lowerStart(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}
