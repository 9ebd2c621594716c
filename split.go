package beziers

import "slices"

// splitEpsilon is the smallest local parameter distance from either end of a
// segment at which a split is performed. Closer splits would produce
// zero-length fragments.
const splitEpsilon = 1e-8

// SplitPoint identifies a position on a path: a segment index and a
// parameter on that segment.
type SplitPoint struct {
	Segment int
	T       float64
}

// SplitPathAt splits the segments of p at the given points and returns the
// resulting path. The points may be given in any order. Points with
// out-of-range segment indices, and points that would produce a fragment
// shorter than 1e-8 in parameter space, are ignored. Splitting at no points
// returns a copy of p.
//
// Each fragment's Range records the window of its source segment that it
// covers.
func SplitPathAt(p Path, points []SplitPoint) Path {
	byIndex := make(map[int][]float64)
	for _, sp := range points {
		if sp.Segment < 0 || sp.Segment >= len(p.Segments) {
			continue
		}
		byIndex[sp.Segment] = append(byIndex[sp.Segment], sp.T)
	}

	out := Path{Segments: make([]Segment, 0, len(p.Segments)+len(points)), Closed: p.Closed}
	for i, seg := range p.Segments {
		ts, ok := byIndex[i]
		if !ok {
			out.Segments = append(out.Segments, seg)
			continue
		}
		out.Segments = append(out.Segments, splitSegmentAt(seg, ts)...)
	}
	return out
}

// splitSegmentAt splits seg at the given parameters, applying them left to
// right. After a split at t, the remainder covers [t, 1], so a later
// parameter u is remapped to (u−t)/(1−t) on it.
func splitSegmentAt(seg Segment, ts []float64) []Segment {
	ts = slices.Clone(ts)
	slices.Sort(ts)
	var out []Segment
	applied := 0.0
	rest := seg.withRange(0, 1)
	for _, t := range ts {
		lt := (t - applied) / (1 - applied)
		if lt < splitEpsilon || lt > 1-splitEpsilon {
			continue
		}
		var left Segment
		left, rest = rest.Split(lt)
		out = append(out, left)
		applied = t
	}
	out = append(out, rest)
	// Express the fragments' windows in the source segment's parent.
	for i := range out {
		out[i].Range = [2]float64{seg.ParentT(out[i].Range[0]), seg.ParentT(out[i].Range[1])}
	}
	return out
}

// AddExtremes returns p with every segment split at its horizontal and
// vertical extrema, as reported by [Segment.Extremes].
func AddExtremes(p Path) Path {
	var points []SplitPoint
	for i, seg := range p.Segments {
		for _, t := range seg.Extremes() {
			points = append(points, SplitPoint{Segment: i, T: t})
		}
	}
	return SplitPathAt(p, points)
}
