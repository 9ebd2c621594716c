package beziers

import "math"

// noFragment marks a missing link in a fragment graph.
const noFragment = -1

// fragment is a piece of a split path together with the bookkeeping that the
// overlap and clipping walks need. Links are indices into the owning arena.
type fragment struct {
	seg Segment

	next, prev int
	// neighbour is the fragment of the other path that starts at the same
	// intersection, or noFragment.
	neighbour int

	isIntersection bool
	isEntry        bool
	processed      bool
	visited        bool
	winding        int
}

// arena owns the fragments of one overlap removal or clipping operation.
type arena []fragment

// addRing appends segs as a closed ring of fragments, linking each to its
// successor and predecessor, and returns the index range [lo, hi) of the
// ring.
func (a *arena) addRing(segs []Segment) (lo, hi int) {
	lo = len(*a)
	n := len(segs)
	for i, seg := range segs {
		*a = append(*a, fragment{
			seg:       seg,
			next:      lo + (i+1)%n,
			prev:      lo + (i+n-1)%n,
			neighbour: noFragment,
		})
	}
	return lo, len(*a)
}

// startsNear reports whether fragment i starts within tol of any of pts.
func (a arena) startsNear(i int, pts []Point, tol float64) bool {
	start := a[i].seg.Start()
	for _, pt := range pts {
		if start.Near(pt, tol) {
			return true
		}
	}
	return false
}

// fragmentPath returns the given fragment segments as a closed path. The
// segments become their own parents.
func fragmentPath(segs []Segment) Path {
	out := Path{Segments: make([]Segment, len(segs)), Closed: true}
	for i, seg := range segs {
		out.Segments[i] = seg.withRange(0, 1)
	}
	return out
}

// turnAngle returns the signed angle from the direction in to the direction
// out, in (−π, π].
func turnAngle(in, out Vec2) float64 {
	d := out.Angle() - in.Angle()
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
