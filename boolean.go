package beziers

import "fmt"

// Clip combines two closed paths and returns the resulting shapes.
//
// Both paths are split at their mutual crossings. Every fragment that starts
// at a crossing is marked as entering or leaving the other path, alternating
// along each path. The first mark of a is entryA when a's start lies inside
// b, and its negation otherwise; likewise for b. Shapes are then traced from
// the crossings of a. From an entering fragment the walk follows its path
// forwards, from a leaving one backwards, and at the next crossing it
// switches over to the other path.
//
// [Path.Union], [Path.Intersection], and [Path.Difference] choose entryA and
// entryB for the respective operation.
//
// If the paths do not cross, Clip returns a alone. It returns [ErrOpenPath]
// if either path is not closed.
func Clip(a, b Path, entryA, entryB bool, opts ...Option) ([]Path, error) {
	if !a.Closed || !b.Closed {
		return nil, fmt.Errorf("clip: %w", ErrOpenPath)
	}
	o := newOptions(opts)
	xs := pathIntersections(a, b, false, opts)
	if len(xs) == 0 {
		return []Path{a}, nil
	}

	pointsA := make([]SplitPoint, len(xs))
	pointsB := make([]SplitPoint, len(xs))
	crossings := make([]Point, len(xs))
	for k, x := range xs {
		pointsA[k] = SplitPoint{Segment: x.Index1, T: x.T1}
		pointsB[k] = SplitPoint{Segment: x.Index2, T: x.T2}
		crossings[k] = x.Point
	}
	splitA := SplitPathAt(a, pointsA)
	splitB := SplitPathAt(b, pointsB)

	var frags arena
	loA, hiA := frags.addRing(splitA.Segments)
	loB, hiB := frags.addRing(splitB.Segments)
	frags.markCrossings(loA, hiA, crossings, b, entryA, o.tolerance)
	frags.markCrossings(loB, hiB, crossings, a, entryB, o.tolerance)

	for i := loA; i < hiA; i++ {
		if !frags[i].isIntersection {
			continue
		}
		start := frags[i].seg.Start()
		for j := loB; j < hiB; j++ {
			if frags[j].isIntersection && start.Near(frags[j].seg.Start(), o.tolerance) {
				frags[i].neighbour = j
				frags[j].neighbour = i
			}
		}
	}

	var shapes []Path
	for {
		cur := noFragment
		for i := loA; i < hiA; i++ {
			if frags[i].isIntersection && !frags[i].processed {
				cur = i
				break
			}
		}
		if cur == noFragment {
			break
		}
		shapes = append(shapes, frags.trace(cur))
	}
	return shapes, nil
}

// markCrossings flags the fragments in [lo, hi) that start at one of the
// crossings and assigns them alternating entry flags.
func (a arena) markCrossings(lo, hi int, crossings []Point, other Path, entry bool, tol float64) {
	isEntry := entry != !PointIsInside(other, a[lo].seg.Start())
	for i := lo; i < hi; i++ {
		if !a.startsNear(i, crossings, tol) {
			continue
		}
		a[i].isIntersection = true
		a[i].isEntry = isEntry
		isEntry = !isEntry
	}
}

// trace walks one shape starting at the crossing fragment cur.
func (a arena) trace(cur int) Path {
	var segs []Segment
	for steps := 0; ; steps++ {
		if steps > 4*len(a) {
			Logger().Warn("clip: traversal did not close", "fragments", len(a))
			break
		}
		a[cur].processed = true
		if nb := a[cur].neighbour; nb != noFragment {
			a[nb].processed = true
		}
		if a[cur].isEntry {
			for {
				segs = append(segs, a[cur].seg)
				cur = a[cur].next
				if a[cur].isIntersection {
					break
				}
			}
		} else {
			for {
				cur = a[cur].prev
				segs = append(segs, a[cur].seg.Reverse())
				if a[cur].isIntersection {
					break
				}
			}
		}
		nb := a[cur].neighbour
		if nb == noFragment {
			Logger().Warn("clip: crossing has no counterpart on the other path",
				"point", a[cur].seg.Start())
			break
		}
		cur = nb
		if a[cur].processed {
			break
		}
	}
	return fragmentPath(segs)
}

// Union returns the shapes covered by p or o.
func (p Path) Union(o Path, opts ...Option) ([]Path, error) {
	return Clip(p, o, true, true, opts...)
}

// Intersection returns the shapes covered by both p and o.
func (p Path) Intersection(o Path, opts ...Option) ([]Path, error) {
	return Clip(p, o, false, false, opts...)
}

// Difference returns the shapes covered by p but not by o.
func (p Path) Difference(o Path, opts ...Option) ([]Path, error) {
	return Clip(p, o, true, false, opts...)
}
