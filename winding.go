package beziers

import "slices"

// WindingNumber returns the number of times p winds around pt, ignoring
// orientation.
//
// Two horizontal rays are cast from pt, one to the left and one to the right
// of the path's control box. Every crossing of a ray with the path counts +1
// or −1 depending on whether the path runs up or down there. Crossings at the
// same point, such as at a vertex shared by two segments, are counted once
// when the path keeps its direction and cancel out when it turns back.
// The result is the larger magnitude of the two rays' sums, which tolerates
// a ray that grazes a vertex.
func WindingNumber(p Path, pt Point) int {
	if len(p.Segments) == 0 {
		return 0
	}
	box := p.ControlBox()
	margin := 1 + 0.01*max(box.Width(), box.Height())
	left := NewLine(pt, Pt(box.X0-margin, pt.Y))
	right := NewLine(pt, Pt(box.X1+margin, pt.Y))
	return max(abs(rayWinding(p, left)), abs(rayWinding(p, right)))
}

// PointIsInside reports whether pt is inside p under the even-odd rule.
func PointIsInside(p Path, pt Point) bool {
	return WindingNumber(p, pt)%2 == 1
}

// rayHit is a counted crossing of a ray; dir is zeroed once a crossing in
// the opposite direction at the same point has cancelled it.
type rayHit struct {
	pt  Point
	dir int
}

func rayWinding(p Path, ray Segment) int {
	const samePoint = 1e-6
	var (
		sum  int
		seen []rayHit
	)
	for _, seg := range p.Segments {
		for _, x := range Intersect(seg, ray) {
			dir := 0
			switch dy := seg.Derivative().Eval(x.T1).Y; {
			case dy > 0:
				dir = 1
			case dy < 0:
				dir = -1
			default:
				continue
			}
			k := slices.IndexFunc(seen, func(h rayHit) bool { return h.pt.Near(x.Point, samePoint) })
			if k < 0 {
				seen = append(seen, rayHit{x.Point, dir})
				sum += dir
				continue
			}
			if seen[k].dir == -dir {
				sum -= seen[k].dir
				seen[k].dir = 0
			}
		}
	}
	return sum
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
