package beziers

import "math"

// Minimum distance between two Bézier curves
//
// This implements the algorithm in "Computing the minimum distance between
// two Bézier curves", Chen et al., *Journal of Computational and Applied
// Mathematics* 229(2009), 294-301

// MinDistance encodes the minimum distance between two segments, as returned
// by [Segment.MinDist].
type MinDistance struct {
	// The shortest distance between any two points on the two curves.
	Distance float64
	// The position of the nearest point on the first curve, as a parameter.
	T1 float64
	// The position of the nearest point on the second curve, as a parameter.
	T2 float64
}

// PathDistance is the minimum distance between two paths, as returned by
// [Path.Distance].
type PathDistance struct {
	MinDistance
	// The indices of the segments on which the nearest points lie.
	Index1, Index2 int
}

func (seg Segment) vecs() []Vec2 {
	pts := seg.Points()
	out := make([]Vec2, len(pts))
	for i, pt := range pts {
		out[i] = Vec2(pt)
	}
	return out
}

// MinDist returns the minimum distance between two segments. Subdivision
// stops once a parameter window is narrower than accuracy.
func (seg Segment) MinDist(other Segment, accuracy float64) MinDistance {
	ret := minDistParam(
		seg.vecs(),
		other.vecs(),
		[2]float64{0.0, 1.0},
		[2]float64{0.0, 1.0},
		accuracy,
		math.Inf(1),
	)
	return MinDistance{
		Distance: math.Sqrt(ret[0]),
		T1:       ret[1],
		T2:       ret[2],
	}
}

// Distance returns the minimum distance between p and q and where it is
// attained. Segment pairs whose bounding boxes are farther apart than the
// best distance found so far are skipped. The distance to an empty path is
// infinite.
func (p Path) Distance(q Path, accuracy float64) PathDistance {
	best := PathDistance{MinDistance: MinDistance{Distance: math.Inf(1)}, Index1: -1, Index2: -1}
	for i, a := range p.Segments {
		boxA := a.BoundingBox()
		for j, b := range q.Segments {
			if rectGap(boxA, b.BoundingBox()) > best.Distance {
				continue
			}
			d := a.MinDist(b, accuracy)
			if d.Distance < best.Distance {
				best = PathDistance{MinDistance: d, Index1: i, Index2: j}
			}
		}
	}
	return best
}

// rectGap returns the distance between two rectangles, or 0 if they overlap.
func rectGap(a, b Rect) float64 {
	dx := max(0, a.X0-b.X1, b.X0-a.X1)
	dy := max(0, a.Y0-b.Y1, b.Y0-a.Y1)
	return math.Hypot(dx, dy)
}

// minDistParam returns the squared minimum distance of two curves, given by
// their control points, within the parameter windows u and v, together with
// the parameters at which it is attained.
func minDistParam(
	bez1, bez2 []Vec2,
	u, v [2]float64,
	epsilon float64,
	bestAlpha float64,
) [3]float64 {
	if len(bez1) == 0 || len(bez2) == 0 {
		panic("called with empty curve")
	}

	n := len(bez1) - 1
	m := len(bez2) - 1
	umin, umax := u[0], u[1]
	vmin, vmax := v[0], v[1]
	corners := [4][3]float64{
		{s(umin, vmin, bez1, bez2), umin, vmin},
		{s(umin, vmax, bez1, bez2), umin, vmax},
		{s(umax, vmin, bez1, bez2), umax, vmin},
		{s(umax, vmax, bez1, bez2), umax, vmax},
	}
	// The nearest corner attains alpha, so report its parameters rather
	// than the window's center.
	nearest := corners[0]
	for _, c := range corners[1:] {
		if c[0] < nearest[0] {
			nearest = c
		}
	}
	alpha := nearest[0]
	if alpha > bestAlpha {
		return nearest
	}

	if math.Abs(umax-umin) < epsilon || math.Abs(vmax-vmin) < epsilon {
		return nearest
	}

	// Property one: D(r>k) > alpha
	isOutside := true
	minDrk := math.Inf(1)
	var minI, minJ int
	for r := range 2 * n {
		for k := range 2 * m {
			d := dRk(r, k, bez1, bez2)
			if d < alpha {
				isOutside = false
			}
			if d < minDrk {
				minDrk = d
				minI, minJ = r, k
			}
		}
	}
	if isOutside {
		return nearest
	}

	// Property two: boundary check
	atStart1, atEnd1 := true, true
	atStart2, atEnd2 := true, true
	for i := range 2 * n {
		for j := range 2 * m {
			dij := dRk(i, j, bez1, bez2)
			if dij < dRk(0, j, bez1, bez2) {
				atStart1 = false
			}
			if dij < dRk(2*n, j, bez1, bez2) {
				atEnd1 = false
			}
			if dij < dRk(i, 0, bez1, bez2) {
				atStart2 = false
			}
			if dij < dRk(i, 2*m, bez1, bez2) {
				atEnd2 = false
			}
		}
	}
	switch {
	case atStart1 && atStart2:
		return corners[0]
	case atStart1 && atEnd2:
		return corners[1]
	case atEnd1 && atStart2:
		return corners[2]
	case atEnd1 && atEnd2:
		return corners[3]
	}

	newUmid := umin + (umax-umin)*(float64(minI)/float64(2*n))
	newVmid := vmin + (vmax-vmin)*(float64(minJ)/float64(2*m))

	// Subdivide
	windows := [4][2][2]float64{
		{{umin, newUmid}, {vmin, newVmid}},
		{{umin, newUmid}, {newVmid, vmax}},
		{{newUmid, umax}, {vmin, newVmid}},
		{{newUmid, umax}, {newVmid, vmax}},
	}
	var out [3]float64
	for i, w := range windows {
		res := minDistParam(bez1, bez2, w[0], w[1], epsilon, alpha)
		if i == 0 || math.IsNaN(res[0]) || res[0] < out[0] {
			out = res
		}
	}
	return out
}

// s is the squared distance between the points at u and v, expressed in
// the product Bernstein basis of degree (2n, 2m).
func s(u, v float64, bez1, bez2 []Vec2) float64 {
	n := len(bez1) - 1
	m := len(bez2) - 1
	summand := 0.0
	for r := range 2*n + 1 {
		for k := range 2*m + 1 {
			summand +=
				dRk(r, k, bez1, bez2) * basisFunction(2*n, r, u) * basisFunction(2*m, k, v)
		}
	}
	return summand
}

// elevatedPoint returns the r-th control point of the curve given by p after
// degree elevation from n to 2n.
func elevatedPoint(r int, p []Vec2) Vec2 {
	n := len(p) - 1
	var out Vec2
	for i := r - min(n, r); i <= min(r, n); i++ {
		out = out.Add(p[i].Mul(float64(choose(n, i)*choose(n, r-i)) / float64(choose(2*n, r))))
	}
	return out
}

func cRk(r, k int, bez1, bez2 []Vec2) float64 {
	return elevatedPoint(r, bez1).Dot(elevatedPoint(k, bez2))
}

func aR(r int, p []Vec2) float64 {
	n := len(p) - 1
	var sum float64
	for i := r - min(n, r); i <= min(r, n); i++ {
		dot := p[i].Dot(p[r-i]) // These are bounds checked by the sum limits
		factor := float64(choose(n, i)*choose(n, r-i)) / float64(choose(2*n, r))
		sum += dot * factor
	}
	return sum
}

func dRk(r, k int, bez1, bez2 []Vec2) float64 {
	// In the paper, B_k is used for the second factor, but it's the same thing
	return aR(r, bez1) + aR(k, bez2) - 2.0*cRk(r, k, bez1, bez2)
}

// Bezier basis function
func basisFunction(n, i int, u float64) float64 {
	return float64(choose(n, i)) * math.Pow(1.0-u, float64(n-i)) * math.Pow(u, float64(i))
}

// Binomial co-efficient, but returning zeros for values outside of domain
func choose(n, k int) uint32 {
	if k > n {
		return 0
	}
	p := 1
	bound := n - k
	for i := 1; i <= bound; i++ {
		p *= n
		p /= i
		n -= 1
	}
	return uint32(p)
}
