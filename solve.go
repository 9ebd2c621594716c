package beziers

import (
	"math"
	"slices"
)

// rootEpsilon is how far outside [0, 1] a root may fall and still be
// clamped onto the unit interval.
const rootEpsilon = 1e-9

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		switch {
		case !math.IsInf(root, 0) && !math.IsNaN(root):
			return [2]float64{root}, 1
		case c0 == 0.0 && c1 == 0.0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// QuadraticRoots returns the roots of a t² + b t + c that lie in [0, 1], in
// ascending order.
func QuadraticRoots(a, b, c float64) []float64 {
	if a != 0 && b*b-4*a*c < 0 {
		return nil
	}
	roots, n := SolveQuadratic(c, b, a)
	return unitRoots(roots[:n])
}

// CubicRoots returns the roots of a t³ + b t² + c t + d that lie in [0, 1],
// in ascending order.
//
// The equation is reduced to the depressed cubic x³ + p x + q. Three real
// roots are found with the trigonometric method, one real root with Cardano's
// formula. When a vanishes relative to the other coefficients, the equation
// is solved as a quadratic instead.
func CubicRoots(a, b, c, d float64) []float64 {
	if math.Abs(a) <= 1e-12*max(math.Abs(b), math.Abs(c), math.Abs(d)) {
		return QuadraticRoots(b, c, d)
	}
	b, c, d = b/a, c/a, d/a
	shift := b / 3
	p := (3*c - b*b) / 3
	q := (2*b*b*b - 9*b*c + 27*d) / 27
	disc := q*q/4 + p*p*p/27

	var roots []float64
	switch {
	case disc < 0:
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(clamp(-q/(2*r), -1, 1))
		m := 2 * math.Cbrt(r)
		roots = []float64{
			m*math.Cos(phi/3) - shift,
			m*math.Cos((phi+2*math.Pi)/3) - shift,
			m*math.Cos((phi+4*math.Pi)/3) - shift,
		}
	case disc == 0:
		u := math.Cbrt(-q / 2)
		roots = []float64{2*u - shift, -u - shift}
	default:
		sd := math.Sqrt(disc)
		roots = []float64{math.Cbrt(sd-q/2) - math.Cbrt(sd+q/2) - shift}
	}
	return unitRoots(roots)
}

// bernsteinRoots returns the parameters in [0, 1] at which the Bernstein
// polynomial with the given coefficients is zero. It accepts two, three, or
// four coefficients.
func bernsteinRoots(v ...float64) []float64 {
	switch len(v) {
	case 2:
		if v[0] == v[1] {
			return nil
		}
		return unitRoots([]float64{v[0] / (v[0] - v[1])})
	case 3:
		return QuadraticRoots(v[0]-2*v[1]+v[2], 2*(v[1]-v[0]), v[0])
	case 4:
		return CubicRoots(
			-v[0]+3*v[1]-3*v[2]+v[3],
			3*v[0]-6*v[1]+3*v[2],
			3*(v[1]-v[0]),
			v[0],
		)
	default:
		panic("unreachable")
	}
}

// unitRoots keeps the roots that lie within rootEpsilon of [0, 1], clamps
// them onto it, and returns them sorted without duplicates.
func unitRoots(roots []float64) []float64 {
	var out []float64
	for _, t := range roots {
		if t >= -rootEpsilon && t <= 1+rootEpsilon {
			out = append(out, clamp(t, 0, 1))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
