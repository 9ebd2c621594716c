package beziers

import "math"

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		est += wi * ddNorm2 / dNorm2
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Split(0.5)
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

// Split splits the cubic at t using de Casteljau's algorithm.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// HasLoop reports whether the cubic crosses itself. If it does, it returns
// the two parameters, in ascending order, at which the curve passes through
// the crossing point.
//
// The test classifies the curve by the signs of its inflection polynomial,
// following Loop and Blinn's "Resolution Independent Curve Rendering using
// Programmable Graphics Hardware".
func (c CubicBez) HasLoop() ([2]float64, bool) {
	a1 := c.P0.X*(c.P3.Y-c.P2.Y) + c.P0.Y*(c.P2.X-c.P3.X) + c.P3.X*c.P2.Y - c.P3.Y*c.P2.X
	a2 := c.P1.X*(c.P0.Y-c.P3.Y) + c.P1.Y*(c.P3.X-c.P0.X) + c.P0.X*c.P3.Y - c.P0.Y*c.P3.X
	a3 := c.P2.X*(c.P1.Y-c.P0.Y) + c.P2.Y*(c.P0.X-c.P1.X) + c.P1.X*c.P0.Y - c.P1.Y*c.P0.X
	d3 := 3 * a3
	d2 := d3 - a2
	d1 := d2 - a2 + a1
	l := math.Sqrt(d1*d1 + d2*d2 + d3*d3)
	if l == 0 {
		return [2]float64{}, false
	}
	d1 /= l
	d2 /= l
	d3 /= l
	disc := 3*d2*d2 - 4*d1*d3
	if disc >= 0 || d1 == 0 {
		return [2]float64{}, false
	}
	r := math.Sqrt(-disc)
	t1 := (d2 + r) / (2 * d1)
	t2 := (d2 - r) / (2 * d1)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 <= 0 || t2 >= 1 {
		return [2]float64{}, false
	}
	return [2]float64{t1, t2}, true
}

// TunniPoint returns the point where the lines through the two handles of
// the cubic meet. It reports false if the handles are parallel or if the
// point lies implausibly far away, more than five times the curve's length
// from its start.
func (c CubicBez) TunniPoint() (Point, bool) {
	p, ok := Line{c.P0, c.P1}.CrossingPoint(Line{c.P2, c.P3})
	if !ok {
		return Point{}, false
	}
	if p.Distance(c.P0) > 5*c.Arclen(DefaultAccuracy) {
		return Point{}, false
	}
	return p, true
}

// Balance returns the cubic with both handles set to the same fraction of
// the distance towards the Tunni point, the average of the fractions they
// had before. Curves without a usable Tunni point are returned unchanged.
func (c CubicBez) Balance() CubicBez {
	p, ok := c.TunniPoint()
	if !ok {
		return c
	}
	f1 := 0.43
	if d := c.P0.Distance(p); d != 0 {
		f1 = c.P0.Distance(c.P1) / d
	}
	f2 := 0.73
	if d := c.P3.Distance(p); d != 0 {
		f2 = c.P3.Distance(c.P2) / d
	}
	avg := (f1 + f2) / 2
	if avg <= 0 || avg >= 1 {
		return c
	}
	c.P1 = c.P0.Lerp(p, avg)
	c.P2 = c.P3.Lerp(p, avg)
	return c
}

func (c CubicBez) Seg() Segment {
	return NewCubic(c.P0, c.P1, c.P2, c.P3)
}
