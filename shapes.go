package beziers

import "math"

// circleArm is the handle length, relative to the radius, of a cubic Bézier
// approximating a quarter circle with minimal radial error.
//
// Solution from http://spencermortensen.com/articles/bezier-circle/
const circleArm = 0.551915024494

// NewCircle returns a closed path of four cubic segments approximating the
// circle with the given center and radius. The path starts at the point with
// the largest x coordinate and runs towards positive y.
func NewCircle(center Point, r float64) Path {
	const n = 4
	x, y := center.Splat()
	a := circleArm
	segs := make([]Segment, 0, n)
	start := Pt(x+r, y)
	last := start
	for ix := 1; ix <= n; ix++ {
		th1 := math.Pi / 2 * float64(ix)
		th0 := th1 - math.Pi/2
		s0, c0 := math.Sincos(th0)
		var s1, c1 float64
		if ix == n {
			s1, c1 = 0, 1
		} else {
			s1, c1 = math.Sincos(th1)
		}
		end := Pt(x+r*c1, y+r*s1)
		if ix == n {
			end = start
		}
		segs = append(segs, NewCubic(
			last,
			Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
			Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
			end,
		))
		last = end
	}
	return Path{Segments: segs, Closed: true}
}

// NewRect returns the closed path of the rectangle with top-left corner
// (x, y), width w and height h.
func NewRect(x, y, w, h float64) Path {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}.Path()
}
