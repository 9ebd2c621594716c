package beziers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// polygon returns the closed path through the given points.
func polygon(pts ...Point) Path {
	segs := make([]Segment, len(pts))
	for i, pt := range pts {
		segs[i] = NewLine(pt, pts[(i+1)%len(pts)])
	}
	return Path{Segments: segs, Closed: true}
}

// pathPoints returns the start points of a path's segments.
func pathPoints(p Path) []Point {
	out := make([]Point, len(p.Segments))
	for i, seg := range p.Segments {
		out[i] = seg.Start()
	}
	return out
}

// ring returns the closed ring through the start points of a polygonal path.
func ring(p Path) orb.Ring {
	r := make(orb.Ring, 0, len(p.Segments)+1)
	for _, pt := range pathPoints(p) {
		r = append(r, orb.Point{pt.X, pt.Y})
	}
	return append(r, r[0])
}
