package beziers

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb/planar"
)

func overlapPolygon() Path {
	return polygon(
		Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(50, 100),
		Pt(50, 50), Pt(150, 50), Pt(150, 150), Pt(0, 150),
	)
}

func loopPath() Path {
	return MustPath([]Segment{
		NewCubic(Pt(0, 0), Pt(150, 100), Pt(-50, 100), Pt(100, 0)),
		NewLine(Pt(100, 0), Pt(0, 0)),
	}, true)
}

func TestSelfIntersections(t *testing.T) {
	tests := []struct {
		name string
		p    Path
		want []Point
	}{
		{"square", NewRect(0, 0, 100, 100), nil},
		{"overlap", overlapPolygon(), []Point{Pt(100, 50)}},
		{"bow tie", polygon(Pt(0, 0), Pt(100, 100), Pt(100, 0), Pt(0, 100)), []Point{Pt(50, 50)}},
		{"loop", loopPath(), []Point{Pt(50, 42.857142857142925)}},
		{"circle", NewCircle(Pt(0, 0), 50), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := SelfIntersections(tt.p)
			if len(xs) != len(tt.want) {
				t.Fatalf("got %v, want intersections at %v", xs, tt.want)
			}
			for i, x := range xs {
				assertNear(t, x.Point, tt.want[i], 1e-6)
			}
		})
	}
}

func TestRemoveOverlap(t *testing.T) {
	got, err := RemoveOverlap(overlapPolygon())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Closed {
		t.Error("result is not closed")
	}
	diff(t, pathPoints(got), []Point{
		Pt(0, 0), Pt(100, 0), Pt(100, 50), Pt(150, 50), Pt(150, 150), Pt(0, 150),
	})
	if a := math.Abs(got.SignedArea()); math.Abs(a-20000) > 1e-6 {
		t.Errorf("got area %v, want 20000", a)
	}
	if a := math.Abs(planar.Area(ring(got))); math.Abs(a-20000) > 1e-6 {
		t.Errorf("ring of result has area %v, want 20000", a)
	}
	if xs := SelfIntersections(got); len(xs) != 0 {
		t.Errorf("result still intersects itself at %v", xs)
	}
	for _, seg := range got.Segments {
		diff(t, seg.Range, [2]float64{0, 1})
	}

	again, err := RemoveOverlap(got)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, again, got)
}

func TestRemoveOverlapSegmentOrder(t *testing.T) {
	// Straight edges drawn as quadratics, starting at different corners.
	pts := pathPoints(overlapPolygon())
	for shift := range len(pts) {
		var segs []Segment
		for i := range pts {
			p0, p1 := pts[(i+shift)%len(pts)], pts[(i+shift+1)%len(pts)]
			segs = append(segs, NewQuad(p0, p0.Midpoint(p1), p1))
		}
		got, err := RemoveOverlap(MustPath(segs, true))
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Segments) != 6 {
			t.Errorf("shift %d: got %d segments, want 6", shift, len(got.Segments))
		}
		if a := math.Abs(got.SignedArea()); math.Abs(a-20000) > 1e-3 {
			t.Errorf("shift %d: got area %v, want 20000", shift, a)
		}
		if a := math.Abs(planar.Area(ring(got))); math.Abs(a-20000) > 1e-3 {
			t.Errorf("shift %d: ring of result has area %v, want 20000", shift, a)
		}
		if xs := SelfIntersections(got); len(xs) != 0 {
			t.Errorf("shift %d: result still intersects itself at %v", shift, xs)
		}
	}
}

func TestRemoveOverlapLoop(t *testing.T) {
	p := loopPath()
	got, err := RemoveOverlap(p)
	if err != nil {
		t.Fatal(err)
	}
	if xs := SelfIntersections(got); len(xs) != 0 {
		t.Errorf("result still intersects itself at %v", xs)
	}
	if a, b := got.SignedArea(), p.SignedArea(); math.Abs(a-b) > 1e-6 {
		t.Errorf("got area %v, want %v", a, b)
	}
}

func TestRemoveOverlapUnchanged(t *testing.T) {
	for _, p := range []Path{NewRect(0, 0, 10, 10), NewCircle(Pt(0, 0), 5)} {
		got, err := RemoveOverlap(p)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, got, p)
	}
}

func TestRemoveOverlapOpen(t *testing.T) {
	p := overlapPolygon()
	p.Closed = false
	if _, err := RemoveOverlap(p); !errors.Is(err, ErrOpenPath) {
		t.Errorf("got error %v, want ErrOpenPath", err)
	}
}

func TestTurnAngle(t *testing.T) {
	tests := []struct {
		in, out Vec2
		want    float64
	}{
		{Vec(1, 0), Vec(1, 0), 0},
		{Vec(1, 0), Vec(0, 1), math.Pi / 2},
		{Vec(1, 0), Vec(0, -1), -math.Pi / 2},
		{Vec(-1, 0.001), Vec(-1, -0.001), 0.002},
		{Vec(1, 0), Vec(-1, 0), math.Pi},
	}
	for _, tt := range tests {
		if got := turnAngle(tt.in, tt.out); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("turnAngle(%s, %s) = %v, want %v", tt.in, tt.out, got, tt.want)
		}
	}
}
