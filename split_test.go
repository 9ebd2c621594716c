package beziers

import (
	"testing"
)

func TestSplitPathAtNothing(t *testing.T) {
	p := NewRect(0, 0, 10, 10)
	diff(t, SplitPathAt(p, nil), p)
}

func TestSplitPathAt(t *testing.T) {
	p := MustPath([]Segment{
		NewCubic(Pt(0, 0), Pt(30, 100), Pt(70, 100), Pt(100, 0)),
		NewLine(Pt(100, 0), Pt(0, 0)),
	}, true)
	got := SplitPathAt(p, []SplitPoint{
		{Segment: 0, T: 0.75},
		{Segment: 1, T: 0.5},
		{Segment: 0, T: 0.25},
		// Ignored: out of range, and too close to the ends.
		{Segment: 2, T: 0.5},
		{Segment: -1, T: 0.5},
		{Segment: 1, T: 1e-10},
		{Segment: 1, T: 1},
	})
	if got.Len() != 5 {
		t.Fatalf("got %d segments, want 5", got.Len())
	}
	if !got.Closed {
		t.Error("split path is no longer closed")
	}
	for i, seg := range got.Segments {
		next := got.Segments[(i+1)%got.Len()]
		assertNear(t, seg.End(), next.Start(), 1e-9)
	}

	wantRanges := [][2]float64{{0, 0.25}, {0.25, 0.75}, {0.75, 1}, {0, 0.5}, {0.5, 1}}
	for i, seg := range got.Segments {
		diff(t, seg.Range, wantRanges[i])
	}
	assertNear(t, got.Segments[1].Start(), p.Segments[0].Eval(0.25), 1e-9)
	assertNear(t, got.Segments[2].Start(), p.Segments[0].Eval(0.75), 1e-9)
	assertNear(t, got.Segments[4].Start(), Pt(50, 0), 1e-9)

	// The fragments trace the same curve.
	assertNear(t, got.Segments[1].Eval(0.5), p.Segments[0].Eval(0.5), 1e-9)
	if a, b := got.SignedArea(), p.SignedArea(); !closeTo(a, b) {
		t.Errorf("split changed the area from %v to %v", b, a)
	}
}

func TestSplitPathAtSubsegment(t *testing.T) {
	// Splitting a fragment reports windows of the original segment.
	seg := NewCubic(Pt(0, 0), Pt(30, 100), Pt(70, 100), Pt(100, 0))
	_, right := seg.Split(0.5)
	p := Path{Segments: []Segment{right}}
	got := SplitPathAt(p, []SplitPoint{{Segment: 0, T: 0.5}})
	diff(t, got.Segments[0].Range, [2]float64{0.5, 0.75})
	diff(t, got.Segments[1].Range, [2]float64{0.75, 1})
}

func TestAddExtremes(t *testing.T) {
	p := MustPath([]Segment{
		NewCubic(Pt(0, 0), Pt(30, 100), Pt(70, 100), Pt(100, 0)),
		NewLine(Pt(100, 0), Pt(0, 0)),
	}, true)
	got := AddExtremes(p)
	if got.Len() != 3 {
		t.Fatalf("got %d segments, want 3", got.Len())
	}
	assertNear(t, got.Segments[0].End(), Pt(50, 75), 1e-9)
	// A path without extrema stays as it is.
	r := NewRect(0, 0, 1, 1)
	diff(t, AddExtremes(r), r)
}
