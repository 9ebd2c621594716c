package beziers

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// crossing holds the point as a pair of floats so that it is compared
// approximately rather than with [Point.Equal].
type crossing struct {
	T1, T2 float64
	Point  [2]float64
}

func crossings(xs []Intersection) []crossing {
	out := make([]crossing, len(xs))
	for i, x := range xs {
		out[i] = crossing{x.T1, x.T2, [2]float64{x.Point.X, x.Point.Y}}
	}
	return out
}

func TestIntersect(t *testing.T) {
	cubic := NewCubic(Pt(100, 240), Pt(30, 60), Pt(210, 230), Pt(160, 30))
	line := NewLine(Pt(25, 260), Pt(230, 20))
	arch := NewCubic(Pt(0, 0), Pt(30, 100), Pt(70, 100), Pt(100, 0))
	bowl := NewCubic(Pt(0, 80), Pt(30, -20), Pt(70, -20), Pt(100, 80))

	tests := []struct {
		name string
		a, b Segment
		want []crossing
	}{
		{
			"lines",
			NewLine(Pt(0, 0), Pt(10, 10)),
			NewLine(Pt(0, 10), Pt(10, 0)),
			[]crossing{{0.5, 0.5, [2]float64{5, 5}}},
		},
		{
			"cubic/line",
			cubic, line,
			[]crossing{
				{0.11751703145177911, 0.2921956183155126, [2]float64{84.9001, 189.8731}},
				{0.5185917923071014, 0.4919697932378442, [2]float64{125.8538, 141.9272}},
				{0.8678866100310736, 0.7018566663878242, [2]float64{168.8806, 91.5544}},
			},
		},
		{
			"line/cubic",
			line, cubic,
			[]crossing{
				{0.2921956183155126, 0.11751703145177911, [2]float64{84.9001, 189.8731}},
				{0.4919697932378442, 0.5185917923071014, [2]float64{125.8538, 141.9272}},
				{0.7018566663878242, 0.8678866100310736, [2]float64{168.8806, 91.5544}},
			},
		},
		{
			"cubic/cubic",
			arch, bowl,
			[]crossing{
				{0.15843497446801338, 0.15843497446801338, [2]float64{14.93265737871604, 40}},
				{0.8415650255319865, 0.8415650255319865, [2]float64{85.06734262128396, 40}},
			},
		},
		{
			"parallel lines",
			NewLine(Pt(0, 0), Pt(10, 0)),
			NewLine(Pt(0, 1), Pt(10, 1)),
			nil,
		},
		{
			"coincident lines",
			NewLine(Pt(0, 0), Pt(10, 0)),
			NewLine(Pt(5, 0), Pt(15, 0)),
			nil,
		},
		{
			"disjoint lines",
			NewLine(Pt(0, 0), Pt(1, 1)),
			NewLine(Pt(5, 0), Pt(4, 1)),
			nil,
		},
		{
			"zero-length line",
			cubic,
			NewLine(Pt(125.8538, 141.9272), Pt(125.8538, 141.9272)),
			nil,
		},
		{
			"disjoint curves",
			arch,
			arch.Translate(Vec(0, 200)),
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.a, tt.b)
			// Points are given to four decimals.
			diff(t, crossings(got), tt.want, cmpopts.EquateApprox(0, 1e-4), cmpopts.EquateEmpty())
			for _, x := range got {
				if x.Unresolved {
					t.Errorf("%v: unexpectedly unresolved", x)
				}
				assertNear(t, tt.a.Eval(x.T1), x.Point, 1e-6)
				assertNear(t, tt.b.Eval(x.T2), x.Point, 1e-6)
			}
		})
	}
}

func TestIntersectParameters(t *testing.T) {
	arch := NewCubic(Pt(0, 0), Pt(30, 100), Pt(70, 100), Pt(100, 0))
	bowl := NewCubic(Pt(0, 80), Pt(30, -20), Pt(70, -20), Pt(100, 80))
	got := Intersect(arch, bowl)
	if len(got) != 2 {
		t.Fatalf("got %d intersections, want 2", len(got))
	}
	diff(t, got[0].T1, 0.15843497446801338, cmpopts.EquateApprox(0, 1e-9))
	diff(t, got[1].T1, 0.8415650255319865, cmpopts.EquateApprox(0, 1e-9))
	diff(t, got[0].Seg1, arch)
	diff(t, got[0].Seg2, bowl)
}

func TestIntersectSymmetric(t *testing.T) {
	segs := []Segment{
		NewLine(Pt(25, 260), Pt(230, 20)),
		NewQuad(Pt(0, 100), Pt(100, -50), Pt(200, 100)),
		NewCubic(Pt(100, 240), Pt(30, 60), Pt(210, 230), Pt(160, 30)),
		NewCubic(Pt(0, 80), Pt(30, -20), Pt(70, -20), Pt(100, 80)),
	}
	for i, a := range segs {
		for _, b := range segs[i+1:] {
			ab := Intersect(a, b)
			ba := Intersect(b, a)
			if len(ab) != len(ba) {
				t.Errorf("%s × %s: %d vs. %d intersections", a, b, len(ab), len(ba))
				continue
			}
			for _, x := range ab {
				found := false
				for _, y := range ba {
					if math.Abs(x.T1-y.T2) < 1e-6 && math.Abs(x.T2-y.T1) < 1e-6 {
						found = true
					}
				}
				if !found {
					t.Errorf("%s × %s: no counterpart for %v", a, b, x)
				}
			}
		}
	}
}

func TestIntersectDepthLimit(t *testing.T) {
	arch := NewCubic(Pt(0, 0), Pt(30, 100), Pt(70, 100), Pt(100, 0))
	bowl := NewCubic(Pt(0, 80), Pt(30, -20), Pt(70, -20), Pt(100, 80))
	got := Intersect(arch, bowl, WithMaxDepth(2))
	if len(got) == 0 {
		t.Fatal("expected estimates")
	}
	for _, x := range got {
		if !x.Unresolved {
			t.Errorf("%v: expected to be unresolved", x)
		}
	}
}
