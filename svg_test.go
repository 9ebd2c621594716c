package beziers

import (
	"errors"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"", ""},
		{"M10 0L20 0H30V10C40 10 50 10 50 0Q55 10 60 0Z", "M10,0 L20,0 L30,0 L30,10 C40,10 50,10 50,0 Q55,10 60,0 L10,0 Z"},
		{"m10 0l10 0h10v10c10 0 20 0 20 -10q5 10 10 0z", "M10,0 L20,0 L30,0 L30,10 C40,10 50,10 50,0 Q55,10 60,0 L10,0 Z"},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", "M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0"},
		{"M0 0c0 10 10 10 10 0s10 -10 10 0", "M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0"},
		{"M0 0Q5 10 10 0T20 0", "M0,0 Q5,10 10,0 Q15,-10 20,0"},
		{"M0 0q5 10 10 0t10 0", "M0,0 Q5,10 10,0 Q15,-10 20,0"},
		{"M0 0S10 10 20 0", "M0,0 C0,0 10,10 20,0"},
		{"M0 0L5 5T10 0", "M0,0 L5,5 Q5,5 10,0"},
		{"M0 0 10 0 10 10", "M0,0 L10,0 L10,10"},
		{"m5 5 10 0", "M5,5 L15,5"},
		{"M0,0L10-10", "M0,0 L10,-10"},
		{"M.5.5L1,1", "M0.5,0.5 L1,1"},
		{" M 0 , 0\n\tL 1 , 1 ", "M0,0 L1,1"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVGPath(tt.orig)
			test.Error(t, err)
			test.T(t, p.SVG(SVGOptions{}), tt.res)
		})
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	var tts = []struct {
		orig string
		err  error
	}{
		{"5", ErrSyntax},
		{"MM", ErrSyntax},
		{"M0 0L10", ErrSyntax},
		{"M0 0X5", ErrSyntax},
		{"M0 0Z5 5", ErrSyntax},
		{"L10 0", ErrSyntax},
		{"M0 0A5 5 0 0 1 10 0", ErrUnsupportedCommand},
		{"M0 0L1 1M5 5L6 6", ErrDiscontinuous},
		{"M0 0L1 1ZL6 6", ErrDiscontinuous},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			_, err := ParseSVGPath(tt.orig)
			test.That(t, err != nil)
			test.That(t, errors.Is(err, tt.err), err)
		})
	}
}

func TestParseSVGPathClosed(t *testing.T) {
	p := MustParseSVGPath("M0 0H10V10Z")
	test.That(t, p.Closed)
	test.T(t, p.Len(), 3)
	test.Float(t, p.SignedArea(), 50)

	p = MustParseSVGPath("M0 0H10V10H0V0Z")
	test.T(t, p.Len(), 4)
}

func TestPathSVG(t *testing.T) {
	p := MustPath([]Segment{NewCubic(Pt(10, 10), Pt(20, 20), Pt(30, 30), Pt(40, 40))}, false)
	test.T(t, p.SVG(SVGOptions{}), "M10,10 C20,20 30,30 40,40")

	c := NewCircle(Pt(0, 0), 1)
	s := c.SVG(SVGOptions{MaxPrecision: 3})
	test.That(t, strings.HasPrefix(s, "M1,0 C1,0.552 0.552,1 0,1 "), s)
	test.That(t, strings.HasSuffix(s, " Z"), s)
}

func TestPathSVGRoundTrip(t *testing.T) {
	c := NewCircle(Pt(12.5, -3.25), 7)
	p, err := ParseSVGPath(c.SVG(SVGOptions{}))
	test.Error(t, err)
	test.T(t, p.Len(), c.Len())
	test.That(t, p.Closed)
	for i, seg := range p.Segments {
		want := c.Segments[i].Points()
		for j, pt := range seg.Points() {
			test.That(t, pt.Near(want[j], 1e-9), pt, want[j])
		}
	}
}

type errWriter struct{}

var errWrite = errors.New("write failed")

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPathWriteSVGError(t *testing.T) {
	err := NewRect(0, 0, 1, 1).WriteSVG(errWriter{}, SVGOptions{})
	test.That(t, errors.Is(err, errWrite), err)
}
