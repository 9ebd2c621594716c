package beziers_test

import (
	"fmt"
	"math"

	"github.com/curvekit/beziers"
)

func ExampleIntersect() {
	a := beziers.NewLine(beziers.Pt(0, 0), beziers.Pt(10, 10))
	b := beziers.NewLine(beziers.Pt(0, 10), beziers.Pt(10, 0))
	for _, x := range beziers.Intersect(a, b) {
		fmt.Println(x.T1, x.T2, x.Point)
	}
	// Output:
	// 0.5 0.5 (5, 5)
}

func ExamplePath_Union() {
	a := beziers.NewRect(0, 0, 100, 100)
	b := beziers.NewRect(50, 50, 100, 100)
	shapes, err := a.Union(b)
	if err != nil {
		panic(err)
	}
	for _, s := range shapes {
		fmt.Printf("%d segments, area %g\n", s.Len(), math.Abs(s.SignedArea()))
	}
	// Output:
	// 8 segments, area 17500
}

func ExampleRemoveOverlap() {
	p := beziers.MustParseSVGPath("M0 0H100V100H50V50H150V150H0Z")
	out, err := beziers.RemoveOverlap(p)
	if err != nil {
		panic(err)
	}
	fmt.Println(out.SVG(beziers.SVGOptions{}))
	// Output:
	// M0,0 L100,0 L100,50 L150,50 L150,150 L0,150 L0,0 Z
}

func ExampleParseSVGPath() {
	p, err := beziers.ParseSVGPath("m0 0c0 10 10 10 10 0s10 -10 10 0")
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Len(), p.Closed)
	fmt.Println(p.SVG(beziers.SVGOptions{}))
	// Output:
	// 2 false
	// M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0
}
