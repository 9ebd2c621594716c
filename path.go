package beziers

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// joinTolerance is the largest gap between consecutive segments that still
// counts as contiguous.
const joinTolerance = 1e-6

// Path is a sequence of contiguous segments. A closed path's last segment
// ends where its first segment starts.
//
// The zero value is an empty, open path.
type Path struct {
	Segments []Segment
	Closed   bool
}

// NewPath returns a path of the given segments. It returns an error wrapping
// [ErrDiscontinuous] if a segment does not start where the previous one ends.
// If closed is set and the last segment does not end at the path's start, a
// closing line is appended.
//
// The segments are copied.
func NewPath(segs []Segment, closed bool) (Path, error) {
	for i := 1; i < len(segs); i++ {
		end, start := segs[i-1].End(), segs[i].Start()
		if !end.Near(start, joinTolerance) {
			return Path{}, fmt.Errorf("%w: segment %d ends at %s, segment %d starts at %s",
				ErrDiscontinuous, i-1, end, i, start)
		}
	}
	p := Path{Segments: slices.Clone(segs), Closed: closed}
	if closed && len(segs) > 0 && !p.End().Near(p.Start(), joinTolerance) {
		p.Segments = append(p.Segments, NewLine(p.End(), p.Start()))
	}
	return p, nil
}

// MustPath is like [NewPath] but panics on error.
func MustPath(segs []Segment, closed bool) Path {
	p, err := NewPath(segs, closed)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.Segments) }

func (p Path) Clone() Path {
	return Path{Segments: slices.Clone(p.Segments), Closed: p.Closed}
}

// Start returns the start of the first segment, or the zero point for an
// empty path.
func (p Path) Start() Point {
	if len(p.Segments) == 0 {
		return Point{}
	}
	return p.Segments[0].Start()
}

// End returns the end of the last segment, or the zero point for an empty
// path.
func (p Path) End() Point {
	if len(p.Segments) == 0 {
		return Point{}
	}
	return p.Segments[len(p.Segments)-1].End()
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("Path[")
	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(seg.String())
	}
	sb.WriteString("]")
	if p.Closed {
		sb.WriteString("Z")
	}
	return sb.String()
}

// ControlBox returns the union of the segments' control boxes.
func (p Path) ControlBox() Rect {
	return p.unionBoxes(Segment.ControlBox)
}

// Bounds returns the tight bounding box of the path.
func (p Path) Bounds() Rect {
	return p.unionBoxes(Segment.BoundingBox)
}

func (p Path) unionBoxes(box func(Segment) Rect) Rect {
	if len(p.Segments) == 0 {
		return Rect{}
	}
	r := box(p.Segments[0])
	for _, seg := range p.Segments[1:] {
		r = r.Union(box(seg))
	}
	return r
}

// SignedArea returns the signed area of a closed path. The sign depends on
// the path's orientation. Open paths are treated as if closed by a straight
// line.
func (p Path) SignedArea() float64 {
	var sum float64
	for _, seg := range p.Segments {
		sum += seg.SignedArea()
	}
	if !p.Closed && len(p.Segments) > 0 {
		sum += Line{p.End(), p.Start()}.SignedArea()
	}
	return sum
}

func (p Path) Arclen(accuracy float64) float64 {
	var sum float64
	for _, seg := range p.Segments {
		sum += seg.Arclen(accuracy)
	}
	return sum
}

// Reverse returns the path traversed in the opposite direction.
func (p Path) Reverse() Path {
	out := Path{Segments: make([]Segment, len(p.Segments)), Closed: p.Closed}
	for i, seg := range p.Segments {
		out.Segments[len(p.Segments)-1-i] = seg.Reverse()
	}
	return out
}

func (p Path) Transform(aff Affine) Path {
	out := Path{Segments: make([]Segment, len(p.Segments)), Closed: p.Closed}
	for i, seg := range p.Segments {
		out.Segments[i] = seg.Transform(aff)
	}
	return out
}

func (p Path) Translate(v Vec2) Path {
	return p.Transform(Translate(v))
}

// Elements returns the path as a sequence of elements: a MoveTo, one element
// per segment, and a ClosePath for closed paths.
func (p Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p.Segments) == 0 {
			return
		}
		if !yield(MoveTo(p.Start())) {
			return
		}
		for _, seg := range p.Segments {
			if !yield(seg.PathElement()) {
				return
			}
		}
		if p.Closed {
			yield(ClosePath())
		}
	}
}

// PathFromElements builds a path from an element list holding a single
// subpath. A ClosePath element closes the path, adding a line back to the
// start if needed. It returns an error wrapping [ErrDiscontinuous] if the
// list contains more than one subpath.
func PathFromElements(els []PathElement) (Path, error) {
	var (
		p           Path
		start, last Point
		started     bool
	)
	for i, el := range els {
		if p.Closed {
			return Path{}, fmt.Errorf("%w: element %d follows ClosePath", ErrDiscontinuous, i)
		}
		if el.Kind != MoveToKind && el.Kind != ClosePathKind && !started {
			return Path{}, fmt.Errorf("%w: element %d (%s) precedes the first MoveTo", ErrSyntax, i, el)
		}
		var seg Segment
		switch el.Kind {
		case MoveToKind:
			if len(p.Segments) > 0 {
				return Path{}, fmt.Errorf("%w: element %d starts a second subpath", ErrDiscontinuous, i)
			}
			start, last = el.P0, el.P0
			started = true
			continue
		case LineToKind:
			seg = NewLine(last, el.P0)
		case QuadToKind:
			seg = NewQuad(last, el.P0, el.P1)
		case CubicToKind:
			seg = NewCubic(last, el.P0, el.P1, el.P2)
		case ClosePathKind:
			if !started {
				return Path{}, fmt.Errorf("%w: ClosePath without a current point", ErrSyntax)
			}
			if !last.Near(start, joinTolerance) {
				p.Segments = append(p.Segments, NewLine(last, start))
			}
			p.Closed = true
			continue
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
		p.Segments = append(p.Segments, seg)
		last = seg.End()
	}
	return p, nil
}
