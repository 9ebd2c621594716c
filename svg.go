package beziers

import (
	"fmt"
	"io"
	"slices"
	stdstrconv "strconv"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// SVGOptions specifies optional settings for [Path.SVG] and [Path.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the path as a string of SVG path commands to w. Only
// absolute commands are used.
func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return stdstrconv.FormatFloat(n, 'f', -1, 64)
		}
		s := stdstrconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	pt := func(pt Point) string {
		return format(pt.X) + "," + format(pt.Y)
	}
	first := true
	for el := range p.Elements() {
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s", pt(el.P0))
		case LineToKind:
			writef("L%s", pt(el.P0))
		case QuadToKind:
			writef("Q%s %s", pt(el.P0), pt(el.P1))
		case CubicToKind:
			writef("C%s %s %s", pt(el.P0), pt(el.P1), pt(el.P2))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// svgParser reads SVG path data into path elements.
type svgParser struct {
	data []byte
	pos  int
}

func (sp *svgParser) num() (float64, error) {
	sp.pos += skipCommaWhitespace(sp.data[sp.pos:])
	f, n := strconv.ParseFloat(sp.data[sp.pos:])
	if n == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrSyntax, sp.pos)
	}
	sp.pos += n
	return f, nil
}

// point reads a coordinate pair, relative to (x, y) if rel is set.
func (sp *svgParser) point(rel bool, cur Point) (Point, error) {
	x, err := sp.num()
	if err != nil {
		return Point{}, err
	}
	y, err := sp.num()
	if err != nil {
		return Point{}, err
	}
	if rel {
		x += cur.X
		y += cur.Y
	}
	return Pt(x, y), nil
}

// ParseSVGPath parses SVG path data holding a single subpath. It supports
// the commands M, L, H, V, Q, T, C, S, and Z in their absolute and relative
// forms. Elliptical arcs return an error wrapping [ErrUnsupportedCommand],
// malformed data one wrapping [ErrSyntax], and a second subpath one wrapping
// [ErrDiscontinuous].
func ParseSVGPath(s string) (Path, error) {
	els, err := parseSVGElements([]byte(s))
	if err != nil {
		return Path{}, err
	}
	return PathFromElements(els)
}

// MustParseSVGPath is like [ParseSVGPath] but panics on error.
func MustParseSVGPath(s string) Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSVGElements(data []byte) ([]PathElement, error) {
	sp := &svgParser{data: data}
	var (
		els        []PathElement
		prevCmd    byte
		cur, start Point
		ctrl       Point // last control point, for smooth curves
	)
	for {
		sp.pos += skipCommaWhitespace(sp.data[sp.pos:])
		if sp.pos >= len(sp.data) {
			break
		}
		cmd := prevCmd
		if c := sp.data[sp.pos]; (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			cmd = c
			sp.pos++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("%w: expected command at offset %d", ErrSyntax, sp.pos)
		}
		rel := cmd >= 'a'

		var err error
		switch cmd {
		case 'M', 'm':
			var p Point
			if p, err = sp.point(rel, cur); err != nil {
				return nil, err
			}
			els = append(els, MoveTo(p))
			cur, start = p, p
			// Further coordinate pairs are implicit line commands.
			cmd = 'L' + (cmd - 'M')
		case 'L', 'l':
			var p Point
			if p, err = sp.point(rel, cur); err != nil {
				return nil, err
			}
			els = append(els, LineTo(p))
			cur = p
		case 'H', 'h':
			var x float64
			if x, err = sp.num(); err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur = Pt(x, cur.Y)
			els = append(els, LineTo(cur))
		case 'V', 'v':
			var y float64
			if y, err = sp.num(); err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur = Pt(cur.X, y)
			els = append(els, LineTo(cur))
		case 'C', 'c', 'S', 's':
			p1 := cur
			if cmd == 'C' || cmd == 'c' {
				if p1, err = sp.point(rel, cur); err != nil {
					return nil, err
				}
			} else if slices.Contains([]byte("CcSs"), prevCmd) {
				p1 = cur.Translate(cur.Sub(ctrl))
			}
			var p2, p3 Point
			if p2, err = sp.point(rel, cur); err != nil {
				return nil, err
			}
			if p3, err = sp.point(rel, cur); err != nil {
				return nil, err
			}
			els = append(els, CubicTo(p1, p2, p3))
			ctrl, cur = p2, p3
		case 'Q', 'q', 'T', 't':
			p1 := cur
			if cmd == 'Q' || cmd == 'q' {
				if p1, err = sp.point(rel, cur); err != nil {
					return nil, err
				}
			} else if slices.Contains([]byte("QqTt"), prevCmd) {
				p1 = cur.Translate(cur.Sub(ctrl))
			}
			var p2 Point
			if p2, err = sp.point(rel, cur); err != nil {
				return nil, err
			}
			els = append(els, QuadTo(p1, p2))
			ctrl, cur = p1, p2
		case 'Z', 'z':
			els = append(els, ClosePath())
			cur = start
		case 'A', 'a':
			return nil, fmt.Errorf("%w: elliptical arc at offset %d", ErrUnsupportedCommand, sp.pos-1)
		default:
			return nil, fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd)
		}
		prevCmd = cmd
	}
	return els, nil
}
