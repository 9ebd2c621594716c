// Package beziers implements intersection and boolean operations on planar
// paths made of lines, quadratic Béziers, and cubic Béziers. It is meant for
// the kind of outlines found in fonts and vector graphics.
//
// # Segments and paths
//
// [Segment] is a tagged union over the three curve types. Each type also
// exists as a concrete value ([Line], [QuadBez], [CubicBez]) that can be
// converted to a segment with its Seg method. A segment remembers the
// parameter interval of the curve it was split from (see [Segment.Range]), so
// that fragments produced by repeated splitting can be traced back to their
// parent.
//
// [Path] is a sequence of contiguous segments that may be closed. Paths can
// be converted to and from lists of [PathElement] values, and parsed from or
// written to SVG path data (see [ParseSVGPath] and [Path.SVG]).
//
// # Intersections
//
// [Intersect] finds the points where two segments cross. Pairs of lines are
// solved directly, curves and lines are solved by aligning the line with the
// x-axis and finding the roots of the curve's y coordinate, and pairs of
// curves are solved by recursive subdivision of their control boxes, followed
// by a few steps of Newton refinement.
//
// Results are reported with T1 referring to the first argument and T2 to the
// second, regardless of the order in which the segments were processed
// internally.
//
// # Boolean operations
//
// [RemoveOverlap] resolves the self-intersections of a single closed path by
// walking around its outside. [Clip] combines two closed paths, with
// [Path.Union], [Path.Intersection], and [Path.Difference] as convenient
// entry points. Both are built on [SplitPathAt] and [WindingNumber].
//
// The boolean operations are designed for simple, well-behaved outlines.
// Paths with holes, coincident edges, or tangential contacts are not handled
// reliably.
//
// # Tolerances
//
// Numerical tolerances can be adjusted with functional options such as
// [WithPrecision], [WithMaxDepth], and [WithTolerance]. The defaults suit
// coordinates in the range of a typical font's units per em.
//
// # Logging
//
// The package is silent by default. Diagnostics, such as curve subdivision
// hitting its depth limit, are emitted through a [log/slog] logger installed
// with [SetLogger].
package beziers
