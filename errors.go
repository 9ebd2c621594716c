package beziers

import "errors"

var (
	// ErrOpenPath is returned by operations that require a closed path.
	ErrOpenPath = errors.New("beziers: path is not closed")

	// ErrDiscontinuous is returned when consecutive segments of a path do not
	// meet.
	ErrDiscontinuous = errors.New("beziers: segments are not contiguous")

	// ErrSyntax is returned for malformed SVG path data.
	ErrSyntax = errors.New("beziers: invalid path data")

	// ErrUnsupportedCommand is returned for SVG path commands that cannot be
	// represented, such as elliptical arcs.
	ErrUnsupportedCommand = errors.New("beziers: unsupported path command")
)
