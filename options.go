package beziers

// Option configures the numerical tolerances of intersection and boolean
// operations.
//
// Example:
//
//	// Coarser subdivision for large coordinates
//	xs := beziers.Intersect(a, b, beziers.WithPrecision(1e-3))
//
//	// Merge junctions that are up to half a unit apart
//	out, err := beziers.RemoveOverlap(p, beziers.WithTolerance(0.5))
type Option func(*options)

// options holds the tolerances shared by the package's algorithms.
type options struct {
	precision float64
	maxDepth  int
	tolerance float64
}

// defaultOptions returns the default tolerances.
func defaultOptions() options {
	return options{
		precision: 1e-6,
		maxDepth:  32,
		tolerance: 1e-3,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPrecision sets the control box area below which curve/curve
// subdivision considers two sub-curves converged. Smaller values give more
// exact intersection points at the cost of deeper recursion. Non-positive
// values are ignored.
func WithPrecision(area float64) Option {
	return func(o *options) {
		if area > 0 {
			o.precision = area
		}
	}
}

// WithMaxDepth limits the recursion depth of curve/curve subdivision.
// Intersections found at the limit are reported with Unresolved set.
// Non-positive values are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithTolerance sets the distance within which two points are considered the
// same junction when fragments of split paths are stitched back together.
// Non-positive values are ignored.
func WithTolerance(d float64) Option {
	return func(o *options) {
		if d > 0 {
			o.tolerance = d
		}
	}
}
