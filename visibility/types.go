package visibility

import "math"

// DefaultThreshold is the visible-fraction cutoff used when no
// WithThreshold option is supplied.
const DefaultThreshold = 1.0 / 3.0

// Options configures a single Run call.
type Options struct {
	Threshold   float64
	MaxDistance float64 // 0 means unlimited

	err error
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns DefaultThreshold and unlimited range.
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		MaxDistance: 0,
	}
}

// WithThreshold sets the minimum visible fraction for a node to count as
// visible. An exact 0 is clamped to the smallest positive float64 so that
// "zero threshold" means "any visible sliver counts" rather than "everything
// is visible". t must be in [0, 1].
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t < 0 || t > 1 {
			o.err = ErrBadThreshold
			return
		}
		if t == 0 {
			t = math.SmallestNonzeroFloat64
		}
		o.Threshold = t
	}
}

// WithMaxDistance caps exploration to nodes within d world units of the
// viewpoint. d must be non-negative; 0 means unlimited.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = d
	}
}
