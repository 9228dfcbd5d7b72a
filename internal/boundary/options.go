package boundary

import "github.com/jmylchreest/contrastzone/internal/colour"

// Option configures a boundary search.
type Option func(*options)

type options struct {
	transform    colour.Transform
	anyReference bool
}

func newOptions(opts []Option) options {
	o := options{transform: colour.Identity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.transform == nil {
		o.transform = colour.Identity
	}
	return o
}

// WithTransform passes every candidate colour through t before its contrast
// against the reference is evaluated. A nil transform means colour.Identity.
func WithTransform(t colour.Transform) Option {
	return func(o *options) {
		o.transform = t
	}
}

// WithAnyReference lifts the white background / black foreground restriction.
// The scan direction and path layout stay the same.
func WithAnyReference() Option {
	return func(o *options) {
		o.anyReference = true
	}
}
