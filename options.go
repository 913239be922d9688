package vector

import (
	"fmt"

	"github.com/go-kit/log"
)

// Option configures a Vector at construction.
type Option func(*options)

type options struct {
	traits any
	logger log.Logger
}

// WithTraits sets the element traits. The traits' element type must match
// the vector's; New panics otherwise.
func WithTraits[T any](tr Traits[T]) Option {
	return func(o *options) {
		o.traits = tr
	}
}

// WithLogger sets the logger that receives reallocation events.
// Vectors log nothing by default.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (v *Vector[T]) configure(opts []Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		v.logger = o.logger
	}
	if o.traits != nil {
		tr, ok := o.traits.(Traits[T])
		if !ok {
			var zero T
			panic(fmt.Sprintf("vector: %T does not describe elements of type %T", o.traits, zero))
		}
		v.elems = newLifecycle(tr)
	}
}
