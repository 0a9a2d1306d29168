package affine

import (
	"errors"
	"fmt"
)

// Sentinel errors for composition.
var (
	// ErrArity is returned when the operand count does not fit the operator.
	ErrArity = errors.New("affine: wrong number of operands")

	// ErrBadOrder is returned when a stroke block cannot be served.
	ErrBadOrder = errors.New("affine: bad stroke order")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("affine: invalid option supplied")
)

// DefaultGap separates consecutive operands of sequential operators.
const DefaultGap = 20.0

// Option configures Compose.
type Option func(*Options)

// Options holds layout parameters.
type Options struct {
	// Gap is the default distance between sequential operands.
	Gap float64

	err error
}

// DefaultOptions returns Options with Gap = DefaultGap.
func DefaultOptions() Options {
	return Options{Gap: DefaultGap}
}

// WithGap sets the default gap. Negative or NaN values are rejected.
func WithGap(g float64) Option {
	return func(o *Options) {
		if g < 0 || g != g {
			o.err = fmt.Errorf("%w: gap %v", ErrOptionViolation, g)
			return
		}
		o.Gap = g
	}
}
