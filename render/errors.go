package render

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rendering.
var (
	// ErrMissing is returned for a name absent from the repertoire.
	ErrMissing = errors.New("render: character not found")

	// ErrNoGlyph is returned when the requested glyph variant does not exist.
	ErrNoGlyph = errors.New("render: no such glyph variant")

	// ErrCopy is returned when a derived stroke copies a missing source stroke.
	ErrCopy = errors.New("render: derived stroke index out of range")

	// ErrCycle is matched by every *CycleError.
	ErrCycle = errors.New("render: cyclic glyph reference")

	// ErrDepth is matched by every *DepthError.
	ErrDepth = errors.New("render: glyph reference chain too deep")
)

// CycleError reports a chain of references returning to one of its names.
type CycleError struct {
	// Chain starts and ends with the repeated name.
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(e.Chain, " → "))
}

// Unwrap lets errors.Is match ErrCycle.
func (e *CycleError) Unwrap() error { return ErrCycle }

// DepthError reports a reference chain exceeding the depth limit.
type DepthError struct {
	Limit int
	Chain []string
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%v: %d > %d at %s", ErrDepth, len(e.Chain), e.Limit, e.Chain[len(e.Chain)-1])
}

// Unwrap lets errors.Is match ErrDepth.
func (e *DepthError) Unwrap() error { return ErrDepth }
