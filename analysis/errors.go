package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zigen/scheme"
)

// Sentinel errors for analysis.
var (
	// ErrNotFound is returned for a requested name absent from the repertoire.
	ErrNotFound = errors.New("analysis: character not found")

	// ErrNotComponent is returned by AnalyzeComponent for compound glyphs.
	ErrNotComponent = errors.New("analysis: glyph is not a component")

	// ErrNoValidScheme is returned when no exact cover exists.
	ErrNoValidScheme = errors.New("analysis: no valid scheme")

	// ErrAmbiguousScheme is matched by every *AmbiguityError.
	ErrAmbiguousScheme = errors.New("analysis: ambiguous scheme")

	// ErrCyclicDependency aborts a batch whose operands form a cycle.
	ErrCyclicDependency = errors.New("analysis: cyclic dependency")

	// ErrMissingOperand is returned when an operand is not in the repertoire.
	ErrMissingOperand = errors.New("analysis: missing operand")

	// ErrBlocked is matched by every *BlockedError.
	ErrBlocked = errors.New("analysis: blocked by failed operand")
)

// AmbiguityError carries every scheme the sieves could not separate.
type AmbiguityError struct {
	Name       string
	Candidates []scheme.Scheme
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("%v: %s has %d candidates", ErrAmbiguousScheme, e.Name, len(e.Candidates))
}

// Unwrap lets errors.Is match ErrAmbiguousScheme.
func (e *AmbiguityError) Unwrap() error { return ErrAmbiguousScheme }

// BlockedError reports a character whose operand could not be analysed.
type BlockedError struct {
	Name    string
	Operand string
	Err     error
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%v: %s needs %s: %v", ErrBlocked, e.Name, e.Operand, e.Err)
}

// Unwrap matches both ErrBlocked and the operand's own error.
func (e *BlockedError) Unwrap() []error { return []error{ErrBlocked, e.Err} }
