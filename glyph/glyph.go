package glyph

import (
	"errors"
	"fmt"
)

// ErrUnknownGlyph is returned by type switches meeting an unexpected Glyph.
var ErrUnknownGlyph = errors.New("glyph: unknown glyph variant")

// Kind identifies the variant of a Glyph.
type Kind uint8

const (
	KindBasic Kind = iota
	KindDerived
	KindSpliced
	KindCompound
	KindIdentity
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindDerived:
		return "derived"
	case KindSpliced:
		return "spliced"
	case KindCompound:
		return "compound"
	case KindIdentity:
		return "identity"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Glyph is one shape variant of a character. It is sealed: the unexported
// method restricts implementations to the five variants below.
type Glyph interface {
	Kind() Kind
	sealed()
}

// IsComponent reports whether g is decomposed stroke-wise (basic, derived
// or spliced) rather than by operands.
func IsComponent(g Glyph) bool {
	switch g.Kind() {
	case KindBasic, KindDerived, KindSpliced:
		return true
	}
	return false
}

// Basic is a component drawn stroke by stroke.
type Basic struct {
	Strokes []Stroke
	Tags    []string
}

// DerivedStroke is either a literal stroke or a copy of a source stroke.
type DerivedStroke struct {
	// Literal, when non-nil, is used as is.
	Literal *Stroke
	// Index selects the source stroke to copy when Literal is nil.
	Index int
}

// CopyOf returns a DerivedStroke copying stroke i of the source.
func CopyOf(i int) DerivedStroke { return DerivedStroke{Index: i} }

// LiteralStroke returns a DerivedStroke holding s.
func LiteralStroke(s Stroke) DerivedStroke { return DerivedStroke{Literal: &s} }

// Derived is a component built from another character's strokes.
type Derived struct {
	Source  string
	Strokes []DerivedStroke
}

// Block takes Strokes strokes from operand Index; 0 means all remaining.
type Block struct {
	Index   int
	Strokes int
}

// PartParams overrides layout of one operand. Nil fields keep defaults.
type PartParams struct {
	Gap   *float64
	Scale *float64
}

// Spliced is structurally a compound but reused as a single component.
type Spliced struct {
	Operator   Operator
	Operands   []string
	Order      []Block
	Parameters []PartParams
}

// Compound composes 2–3 operand characters with an operator.
type Compound struct {
	Operator   Operator
	Operands   []string
	Order      []Block
	Parameters []PartParams
}

// Identity is a pure alias of another character.
type Identity struct {
	Target string
}

func (Basic) Kind() Kind    { return KindBasic }
func (Derived) Kind() Kind  { return KindDerived }
func (Spliced) Kind() Kind  { return KindSpliced }
func (Compound) Kind() Kind { return KindCompound }
func (Identity) Kind() Kind { return KindIdentity }

func (Basic) sealed()    {}
func (Derived) sealed()  {}
func (Spliced) sealed()  {}
func (Compound) sealed() {}
func (Identity) sealed() {}

// Dependencies returns the characters g needs to be rendered.
func Dependencies(g Glyph) ([]string, error) {
	switch v := g.(type) {
	case Basic:
		return nil, nil
	case Derived:
		return []string{v.Source}, nil
	case Spliced:
		return v.Operands, nil
	case Compound:
		return v.Operands, nil
	case Identity:
		return []string{v.Target}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownGlyph, g)
	}
}

// Float returns a pointer to v, for PartParams literals.
func Float(v float64) *float64 { return &v }
