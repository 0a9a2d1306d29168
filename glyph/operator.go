package glyph

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator indicates a rune outside U+2FF0..U+2FFF.
var ErrUnknownOperator = errors.New("glyph: unknown structural operator")

// Operator is an Ideographic Description Character.
type Operator rune

// The 16 structural operators.
const (
	LeftRight     Operator = '⿰'
	TopBottom     Operator = '⿱'
	LeftMidRight  Operator = '⿲'
	TopMidBottom  Operator = '⿳'
	Surround      Operator = '⿴'
	SurroundAbove Operator = '⿵'
	SurroundBelow Operator = '⿶'
	SurroundLeft  Operator = '⿷'
	UpperLeft     Operator = '⿸'
	UpperRight    Operator = '⿹'
	LowerLeft     Operator = '⿺'
	Overlaid      Operator = '⿻'
	SurroundRight Operator = '⿼'
	LowerRight    Operator = '⿽'
	MirrorH       Operator = '⿾'
	Rotate180     Operator = '⿿'
)

// Valid reports whether o is one of the 16 operators.
func (o Operator) Valid() bool {
	return o >= LeftRight && o <= Rotate180
}

// Arity returns the operand count of o: 3 for ⿲ ⿳, 1 for ⿾ ⿿, else 2.
func (o Operator) Arity() int {
	switch o {
	case LeftMidRight, TopMidBottom:
		return 3
	case MirrorH, Rotate180:
		return 1
	}
	return 2
}

// Sequential reports whether o lays operands out one after another.
func (o Operator) Sequential() bool {
	switch o {
	case LeftRight, TopBottom, LeftMidRight, TopMidBottom:
		return true
	}
	return false
}

// Horizontal reports whether a sequential o runs along x.
func (o Operator) Horizontal() bool {
	return o == LeftRight || o == LeftMidRight
}

// String returns the operator character.
func (o Operator) String() string { return string(rune(o)) }

// ParseOperator converts a one-rune string into an Operator.
func ParseOperator(s string) (Operator, error) {
	r := []rune(s)
	if len(r) != 1 || !Operator(r[0]).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
	return Operator(r[0]), nil
}
