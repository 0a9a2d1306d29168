package affine

import (
	"fmt"

	"github.com/katalvlaran/zigen/glyph"
)

// enclosures lists the per-operand transforms of the non-sequential
// operators on the 100×100 canvas. Operand 0 is the outer part.
var enclosures = map[glyph.Operator][]transform{
	glyph.Surround:      {identity, {sx: 0.5, sy: 0.5, tx: 25, ty: 25}},
	glyph.SurroundAbove: {identity, {sx: 0.5, sy: 0.6, tx: 25, ty: 40}},
	glyph.SurroundBelow: {identity, {sx: 0.5, sy: 0.6, tx: 25, ty: 0}},
	glyph.SurroundLeft:  {identity, {sx: 0.6, sy: 0.5, tx: 40, ty: 25}},
	glyph.UpperLeft:     {identity, {sx: 0.6, sy: 0.6, tx: 40, ty: 40}},
	glyph.UpperRight:    {identity, {sx: 0.6, sy: 0.6, tx: 0, ty: 40}},
	glyph.LowerLeft:     {identity, {sx: 0.6, sy: 0.6, tx: 40, ty: 0}},
	glyph.Overlaid:      {identity, identity},
	glyph.SurroundRight: {identity, {sx: 0.6, sy: 0.5, tx: 0, ty: 25}},
	glyph.LowerRight:    {identity, {sx: 0.6, sy: 0.6, tx: 0, ty: 0}},
	glyph.MirrorH:       {{sx: -1, sy: 1, tx: 100}},
	glyph.Rotate180:     {{sx: -1, sy: -1, tx: 100, ty: 100}},
}

// Check reports whether op can lay out operands parts with params
// per-part parameters.
func Check(op glyph.Operator, operands, params int) error {
	if !op.Valid() {
		return fmt.Errorf("affine: %w: %U", glyph.ErrUnknownOperator, rune(op))
	}
	if operands != op.Arity() {
		return fmt.Errorf("%w: %v takes %d, got %d", ErrArity, op, op.Arity(), operands)
	}
	if params > operands {
		return fmt.Errorf("%w: %d parameters for %d operands", ErrArity, params, operands)
	}
	return nil
}

// Compose lays out parts for op and merges their strokes, in part order
// or by order when it is non-empty. params may be shorter than parts.
func Compose(op glyph.Operator, parts []Box, params []glyph.PartParams, order []glyph.Block, opts ...Option) (Box, error) {
	// 1. Validate operator, arity and options
	if err := Check(op, len(parts), len(params)); err != nil {
		return Box{}, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Box{}, o.err
	}

	// 2. Place every operand
	var placed []Box
	if op.Sequential() {
		placed = sequence(op.Horizontal(), parts, params, o.Gap)
	} else {
		table := enclosures[op]
		placed = make([]Box, len(parts))
		for k, p := range parts {
			placed[k] = scale(params, k).then(table[k]).apply(p)
		}
	}

	// 3. Merge extents of the non-empty operands, then strokes
	var out Box
	seen := false
	for _, p := range placed {
		if p.Empty() {
			continue
		}
		if !seen {
			out.X, out.Y, seen = p.X, p.Y, true
			continue
		}
		out.X = union(out.X, p.X)
		out.Y = union(out.Y, p.Y)
	}
	strokes := make([][]glyph.Stroke, len(placed))
	for k, p := range placed {
		strokes[k] = p.Strokes
	}
	merged, err := Reorder(strokes, order)
	if err != nil {
		return Box{}, err
	}
	out.Strokes = merged
	return out, nil
}

// sequence lays parts out one after another along x or y.
func sequence(horizontal bool, parts []Box, params []glyph.PartParams, gap float64) []Box {
	placed := make([]Box, len(parts))
	var hi float64
	for k, p := range parts {
		b := scale(params, k).apply(p)
		if k > 0 {
			g := gap
			if k < len(params) && params[k].Gap != nil {
				g = *params[k].Gap
			}
			var shift transform
			if horizontal {
				shift = transform{sx: 1, sy: 1, tx: hi + g - b.X[0]}
			} else {
				shift = transform{sx: 1, sy: 1, ty: hi + g - b.Y[0]}
			}
			b = shift.apply(b)
		}
		if horizontal {
			hi = b.X[1]
		} else {
			hi = b.Y[1]
		}
		placed[k] = b
	}
	return placed
}

// scale returns the uniform scale override of part k, if any.
func scale(params []glyph.PartParams, k int) transform {
	if k < len(params) && params[k].Scale != nil {
		s := *params[k].Scale
		return transform{sx: s, sy: s}
	}
	return identity
}
