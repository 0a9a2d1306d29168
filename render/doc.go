// Package render turns any character of a repertoire into absolute strokes.
//
// Basic glyphs are used as they are. Derived glyphs copy strokes of their
// source character, Spliced and Compound glyphs render each operand and
// merge them through the affine compositor, and Identity glyphs follow
// the alias.
//
// The renderer walks the dependency chain with an explicit call stack,
// the same gray-set idea as a DFS cycle detector: a name already on the
// stack is a cycle and is reported as a *CycleError holding the chain. A
// chain longer than MaxDepth is reported as a *DepthError.
//
// Successful renders are memoized per Renderer; the repertoire is
// immutable, so entries never go stale. A Renderer is not safe for
// concurrent use.
//
// Errors:
//
//   - ErrMissing  character or operand not in the repertoire
//   - ErrNoGlyph  character has no glyph, or the variant index is out of range
//   - ErrCopy     derived stroke copies a source stroke that does not exist
//   - ErrCycle    (*CycleError) self-referential rendering chain
//   - ErrDepth    (*DepthError) chain deeper than MaxDepth
package render
