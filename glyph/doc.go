// Package glyph defines the immutable character data consumed by the
// decomposition engine.
//
// Key Types:
//
//   - Feature: one entry of the calligraphic stroke catalog (横, 竖, 撇 …)
//   - Stroke: feature + start point + relative draw commands
//   - Glyph: a closed sum type with exactly five variants
//     Basic, Derived, Spliced, Compound and Identity
//   - Operator: one of the 16 Ideographic Description Characters
//   - Character: codepoint, flags, glyph variants and readings
//   - Repertoire: the read-only name → Character table, keyed in NFC
//
// Glyph is sealed: only this package can add variants. Every type switch
// over Glyph in the module ends in a default branch returning
// ErrUnknownGlyph, so an unexpected variant is an error, never a silent
// fallthrough.
//
// Errors:
//
//   - ErrUnknownFeature  stroke feature not in the catalog
//   - ErrFeatureSchema   draw commands do not fit the feature's schema
//   - ErrUnknownGlyph    glyph variant not handled by a switch
//   - ErrUnknownOperator rune is not a structural operator
package glyph
