// Package mask converts between stroke index lists and stroke bit-masks.
//
// For a glyph of n strokes, stroke i is represented by bit 1<<(n-1-i): the
// first stroke is the most significant bit, so that masks sorted in
// ascending order group placements by their first stroke.
//
// Example (n = 4):
//
//	indices [0 3]  ⇔  1001b = 9
//	indices [2 3]  ⇔  0011b = 3
//
// Errors:
//
//   - ErrTooManyStrokes  n exceeds MaxStrokes
//   - ErrIndexOutOfRange an index is outside [0, n)
package mask
