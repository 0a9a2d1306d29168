// Package topology builds the StrokeGraph of a glyph: the pairwise
// topological relations between its strokes.
//
// For strokes a and b, StrokeRelation lists the curve relation of every
// pair (curve p of a, curve q of b), outer loop over a's curves. A Graph
// stores these lists in a lower-triangular matrix, M[i][j] for j < i, and
// answers any ordered pair through Relation, mirroring when i < j.
//
// OrientedPairs lists the pairs (i, j), j < i, that never cross or connect
// and have at least one parallel curve pair overlapping on the main axis:
// strokes drawn side by side in the same direction, such as the two
// horizontals of 二.
//
// Cache memoizes graphs by an FNV-64a hash of the stroke data, so glyphs
// seen before never re-run the bisection search.
//
// Errors:
//
//   - ErrIndex  stroke index outside [0, n)
package topology
