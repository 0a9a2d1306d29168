// Package curve models the geometry of one calligraphic stroke segment and
// classifies the topological relation between two segments.
//
// What:
//
//   - Draw: a relative drawing instruction (h, v, l, c, a) folded from the
//     current point into absolute curves by FromDraw.
//   - Curve: a linear (2 points) or cubic Bézier (4 points) segment with a
//     dominant Orientation. Evaluate, Bisect (de Casteljau at t=0.5),
//     Bounds and Transform are provided.
//   - Relation: exactly one of Cross, Connect(first, second),
//     Parallel(main, cross) or Perpendicular(x, y) for every pair of curves.
//
// How Relation is decided:
//
//  1. Endpoints coincide, or a linear curve passes through the other's
//     endpoint ⇒ Connect tagged front / mid / back on each side.
//  2. Both linear ⇒ cross-product straddle test; straddling both ways ⇒ Cross.
//  3. A cubic is involved ⇒ recursive bisection pruned by bounding-box
//     overlap, bounded by MinSegment and MaxDepth. A hit within
//     ConnectDistance of an end ⇒ Connect, otherwise Cross.
//  4. Otherwise the curves are disjoint: same orientation ⇒ Parallel,
//     different ⇒ Perpendicular, with 5-valued interval comparisons.
//
// Relation is exactly mirror-symmetric: a.Relation(b) == b.Relation(a).Mirror().
//
// Coordinates follow the glyph canvas: x grows to the right, y grows down.
package curve
