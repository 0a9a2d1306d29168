// Package affine places the operands of a structural operator on a shared
// canvas and merges their strokes.
//
// What:
//
//   - Box: strokes plus their extents on x and y. Boxes nest: the result of
//     Compose is itself a valid operand.
//   - Compose: lays out 1–3 operand boxes for one of the 16 Ideographic
//     Description Characters.
//   - Reorder: interleaves operand strokes by explicit blocks.
//
// Layout:
//
//   - Sequential operators (⿰ ⿱ ⿲ ⿳) keep the first operand in place and
//     translate each following one along the main axis so that it starts
//     Gap units after the running extent. The perpendicular extent is the
//     union of all operands.
//   - Enclosure operators (⿴ … ⿽) and ⿻ use a fixed scale/translate table
//     per operand on the 100×100 canvas.
//   - ⿾ mirrors its single operand horizontally, ⿿ rotates it by 180°.
//   - PartParams may override the gap before and the scale of an operand.
//
// Options:
//
//   - WithGap(g)  default gap between sequential operands (20)
//
// Errors:
//
//   - ErrArity          wrong operand count for the operator
//   - ErrBadOrder       block refers to a missing operand or too many strokes
//   - ErrOptionViolation invalid option value
package affine
