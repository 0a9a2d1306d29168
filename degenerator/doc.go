// Package degenerator finds every placement of a root inside a component.
//
// A placement maps root stroke k to target stroke idx[k], with idx strictly
// ascending (stroke order is kept). Root stroke k and its target stroke
// must have equal features after degeneration through Config.FeatureMap
// (by default 捺 → 点 and 提 → 横), and the relations of target stroke
// idx[k] to idx[0..k-1] must equal the relations of root stroke k to root
// strokes 0..k-1.
//
// Find extends partial placements breadth first. Root stroke k may only
// land in [idx[k-1]+1, n-m+k], which leaves room for the remaining root
// strokes. With NoCross set, placements whose strokes cross a stroke
// outside the placement are dropped.
package degenerator
