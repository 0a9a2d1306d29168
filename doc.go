// Package zigen decomposes the vector glyph of a Chinese character into an
// ordered sequence of reusable root shapes (字根), the first step in
// designing a keystroke encoding for that character.
//
// 🚀 What is zigen?
//
//	A deterministic, pure-Go engine that brings together:
//		• Geometry: stroke draw commands folded into line / cubic curves
//		• Topology: pairwise relations between curves and strokes
//		• Composition: IDC operators merging operand glyphs into one box
//		• Matching: order-preserving placement of roots inside a glyph
//		• Search: every exact cover of a glyph's strokes by placements
//		• Selection: lexicographic sieves picking the winning scheme
//		• Scheduling: Kahn ordering of compound characters by operand
//
// Under the hood, everything is organized under these subpackages:
//
//	mask/        — stroke index ↔ bit-mask helpers
//	curve/       — Point, draw commands, Curve, Relation
//	glyph/       — stroke feature catalog, Glyph variants, Character, Repertoire
//	topology/    — relation matrix of a glyph (StrokeGraph) + memo cache
//	affine/      — operator transform tables, sequential layout, block reorder
//	render/      — recursive glyph rendering with typed cycle errors
//	degenerator/ — root placement finder
//	scheme/      — Placement, Scheme and the exact-cover enumerator
//	sieve/       — scheme sieves, explicit registry, selector
//	core/        — string-keyed directed graph of character dependencies
//	bfs/         — breadth-first discovery of those dependencies
//	schedule/    — topological scheduling of compound characters
//	config/      — analyzer configuration (YAML)
//	analysis/    — the Engine tying all of the above together
//
// Quick example, the topology of 土:
//
//	 ─┼─      stroke 1 crosses stroke 0
//	  │
//	──┴──     stroke 2 meets the end of stroke 1 at its middle
//
// Logging is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/zigen
package zigen
