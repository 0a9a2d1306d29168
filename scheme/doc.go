// Package scheme enumerates the exact covers of a glyph by root placements.
//
// A Placement puts one root on an ascending list of stroke indices; its
// mask has one bit per index. A Scheme is an ordered list of placements
// whose masks are pairwise disjoint and together cover every stroke.
//
// Enumerate runs the exact-cover search on masks alone. The placements of
// a scheme always follow stroke order: at each step the only candidates
// are the masks that contain the highest uncovered bit, i.e. the first
// stroke not yet covered. Since that bit is also the highest bit of each
// candidate, the candidates are exactly the masks in [hb, 2hb), found by
// binary search in the sorted mask list.
//
// Example (n = 4, masks 1 2 4 6 7 8 12):
//
//	[8 4 2 1] [8 6 1] [8 7] [12 2 1]
//
// No cover is an empty result, not an error.
package scheme
