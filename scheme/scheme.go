package scheme

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/zigen/mask"
)

// Sentinel errors for scheme validation.
var (
	// ErrPlacement indicates a placement whose mask and indices disagree.
	ErrPlacement = errors.New("scheme: inconsistent placement")

	// ErrOverlap indicates two placements sharing a stroke.
	ErrOverlap = errors.New("scheme: overlapping placements")

	// ErrIncomplete indicates strokes left uncovered.
	ErrIncomplete = errors.New("scheme: strokes not covered")
)

// Placement is one root laid on a set of strokes.
type Placement struct {
	Root    string
	Indices []int
	Mask    mask.Mask
}

// NewPlacement builds the placement of root on idx in an n-stroke glyph.
func NewPlacement(root string, n int, idx []int) (Placement, error) {
	if !slices.IsSorted(idx) {
		return Placement{}, fmt.Errorf("%w: %s indices %v not ascending", ErrPlacement, root, idx)
	}
	m, err := mask.FromIndices(n, idx)
	if err != nil {
		return Placement{}, fmt.Errorf("%w: %s: %w", ErrPlacement, root, err)
	}
	if m.Count() != len(idx) {
		return Placement{}, fmt.Errorf("%w: %s indices %v repeat", ErrPlacement, root, idx)
	}
	return Placement{Root: root, Indices: slices.Clone(idx), Mask: m}, nil
}

// Len returns the number of strokes covered.
func (p Placement) Len() int { return len(p.Indices) }

// Scheme is an ordered exact cover.
type Scheme []Placement

// Masks returns the mask of every placement.
func (s Scheme) Masks() []mask.Mask {
	out := make([]mask.Mask, len(s))
	for i, p := range s {
		out[i] = p.Mask
	}
	return out
}

// Roots returns the root name of every placement.
func (s Scheme) Roots() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Root
	}
	return out
}

// Validate checks that s is an exact cover of n strokes.
func (s Scheme) Validate(n int) error {
	var union mask.Mask
	for _, p := range s {
		m, err := mask.FromIndices(n, p.Indices)
		if err != nil || m != p.Mask || m.Count() != len(p.Indices) {
			return fmt.Errorf("%w: %s", ErrPlacement, p.Root)
		}
		if union&p.Mask != 0 {
			return fmt.Errorf("%w: %s", ErrOverlap, p.Root)
		}
		union |= p.Mask
	}
	if union != mask.Full(n) {
		return fmt.Errorf("%w: %b of %b", ErrIncomplete, union, mask.Full(n))
	}
	return nil
}

// Enumerate returns every exact cover of n strokes by masks, each cover
// listed in stroke order. masks should be sorted ascending; unsorted or
// duplicate input is sorted and compacted first.
//
// Steps:
//  1. Start from the empty cover.
//  2. The next mask must contain the highest uncovered stroke bit hb, so
//     candidates lie in [hb, 2hb); binary search finds that range.
//  3. Recurse with every candidate disjoint from the covered bits; a full
//     cover is recorded.
//
// Complexity:
//
//   - Time:   O(C · n · log M) for C covers and M masks, plus pruned branches
//   - Memory: O(n) besides the output
func Enumerate(n int, masks []mask.Mask) [][]mask.Mask {
	if n <= 0 || n > mask.MaxStrokes {
		return nil
	}
	if !slices.IsSorted(masks) {
		masks = slices.Clone(masks)
		slices.Sort(masks)
	}
	masks = slices.Compact(slices.Clip(masks))

	full := mask.Full(n)
	var (
		out    [][]mask.Mask
		chosen []mask.Mask
	)
	var walk func(covered mask.Mask)
	walk = func(covered mask.Mask) {
		if covered == full {
			out = append(out, slices.Clone(chosen))
			return
		}
		hb := (full &^ covered).Highest()
		lo, _ := slices.BinarySearch(masks, hb)
		hi, _ := slices.BinarySearch(masks, hb<<1)
		for _, m := range masks[lo:hi] {
			if m&covered != 0 {
				continue
			}
			chosen = append(chosen, m)
			walk(covered | m)
			chosen = chosen[:len(chosen)-1]
		}
	}
	walk(0)
	return out
}

// Schemes enumerates the schemes of an n-stroke glyph from placements.
// When several placements share a mask the first one wins, so callers
// control precedence through the placement order.
func Schemes(n int, placements []Placement) []Scheme {
	byMask := make(map[mask.Mask]Placement, len(placements))
	masks := make([]mask.Mask, 0, len(placements))
	for _, p := range placements {
		if _, ok := byMask[p.Mask]; ok {
			continue
		}
		byMask[p.Mask] = p
		masks = append(masks, p.Mask)
	}
	slices.Sort(masks)

	covers := Enumerate(n, masks)
	out := make([]Scheme, len(covers))
	for i, cover := range covers {
		s := make(Scheme, len(cover))
		for j, m := range cover {
			s[j] = byMask[m]
		}
		out[i] = s
	}
	return out
}
