package mask

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxStrokes is the largest stroke count representable by a Mask.
const MaxStrokes = 63

var (
	// ErrTooManyStrokes indicates a glyph with more strokes than MaxStrokes.
	ErrTooManyStrokes = errors.New("mask: too many strokes")

	// ErrIndexOutOfRange indicates a stroke index outside [0, n).
	ErrIndexOutOfRange = errors.New("mask: index out of range")
)

// Mask is a set of stroke indices of one glyph.
type Mask uint64

// Full returns the mask covering all n strokes, (1<<n)-1.
func Full(n int) Mask {
	return Mask(1)<<uint(n) - 1
}

// Bit returns the single-stroke mask of stroke i in an n-stroke glyph.
func Bit(n, i int) Mask {
	return Mask(1) << uint(n-1-i)
}

// Check validates n against MaxStrokes.
func Check(n int) error {
	if n < 0 || n > MaxStrokes {
		return fmt.Errorf("%w: %d > %d", ErrTooManyStrokes, n, MaxStrokes)
	}
	return nil
}

// FromIndices converts stroke indices into a Mask.
// Duplicate indices collapse into one bit.
func FromIndices(n int, indices []int) (Mask, error) {
	if err := Check(n); err != nil {
		return 0, err
	}
	var m Mask
	for _, i := range indices {
		if i < 0 || i >= n {
			return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, n)
		}
		m |= Bit(n, i)
	}
	return m, nil
}

// IndicesToBits is FromIndices for callers holding trusted indices.
// It panics on an out-of-range index, a programmer error.
func IndicesToBits(n int, indices []int) Mask {
	m, err := FromIndices(n, indices)
	if err != nil {
		panic(err)
	}
	return m
}

// BitsToIndices returns the ascending stroke indices contained in m.
// Bits at or above position n are ignored.
func BitsToIndices(n int, m Mask) []int {
	out := make([]int, 0, m.Count())
	for i := 0; i < n; i++ {
		if m&Bit(n, i) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// Count returns the number of strokes in m.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// Has reports whether stroke i of an n-stroke glyph is in m.
func (m Mask) Has(n, i int) bool {
	return m&Bit(n, i) != 0
}

// Highest returns the highest set bit of m as a single-bit mask, or 0.
func (m Mask) Highest() Mask {
	if m == 0 {
		return 0
	}
	return Mask(1) << uint(63-bits.LeadingZeros64(uint64(m)))
}
