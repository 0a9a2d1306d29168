package mask_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/mask"
)

// TestIndicesToBits_Convention checks that the first stroke maps to the most significant bit.
func TestIndicesToBits_Convention(t *testing.T) {
	assert.Equal(t, mask.Mask(9), mask.IndicesToBits(4, []int{0, 3}))
	assert.Equal(t, mask.Mask(5), mask.IndicesToBits(4, []int{1, 3}))
	assert.Equal(t, mask.Mask(3), mask.IndicesToBits(4, []int{2, 3}))
	assert.Equal(t, mask.Mask(15), mask.Full(4))
}

// TestBijection_AllSubsets exhaustively checks the round trip for n ≤ 10
// and samples random subsets up to n = 16.
func TestBijection_AllSubsets(t *testing.T) {
	for n := 0; n <= 10; n++ {
		for m := mask.Mask(0); m <= mask.Full(n); m++ {
			idx := mask.BitsToIndices(n, m)
			assert.Equal(t, m, mask.IndicesToBits(n, idx), "n=%d m=%d", n, m)
		}
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		n := 11 + rng.Intn(6)
		var idx []int
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 1 {
				idx = append(idx, i)
			}
		}
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		want := append([]int(nil), idx...)
		sort.Ints(want)

		got := mask.BitsToIndices(n, mask.IndicesToBits(n, idx))
		if len(want) == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, want, got)
	}
}

// TestFromIndices_Errors covers the sentinel errors.
func TestFromIndices_Errors(t *testing.T) {
	_, err := mask.FromIndices(3, []int{3})
	assert.ErrorIs(t, err, mask.ErrIndexOutOfRange)

	_, err = mask.FromIndices(64, nil)
	assert.ErrorIs(t, err, mask.ErrTooManyStrokes)

	assert.Panics(t, func() { mask.IndicesToBits(2, []int{-1}) })
}

// TestMask_Helpers covers Count, Has and Highest.
func TestMask_Helpers(t *testing.T) {
	m := mask.IndicesToBits(5, []int{1, 4})
	require.Equal(t, 2, m.Count())
	assert.True(t, m.Has(5, 1))
	assert.False(t, m.Has(5, 0))
	assert.Equal(t, mask.Mask(8), m.Highest())
	assert.Equal(t, mask.Mask(0), mask.Mask(0).Highest())
}
