package degenerator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/degenerator"
	"github.com/katalvlaran/zigen/glyph"
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/topology"
)

func shape(t testing.TB, strokes ...glyph.Stroke) degenerator.Shape {
	t.Helper()
	s, err := degenerator.NewShape(strokes, nil)
	require.NoError(t, err)
	return s
}

var (
	shi = []glyph.Stroke{
		glyph.NewStroke(glyph.Heng, 10, 50, curve.H(80)),
		glyph.NewStroke(glyph.Shu, 50, 10, curve.V(80)),
	}
	feng = []glyph.Stroke{
		glyph.NewStroke(glyph.Heng, 25, 20, curve.H(50)),
		glyph.NewStroke(glyph.Heng, 30, 45, curve.H(40)),
		glyph.NewStroke(glyph.Heng, 15, 70, curve.H(70)),
		glyph.NewStroke(glyph.Shu, 50, 5, curve.V(90)),
	}
)

// TestFind_ShiInFeng places 十 in 丰 once per horizontal.
func TestFind_ShiInFeng(t *testing.T) {
	got, err := degenerator.Find(degenerator.DefaultConfig(), shape(t, shi...), shape(t, feng...))
	require.NoError(t, err)
	assert.Equal(t, []mask.Mask{9, 5, 3}, got)

	idx := degenerator.Match(degenerator.DefaultConfig(), shape(t, shi...), shape(t, feng...))
	assert.Equal(t, [][]int{{0, 3}, {1, 3}, {2, 3}}, idx)
}

// TestMatch_Topology rejects feature matches with the wrong relations.
func TestMatch_Topology(t *testing.T) {
	er := shape(t,
		glyph.NewStroke(glyph.Heng, 20, 30, curve.H(60)),
		glyph.NewStroke(glyph.Heng, 20, 70, curve.H(60)),
	)
	san := shape(t,
		glyph.NewStroke(glyph.Heng, 20, 20, curve.H(60)),
		glyph.NewStroke(glyph.Heng, 20, 50, curve.H(60)),
		glyph.NewStroke(glyph.Heng, 20, 80, curve.H(60)),
	)
	cfg := degenerator.DefaultConfig()
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, degenerator.Match(cfg, er, san))

	// two horizontals crossed by nothing do not match 十
	assert.Empty(t, degenerator.Match(cfg, shape(t, shi...), san))
	// a root longer than the target never matches
	assert.Empty(t, degenerator.Match(cfg, san, er))
	assert.Empty(t, degenerator.Match(cfg, shape(t), san))
}

// TestMatch_Degeneration maps 提 onto 横.
func TestMatch_Degeneration(t *testing.T) {
	yi := shape(t, glyph.NewStroke(glyph.Heng, 10, 50, curve.H(80)))
	ti := shape(t, glyph.NewStroke(glyph.Ti, 10, 60, curve.L(80, -20)))

	cfg := degenerator.DefaultConfig()
	require.True(t, degenerator.FeatureEqual(cfg, glyph.Ti, glyph.Heng))
	require.True(t, degenerator.FeatureEqual(cfg, glyph.Na, glyph.Dian))
	require.False(t, degenerator.FeatureEqual(cfg, glyph.Shu, glyph.Heng))

	idx := degenerator.Match(cfg, yi, ti)
	assert.Equal(t, [][]int{{0}}, idx)
	assert.Equal(t, 1, degenerator.Degenerated(yi, ti, idx[0]))

	strict := degenerator.Config{}
	assert.Empty(t, degenerator.Match(strict, yi, ti))
}

// TestMatch_NoCross drops placements crossing outside strokes.
func TestMatch_NoCross(t *testing.T) {
	yi := shape(t, glyph.NewStroke(glyph.Heng, 10, 50, curve.H(80)))
	target := shape(t, shi...)

	assert.Equal(t, [][]int{{0}}, degenerator.Match(degenerator.DefaultConfig(), yi, target))

	cfg := degenerator.DefaultConfig()
	cfg.NoCross = true
	assert.Empty(t, degenerator.Match(cfg, yi, target))
	assert.Equal(t, [][]int{{0, 1}}, degenerator.Match(cfg, shape(t, shi...), target))
}

// TestFind_TooManyStrokes rejects targets beyond the mask width.
func TestFind_TooManyStrokes(t *testing.T) {
	strokes := make([]glyph.Stroke, mask.MaxStrokes+1)
	target := degenerator.Shape{Strokes: strokes, Graph: topology.FromCurves(nil)}
	_, err := degenerator.Find(degenerator.DefaultConfig(), shape(t, shi...), target)
	assert.ErrorIs(t, err, mask.ErrTooManyStrokes)
}

func ExampleFind() {
	root, _ := degenerator.NewShape(shi, nil)
	target, _ := degenerator.NewShape(feng, topology.NewCache())
	masks, _ := degenerator.Find(degenerator.DefaultConfig(), root, target)
	for _, m := range masks {
		fmt.Printf("%04b %v\n", uint64(m), mask.BitsToIndices(target.Len(), m))
	}
	// Output:
	// 1001 [0 3]
	// 0101 [1 3]
	// 0011 [2 3]
}
