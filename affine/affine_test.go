package affine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/affine"
	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/glyph"
)

func box(t *testing.T, strokes ...glyph.Stroke) affine.Box {
	t.Helper()
	b, err := affine.NewBox(strokes)
	require.NoError(t, err)
	return b
}

func shu(x float64) glyph.Stroke  { return glyph.NewStroke(glyph.Shu, x, 0, curve.V(100)) }
func heng(y float64) glyph.Stroke { return glyph.NewStroke(glyph.Heng, 0, y, curve.H(100)) }

// TestNewBox measures extents.
func TestNewBox(t *testing.T) {
	b := box(t, shu(10), heng(30))
	assert.Equal(t, [2]float64{0, 100}, b.X)
	assert.Equal(t, [2]float64{0, 100}, b.Y)
	assert.Equal(t, 100.0, b.Width())

	empty := box(t)
	assert.True(t, empty.Empty())
	assert.Equal(t, 0.0, empty.Height())
}

// TestCompose_Sequential covers gap, per-part gap and per-part scale.
func TestCompose_Sequential(t *testing.T) {
	a, b := box(t, shu(10)), box(t, shu(5))

	out, err := affine.Compose(glyph.LeftRight, []affine.Box{a, b}, nil, nil)
	require.NoError(t, err)
	require.Len(t, out.Strokes, 2)
	assert.Equal(t, curve.Point{X: 10, Y: 0}, out.Strokes[0].Start)
	assert.Equal(t, curve.Point{X: 30, Y: 0}, out.Strokes[1].Start)
	assert.Equal(t, [2]float64{10, 30}, out.X)
	assert.Equal(t, [2]float64{0, 100}, out.Y)

	out, err = affine.Compose(glyph.LeftRight, []affine.Box{a, b},
		[]glyph.PartParams{{}, {Gap: glyph.Float(5)}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 15.0, out.Strokes[1].Start.X)

	out, err = affine.Compose(glyph.LeftRight, []affine.Box{a, b},
		[]glyph.PartParams{{}, {Scale: glyph.Float(0.5)}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 30.0, out.Strokes[1].Start.X)
	assert.Equal(t, curve.V(50), out.Strokes[1].Draws[0])
	assert.Equal(t, [2]float64{0, 100}, out.Y, "perpendicular extent is the union")

	out, err = affine.Compose(glyph.LeftRight, []affine.Box{a, b}, nil, nil, affine.WithGap(0))
	require.NoError(t, err)
	assert.Equal(t, 10.0, out.Strokes[1].Start.X)

	out, err = affine.Compose(glyph.TopMidBottom,
		[]affine.Box{box(t, heng(0)), box(t, heng(0)), box(t, heng(0))}, nil, nil)
	require.NoError(t, err)
	ys := []float64{out.Strokes[0].Start.Y, out.Strokes[1].Start.Y, out.Strokes[2].Start.Y}
	assert.Equal(t, []float64{0, 20, 40}, ys)
	assert.Equal(t, [2]float64{0, 40}, out.Y)
}

// TestCompose_Enclosure checks the table transform and the unary operators.
func TestCompose_Enclosure(t *testing.T) {
	outer := box(t, shu(0), shu(100))
	out, err := affine.Compose(glyph.Surround, []affine.Box{outer, box(t, heng(50))}, nil, nil)
	require.NoError(t, err)
	require.Len(t, out.Strokes, 3)
	inner := out.Strokes[2]
	assert.Equal(t, curve.Point{X: 25, Y: 50}, inner.Start)
	assert.Equal(t, curve.H(50), inner.Draws[0])
	assert.Equal(t, [2]float64{0, 100}, out.X)

	s := glyph.NewStroke(glyph.Heng, 10, 20, curve.H(30))
	out, err = affine.Compose(glyph.MirrorH, []affine.Box{box(t, s)}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, curve.Point{X: 90, Y: 20}, out.Strokes[0].Start)
	assert.Equal(t, curve.H(-30), out.Strokes[0].Draws[0])
	assert.Equal(t, [2]float64{60, 90}, out.X)

	out, err = affine.Compose(glyph.Rotate180, []affine.Box{box(t, s)}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, curve.Point{X: 90, Y: 80}, out.Strokes[0].Start)
	assert.Equal(t, [2]float64{80, 80}, out.Y)
}

// TestCompose_Nested feeds a composed box back in as an operand.
func TestCompose_Nested(t *testing.T) {
	two, err := affine.Compose(glyph.TopBottom, []affine.Box{box(t, heng(0)), box(t, heng(0))}, nil, nil)
	require.NoError(t, err)
	out, err := affine.Compose(glyph.LeftRight, []affine.Box{two, box(t, shu(0))}, nil, nil)
	require.NoError(t, err)
	require.Len(t, out.Strokes, 3)
	assert.Equal(t, 120.0, out.Strokes[2].Start.X)
	assert.Equal(t, [2]float64{0, 120}, out.X)
	assert.Equal(t, [2]float64{0, 100}, out.Y)
}

// TestCompose_Errors covers arity, operator and option errors.
func TestCompose_Errors(t *testing.T) {
	a := box(t, shu(0))
	_, err := affine.Compose(glyph.LeftRight, []affine.Box{a}, nil, nil)
	assert.ErrorIs(t, err, affine.ErrArity)
	_, err = affine.Compose(glyph.MirrorH, []affine.Box{a, a}, nil, nil)
	assert.ErrorIs(t, err, affine.ErrArity)
	_, err = affine.Compose(glyph.LeftMidRight, []affine.Box{a, a}, nil, nil)
	assert.ErrorIs(t, err, affine.ErrArity)
	_, err = affine.Compose(glyph.MirrorH, []affine.Box{a}, make([]glyph.PartParams, 2), nil)
	assert.ErrorIs(t, err, affine.ErrArity)
	_, err = affine.Compose(glyph.Operator('x'), []affine.Box{a, a}, nil, nil)
	assert.ErrorIs(t, err, glyph.ErrUnknownOperator)
	_, err = affine.Compose(glyph.LeftRight, []affine.Box{a, a}, nil, nil, affine.WithGap(-1))
	assert.ErrorIs(t, err, affine.ErrOptionViolation)
	_, err = affine.Compose(glyph.LeftRight, []affine.Box{a, a}, nil, []glyph.Block{{Index: 3}})
	assert.ErrorIs(t, err, affine.ErrBadOrder)

	assert.NoError(t, affine.Check(glyph.Surround, 2, 2))
	assert.NoError(t, affine.Check(glyph.Rotate180, 1, 0))
	assert.ErrorIs(t, affine.Check(glyph.TopMidBottom, 2, 0), affine.ErrArity)
	assert.ErrorIs(t, affine.Check(glyph.Operator('木'), 2, 0), glyph.ErrUnknownOperator)
}

// TestReorder interleaves blocks and appends leftovers.
func TestReorder(t *testing.T) {
	parts := [][]glyph.Stroke{
		{heng(0), heng(1), heng(2)},
		{shu(0), shu(1)},
	}
	out, err := affine.Reorder(parts, []glyph.Block{{Index: 0, Strokes: 1}, {Index: 1}, {Index: 0, Strokes: 1}})
	require.NoError(t, err)
	assert.Equal(t, []glyph.Stroke{heng(0), shu(0), shu(1), heng(1), heng(2)}, out)

	out, err = affine.Reorder(parts, []glyph.Block{{Index: 1, Strokes: 1}})
	require.NoError(t, err)
	assert.Equal(t, []glyph.Stroke{shu(0), heng(0), heng(1), heng(2), shu(1)}, out)

	out, err = affine.Reorder(parts, nil)
	require.NoError(t, err)
	assert.Equal(t, []glyph.Stroke{heng(0), heng(1), heng(2), shu(0), shu(1)}, out)

	_, err = affine.Reorder(parts, []glyph.Block{{Index: 1, Strokes: 3}})
	assert.ErrorIs(t, err, affine.ErrBadOrder)
	_, err = affine.Reorder(parts, []glyph.Block{{Index: -1}})
	assert.ErrorIs(t, err, affine.ErrBadOrder)
	_, err = affine.Reorder(parts, []glyph.Block{{Index: 1}, {Index: 1, Strokes: 1}})
	assert.ErrorIs(t, err, affine.ErrBadOrder)
}
