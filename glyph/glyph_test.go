package glyph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/matrix"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/glyph"
)

// TestFeatures lists the catalog in sorted order.
func TestFeatures(t *testing.T) {
	fs := glyph.Features()
	assert.Len(t, fs, 32)
	assert.True(t, slices.IsSorted(fs))
	assert.Equal(t, fs, glyph.Features())
	for _, f := range fs {
		assert.True(t, f.Known(), f)
		assert.NotEmpty(t, f.Schema(), f)
	}
}

// TestStroke_Validate covers unknown features, bad draws and schemas.
func TestStroke_Validate(t *testing.T) {
	ok := glyph.NewStroke(glyph.Heng, 10, 50, curve.H(80))
	require.NoError(t, ok.CheckSchema())

	bad := glyph.NewStroke("不存在", 0, 0, curve.H(1))
	assert.ErrorIs(t, bad.Validate(), glyph.ErrUnknownFeature)

	broken := glyph.NewStroke(glyph.Heng, 0, 0, curve.Draw{Kind: curve.DrawH})
	assert.ErrorIs(t, broken.Validate(), curve.ErrBadDraw)

	wrong := glyph.NewStroke(glyph.Pie, 0, 0, curve.H(10))
	require.NoError(t, wrong.Validate())
	assert.ErrorIs(t, wrong.CheckSchema(), glyph.ErrFeatureSchema)

	short := glyph.NewStroke(glyph.HengZhe, 0, 0, curve.H(10))
	assert.ErrorIs(t, short.CheckSchema(), glyph.ErrFeatureSchema)
}

// TestStroke_Curves folds relative draws into absolute curves.
func TestStroke_Curves(t *testing.T) {
	s := glyph.NewStroke(glyph.HengZhe, 20, 20, curve.H(60), curve.V(60))
	cs, err := s.Curves()
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, curve.Point{X: 80, Y: 20}, cs[0].End())
	assert.Equal(t, cs[0].End(), cs[1].Start())
	assert.Equal(t, curve.Point{X: 80, Y: 80}, cs[1].End())
	assert.Equal(t, curve.Vertical, cs[1].Orientation)
}

// TestStroke_Transform checks scale, translate and the horizontal mirror.
func TestStroke_Transform(t *testing.T) {
	s := glyph.NewStroke(glyph.Heng, 10, 50, curve.H(80))

	half := s.Transform(matrix.Matrix{0.5, 0, 0, 1, 50, 0})
	cs, err := half.Curves()
	require.NoError(t, err)
	assert.Equal(t, curve.Point{X: 55, Y: 50}, cs[0].Start())
	assert.Equal(t, curve.Point{X: 95, Y: 50}, cs[0].End())
	assert.Equal(t, curve.DrawH, half.Draws[0].Kind)

	mirror := s.Transform(matrix.Matrix{-1, 0, 0, 1, 100, 0})
	cs, err = mirror.Curves()
	require.NoError(t, err)
	assert.Equal(t, curve.Point{X: 90, Y: 50}, cs[0].Start())
	assert.Equal(t, curve.Point{X: 10, Y: 50}, cs[0].End())

	ring := glyph.NewStroke(glyph.Quan, 50, 10, curve.A(20)).Transform(matrix.Matrix{1, 0, 0, 0.5, 0, 0})
	require.Len(t, ring.Draws, 4)
	cs, err = ring.Curves()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, cs[0].Start().Y, 1e-9)
	assert.InDelta(t, 15.0, cs[0].End().Y, 1e-9)
	assert.InDelta(t, cs[0].Start().X, cs[3].End().X, 1e-9)
	assert.InDelta(t, cs[0].Start().Y, cs[3].End().Y, 1e-9)
}

// TestDependencies walks every variant.
func TestDependencies(t *testing.T) {
	cases := []struct {
		g    glyph.Glyph
		want []string
		kind glyph.Kind
	}{
		{glyph.Basic{}, nil, glyph.KindBasic},
		{glyph.Derived{Source: "口"}, []string{"口"}, glyph.KindDerived},
		{glyph.Spliced{Operator: glyph.TopBottom, Operands: []string{"十", "一"}}, []string{"十", "一"}, glyph.KindSpliced},
		{glyph.Compound{Operator: glyph.LeftRight, Operands: []string{"木", "木"}}, []string{"木", "木"}, glyph.KindCompound},
		{glyph.Identity{Target: "艹"}, []string{"艹"}, glyph.KindIdentity},
	}
	for _, c := range cases {
		got, err := glyph.Dependencies(c.g)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
		assert.Equal(t, c.kind, c.g.Kind())
		assert.Equal(t, c.kind != glyph.KindCompound && c.kind != glyph.KindIdentity, glyph.IsComponent(c.g))
	}
	assert.Equal(t, "spliced", glyph.KindSpliced.String())
}

// TestOperator covers arity, layout class and parsing.
func TestOperator(t *testing.T) {
	for r := rune(0x2FF0); r <= 0x2FFF; r++ {
		o := glyph.Operator(r)
		require.True(t, o.Valid(), "%U", r)
		switch o {
		case glyph.LeftMidRight, glyph.TopMidBottom:
			assert.Equal(t, 3, o.Arity())
		case glyph.MirrorH, glyph.Rotate180:
			assert.Equal(t, 1, o.Arity())
		default:
			assert.Equal(t, 2, o.Arity())
		}
	}
	assert.False(t, glyph.Operator('木').Valid())
	assert.True(t, glyph.LeftMidRight.Sequential())
	assert.True(t, glyph.LeftMidRight.Horizontal())
	assert.False(t, glyph.TopBottom.Horizontal())
	assert.False(t, glyph.Surround.Sequential())

	o, err := glyph.ParseOperator("⿱")
	require.NoError(t, err)
	assert.Equal(t, glyph.TopBottom, o)
	assert.Equal(t, "⿱", o.String())
	_, err = glyph.ParseOperator("木")
	assert.True(t, errors.Is(err, glyph.ErrUnknownOperator))
	_, err = glyph.ParseOperator("⿰⿱")
	assert.ErrorIs(t, err, glyph.ErrUnknownOperator)
}

// TestRepertoire checks NFC keys, name fallback and sorted names.
func TestRepertoire(t *testing.T) {
	r := glyph.NewRepertoire(
		glyph.Character{Unicode: 0x8C48, Flags: glyph.FlagGeneral | glyph.FlagGB2312},
		glyph.Character{Unicode: '一', Glyphs: []glyph.Glyph{glyph.Basic{}}},
		glyph.Character{Name: "私用部件", Flags: glyph.FlagPrivate, Glyphs: []glyph.Glyph{glyph.Basic{}, glyph.Basic{}}},
	)
	assert.Equal(t, 3, r.Len())

	c, ok := r.Lookup("\uF900")
	require.True(t, ok, "compatibility ideograph folds to its NFC form")
	assert.Equal(t, rune(0x8C48), c.Unicode)
	assert.True(t, c.Flags.Has(glyph.FlagGeneral))
	assert.False(t, c.Flags.Has(glyph.FlagTraditional))

	p, ok := r.Lookup("私用部件")
	require.True(t, ok)
	assert.Equal(t, "私用部件", p.Key())
	assert.True(t, p.Ambiguous())

	assert.False(t, r.Has("二"))
	assert.Equal(t, []string{"一", "私用部件", string(rune(0x8C48))}, r.Names())

	var empty *glyph.Repertoire
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Has("一"))
}
