package curve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/zigen/curve"
)

func hline(x, y, dx float64) curve.Curve {
	return curve.NewLine(pt(x, y), pt(x+dx, y), curve.Horizontal)
}

func vline(x, y, dy float64) curve.Curve {
	return curve.NewLine(pt(x, y), pt(x, y+dy), curve.Vertical)
}

// TestRelation_Lines covers the straight-segment cases.
func TestRelation_Lines(t *testing.T) {
	top := hline(20, 40, 60)
	stem := vline(50, 10, 80)
	base := hline(10, 90, 80)

	cases := []struct {
		name string
		a, b curve.Curve
		want curve.Relation
	}{
		{"cross", stem, top, curve.CrossRelation()},
		{"end on line middle", base, stem, curve.ConnectRelation(curve.Mid, curve.Back)},
		{"parallel stacked", base, top, curve.ParallelRelation(curve.Overlap, curve.After)},
		{"shared start", hline(0, 0, 10), vline(0, 0, 10), curve.ConnectRelation(curve.Front, curve.Front)},
		{"end to start", hline(0, 0, 10), vline(10, 0, 10), curve.ConnectRelation(curve.Back, curve.Front)},
		{"start on line middle", vline(5, 0, 10), hline(0, 0, 10), curve.ConnectRelation(curve.Front, curve.Mid)},
		{"perpendicular apart", hline(0, 0, 10), vline(30, 5, 10), curve.PerpendicularRelation(curve.Before, curve.Before)},
		{"vertical parallel", vline(0, 0, 10), vline(5, 2, 4), curve.ParallelRelation(curve.Overlap, curve.Before)},
		{"T without touching", hline(0, 0, 10), vline(5, 1, 10), curve.PerpendicularRelation(curve.Overlap, curve.Before)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Relation(tc.b))
			assert.Equal(t, tc.want.Mirror(), tc.b.Relation(tc.a))
		})
	}
}

// TestRelation_Cubic covers bisection: crossing, touching near an end and missing.
func TestRelation_Cubic(t *testing.T) {
	// A sweeping curve from upper right to lower left, like 丿.
	pie := curve.NewCubic(pt(70, 10), pt(65, 40), pt(40, 70), pt(10, 90), curve.Vertical)

	across := hline(20, 50, 70)
	assert.Equal(t, curve.CrossRelation(), pie.Relation(across))

	// The horizontal ends right where the curve passes: a near-end hit on the line.
	touchAt := pie.Evaluate(0.5)
	stub := curve.NewLine(pt(touchAt.X-30, touchAt.Y), touchAt, curve.Horizontal)
	r := stub.Relation(pie)
	assert.Equal(t, curve.Connect, r.Kind)
	assert.Equal(t, curve.Back, r.First)

	far := hline(80, 95, 10)
	got := pie.Relation(far)
	assert.True(t, got.Disjoint())
	assert.Equal(t, curve.PerpendicularRelation(curve.Before, curve.Before), got)
}

// TestRelation_MirrorSymmetry checks a.Relation(b) == b.Relation(a).Mirror()
// over random lines and cubics.
func TestRelation_MirrorSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	coord := func() float64 { return float64(rng.Intn(21) * 5) }
	random := func() curve.Curve {
		if rng.Intn(2) == 0 {
			return curve.NewLine(pt(coord(), coord()), pt(coord(), coord()), curve.Orientation(rng.Intn(2)))
		}
		return curve.NewCubic(pt(coord(), coord()), pt(coord(), coord()), pt(coord(), coord()), pt(coord(), coord()), curve.Orientation(rng.Intn(2)))
	}
	for i := 0; i < 400; i++ {
		a, b := random(), random()
		ab, ba := a.Relation(b), b.Relation(a)
		assert.Equal(t, ab, ba.Mirror(), "pair %d: %v vs %v", i, ab, ba)
	}
}

// TestRelation_String checks the textual form.
func TestRelation_String(t *testing.T) {
	assert.Equal(t, "cross", curve.CrossRelation().String())
	assert.Equal(t, "connect(mid,back)", curve.ConnectRelation(curve.Mid, curve.Back).String())
	assert.Equal(t, "parallel(overlap,after)", curve.ParallelRelation(curve.Overlap, curve.After).String())
	assert.Equal(t, "perpendicular(before,partial-after)", curve.PerpendicularRelation(curve.Before, curve.PartialAfter).String())
}
