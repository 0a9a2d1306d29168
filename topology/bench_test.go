package topology_test

import (
	"testing"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/glyph"
	"github.com/katalvlaran/zigen/topology"
)

// grid returns k horizontals crossed by k verticals.
func grid(k int) []glyph.Stroke {
	var out []glyph.Stroke
	for i := 0; i < k; i++ {
		step := float64(10 + 80*i/k)
		out = append(out,
			glyph.NewStroke(glyph.Heng, 5, step, curve.H(90)),
			glyph.NewStroke(glyph.Pie, step, 5, curve.C(0, 30, -5, 60, -5, 90)),
		)
	}
	return out
}

// BenchmarkBuild relates every stroke pair of a 16-stroke glyph with cubics.
func BenchmarkBuild(b *testing.B) {
	strokes := grid(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := topology.Build(strokes); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCache_Hit measures the content-hash lookup alone.
func BenchmarkCache_Hit(b *testing.B) {
	strokes := grid(8)
	c := topology.NewCache()
	if _, err := c.Get(strokes); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(strokes)
	}
}
