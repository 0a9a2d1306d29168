package degenerator

import (
	"fmt"

	"github.com/katalvlaran/zigen/glyph"
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/topology"
)

// Config controls feature degeneration and crossing checks.
type Config struct {
	// FeatureMap degenerates a feature into a simpler one before comparison.
	FeatureMap map[glyph.Feature]glyph.Feature `yaml:"feature_map"`

	// NoCross drops placements that cross strokes outside themselves.
	NoCross bool `yaml:"no_cross"`
}

// DefaultConfig maps 捺 to 点 and 提 to 横, with crossing allowed.
func DefaultConfig() Config {
	return Config{FeatureMap: map[glyph.Feature]glyph.Feature{
		glyph.Na: glyph.Dian,
		glyph.Ti: glyph.Heng,
	}}
}

// Degenerate maps f through the feature map.
func (c Config) Degenerate(f glyph.Feature) glyph.Feature {
	if g, ok := c.FeatureMap[f]; ok {
		return g
	}
	return f
}

// FeatureEqual reports whether a and b agree after degenerating both.
func FeatureEqual(cfg Config, a, b glyph.Feature) bool {
	return cfg.Degenerate(a) == cfg.Degenerate(b)
}

// Shape is a glyph's strokes together with its StrokeGraph.
type Shape struct {
	Strokes []glyph.Stroke
	Graph   *topology.Graph
}

// NewShape builds the graph of strokes, through cache when non-nil.
func NewShape(strokes []glyph.Stroke, cache *topology.Cache) (Shape, error) {
	var (
		g   *topology.Graph
		err error
	)
	if cache != nil {
		g, err = cache.Get(strokes)
	} else {
		g, err = topology.Build(strokes)
	}
	if err != nil {
		return Shape{}, err
	}
	return Shape{Strokes: strokes, Graph: g}, nil
}

// Len returns the stroke count.
func (s Shape) Len() int { return len(s.Strokes) }

// Features returns the feature of every stroke.
func (s Shape) Features() []glyph.Feature {
	out := make([]glyph.Feature, len(s.Strokes))
	for i, st := range s.Strokes {
		out[i] = st.Feature
	}
	return out
}

// Match returns the index list of every placement of root in target,
// in lexicographic order.
//
// Steps:
//  1. Level k extends every partial placement with a later target stroke
//     whose feature matches root stroke k and whose relations to the
//     strokes chosen so far equal row k of the root's graph. The window
//     leaves room for the remaining root strokes.
//  2. With NoCross, drop placements crossing a stroke outside them.
//
// Complexity:
//
//   - Time:   O(P · n · k) for P partial placements, n target and k root strokes
//   - Memory: O(P · k)
func Match(cfg Config, root, target Shape) [][]int {
	n, m := target.Len(), root.Len()
	if m == 0 || m > n {
		return nil
	}

	// 1) Breadth-first extension, one root stroke per level
	queue := [][]int{{}}
	for k := 0; k < m; k++ {
		end := n - m + k + 1 // room for the remaining m-k-1 strokes
		want := root.Graph.Matrix[k]
		var next [][]int
		for _, partial := range queue {
			start := 0
			if len(partial) > 0 {
				start = partial[len(partial)-1] + 1
			}
			for c := start; c < end; c++ {
				if !FeatureEqual(cfg, root.Strokes[k].Feature, target.Strokes[c].Feature) {
					continue
				}
				if !topology.RowsEqual(target.Graph.Row(c, partial), want) {
					continue
				}
				ext := make([]int, len(partial)+1)
				copy(ext, partial)
				ext[len(partial)] = c
				next = append(next, ext)
			}
		}
		if len(next) == 0 {
			return nil
		}
		queue = next
	}

	// 2) Optional crossing filter
	if !cfg.NoCross {
		return queue
	}
	kept := queue[:0]
	for _, idx := range queue {
		if !crossesOutside(target.Graph, idx) {
			kept = append(kept, idx)
		}
	}
	return kept
}

// Find returns the masks of every placement of root in target.
func Find(cfg Config, root, target Shape) ([]mask.Mask, error) {
	if err := mask.Check(target.Len()); err != nil {
		return nil, fmt.Errorf("degenerator: %w", err)
	}
	matches := Match(cfg, root, target)
	out := make([]mask.Mask, len(matches))
	for i, idx := range matches {
		out[i] = mask.IndicesToBits(target.Len(), idx)
	}
	return out, nil
}

// Degenerated counts the strokes of a placement whose target feature
// differs from the root feature, i.e. matched only through degeneration.
func Degenerated(root, target Shape, idx []int) int {
	count := 0
	for k, i := range idx {
		if root.Strokes[k].Feature != target.Strokes[i].Feature {
			count++
		}
	}
	return count
}

// crossesOutside reports whether any stroke of idx crosses a stroke
// not in idx.
func crossesOutside(g *topology.Graph, idx []int) bool {
	in := make(map[int]bool, len(idx))
	for _, i := range idx {
		in[i] = true
	}
	for _, i := range idx {
		for j := 0; j < g.Len(); j++ {
			if !in[j] && g.Crosses(i, j) {
				return true
			}
		}
	}
	return false
}
