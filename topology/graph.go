package topology

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/zigen/curve"
	"github.com/katalvlaran/zigen/glyph"
)

// ErrIndex indicates a stroke index outside the graph.
var ErrIndex = errors.New("topology: stroke index out of range")

// Relations is the curve-by-curve relation list of one stroke pair.
type Relations []curve.Relation

// Equal reports whether r and o list the same relations in the same order.
func (r Relations) Equal(o Relations) bool { return slices.Equal(r, o) }

// Has reports whether any relation in r is of kind k.
func (r Relations) Has(k curve.Kind) bool {
	return slices.ContainsFunc(r, func(x curve.Relation) bool { return x.Kind == k })
}

// Oriented reports whether r describes two strokes drawn side by side:
// no cross, no connect and one parallel overlapping on the main axis.
func (r Relations) Oriented() bool {
	if r.Has(curve.Cross) || r.Has(curve.Connect) {
		return false
	}
	return slices.ContainsFunc(r, func(x curve.Relation) bool {
		return x.Kind == curve.Parallel && x.MainAxis == curve.Overlap
	})
}

// mirror returns the relations of the swapped pair in the same slot order,
// given the curve counts na of the first and nb of the second stroke of r.
func (r Relations) mirror(na, nb int) Relations {
	out := make(Relations, len(r))
	for p := 0; p < na; p++ {
		for q := 0; q < nb; q++ {
			out[q*na+p] = r[p*nb+q].Mirror()
		}
	}
	return out
}

// StrokeRelation relates every curve of a to every curve of b,
// outer loop over a.
func StrokeRelation(a, b []curve.Curve) Relations {
	out := make(Relations, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			out = append(out, ca.Relation(cb))
		}
	}
	return out
}

// Graph is the StrokeGraph of one glyph.
type Graph struct {
	// Matrix[i][j], j < i, relates stroke i to stroke j.
	Matrix [][]Relations

	// OrientedPairs lists (i, j), j < i, of side-by-side strokes.
	OrientedPairs [][2]int

	counts []int
}

// Build folds each stroke into curves and relates every pair.
func Build(strokes []glyph.Stroke) (*Graph, error) {
	curves := make([][]curve.Curve, len(strokes))
	for i, s := range strokes {
		cs, err := s.Curves()
		if err != nil {
			return nil, fmt.Errorf("topology: stroke %d: %w", i, err)
		}
		curves[i] = cs
	}
	return FromCurves(curves), nil
}

// FromCurves builds the graph of strokes already folded into curves.
func FromCurves(strokes [][]curve.Curve) *Graph {
	n := len(strokes)
	g := &Graph{
		Matrix: make([][]Relations, n),
		counts: make([]int, n),
	}
	for i := 0; i < n; i++ {
		g.counts[i] = len(strokes[i])
		g.Matrix[i] = make([]Relations, i)
		for j := 0; j < i; j++ {
			r := StrokeRelation(strokes[i], strokes[j])
			g.Matrix[i][j] = r
			if r.Oriented() {
				g.OrientedPairs = append(g.OrientedPairs, [2]int{i, j})
			}
		}
	}
	return g
}

// Len returns the number of strokes.
func (g *Graph) Len() int { return len(g.Matrix) }

// Relation returns the relations of stroke i to stroke j for any i != j.
func (g *Graph) Relation(i, j int) (Relations, error) {
	n := g.Len()
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return nil, fmt.Errorf("%w: (%d,%d) in %d strokes", ErrIndex, i, j, n)
	}
	if j < i {
		return g.Matrix[i][j], nil
	}
	return g.Matrix[j][i].mirror(g.counts[j], g.counts[i]), nil
}

// Row returns the relations of stroke i to each stroke in idx, all of
// which must precede i.
func (g *Graph) Row(i int, idx []int) []Relations {
	row := make([]Relations, len(idx))
	for k, j := range idx {
		row[k] = g.Matrix[i][j]
	}
	return row
}

// Crosses reports whether strokes i and j cross anywhere.
func (g *Graph) Crosses(i, j int) bool {
	if i < j {
		i, j = j, i
	}
	return i != j && g.Matrix[i][j].Has(curve.Cross)
}

// Connects reports whether strokes i and j connect anywhere.
func (g *Graph) Connects(i, j int) bool {
	if i < j {
		i, j = j, i
	}
	return i != j && g.Matrix[i][j].Has(curve.Connect)
}

// Oriented reports whether (i, j) is an oriented pair, in either order.
func (g *Graph) Oriented(i, j int) bool {
	if i < j {
		i, j = j, i
	}
	return i != j && g.Matrix[i][j].Oriented()
}

// RowsEqual compares two relation rows element by element.
func RowsEqual(a, b []Relations) bool {
	return slices.EqualFunc(a, b, Relations.Equal)
}
