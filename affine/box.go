package affine

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"

	"github.com/katalvlaran/zigen/glyph"
)

// Box is a laid-out group of strokes with its extents.
type Box struct {
	Strokes []glyph.Stroke
	// X and Y hold the [lo, hi] extents of the strokes.
	X, Y [2]float64
}

// NewBox measures strokes. An empty stroke list yields a zero Box.
func NewBox(strokes []glyph.Stroke) (Box, error) {
	b := Box{Strokes: strokes}
	if len(strokes) == 0 {
		return b, nil
	}
	b.X = [2]float64{math.Inf(1), math.Inf(-1)}
	b.Y = b.X
	for i, s := range strokes {
		cs, err := s.Curves()
		if err != nil {
			return Box{}, fmt.Errorf("affine: stroke %d: %w", i, err)
		}
		for _, c := range cs {
			r := c.Bounds()
			b.X[0] = math.Min(b.X[0], r.LLx)
			b.X[1] = math.Max(b.X[1], r.URx)
			b.Y[0] = math.Min(b.Y[0], r.LLy)
			b.Y[1] = math.Max(b.Y[1], r.URy)
		}
	}
	return b, nil
}

// Width returns the x extent.
func (b Box) Width() float64 { return b.X[1] - b.X[0] }

// Height returns the y extent.
func (b Box) Height() float64 { return b.Y[1] - b.Y[0] }

// Empty reports whether b has no strokes.
func (b Box) Empty() bool { return len(b.Strokes) == 0 }

// transform is a per-axis scale followed by a translation.
type transform struct {
	sx, sy, tx, ty float64
}

var identity = transform{sx: 1, sy: 1}

func (t transform) matrix() matrix.Matrix {
	return matrix.Matrix{t.sx, 0, 0, t.sy, t.tx, t.ty}
}

// then returns the transform applying t first and u second.
func (t transform) then(u transform) transform {
	return transform{
		sx: u.sx * t.sx,
		sy: u.sy * t.sy,
		tx: u.sx*t.tx + u.tx,
		ty: u.sy*t.ty + u.ty,
	}
}

// apply maps b through t. Extents are transformed directly.
func (t transform) apply(b Box) Box {
	if t == identity {
		return b
	}
	out := Box{Strokes: make([]glyph.Stroke, len(b.Strokes))}
	m := t.matrix()
	for i, s := range b.Strokes {
		out.Strokes[i] = s.Transform(m)
	}
	out.X = extent(b.X, t.sx, t.tx)
	out.Y = extent(b.Y, t.sy, t.ty)
	return out
}

func extent(e [2]float64, s, d float64) [2]float64 {
	lo, hi := s*e[0]+d, s*e[1]+d
	if lo > hi {
		lo, hi = hi, lo
	}
	return [2]float64{lo, hi}
}

func union(a, b [2]float64) [2]float64 {
	return [2]float64{math.Min(a[0], b[0]), math.Max(a[1], b[1])}
}
