package glyph

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"github.com/katalvlaran/zigen/curve"
)

// Stroke is one pen stroke: a feature, an absolute start point and a
// sequence of draws relative to the running current point.
type Stroke struct {
	Feature Feature
	Start   curve.Point
	Draws   []curve.Draw
}

// NewStroke is a convenience constructor.
func NewStroke(f Feature, x, y float64, draws ...curve.Draw) Stroke {
	return Stroke{Feature: f, Start: curve.Point{X: x, Y: y}, Draws: draws}
}

// Validate checks the feature and every draw command.
func (s Stroke) Validate() error {
	if !s.Feature.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, s.Feature)
	}
	for i, d := range s.Draws {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("glyph: stroke %s draw %d: %w", s.Feature, i, err)
		}
	}
	return nil
}

// CheckSchema validates s and checks its draws against the catalog schema.
func (s Stroke) CheckSchema() error {
	if err := s.Validate(); err != nil {
		return err
	}
	return matchSchema(s.Feature, s.Draws)
}

// Curves folds the draws from Start into absolute curves.
func (s Stroke) Curves() ([]curve.Curve, error) {
	out := make([]curve.Curve, 0, len(s.Draws))
	cur := s.Start
	for i, d := range s.Draws {
		cs, next, err := curve.FromDraw(cur, d)
		if err != nil {
			return nil, fmt.Errorf("glyph: stroke %s draw %d: %w", s.Feature, i, err)
		}
		out = append(out, cs...)
		cur = next
	}
	return out, nil
}

// Transform maps s through the affine matrix m. Relative offsets go through
// the linear part of m only. Circles are expanded into four cubic draws so
// that non-uniform scales and flips stay exact.
func (s Stroke) Transform(m matrix.Matrix) Stroke {
	diagonal := m[1] == 0 && m[2] == 0
	vector := func(x, y float64) (float64, float64) {
		return m[0]*x + m[2]*y, m[1]*x + m[3]*y
	}
	draws := make([]curve.Draw, 0, len(s.Draws))
	cur := s.Start
	for _, d := range s.Draws {
		p := d.Params
		switch d.Kind {
		case curve.DrawH:
			if diagonal {
				draws = append(draws, curve.H(m[0]*p[0]))
			} else {
				draws = append(draws, curve.L(vector(p[0], 0)))
			}
			cur = cur.Add(curve.Point{X: p[0]})
		case curve.DrawV:
			if diagonal {
				draws = append(draws, curve.V(m[3]*p[0]))
			} else {
				draws = append(draws, curve.L(vector(0, p[0])))
			}
			cur = cur.Add(curve.Point{Y: p[0]})
		case curve.DrawL:
			draws = append(draws, curve.L(vector(p[0], p[1])))
			cur = cur.Add(curve.Point{X: p[0], Y: p[1]})
		case curve.DrawC:
			x1, y1 := vector(p[0], p[1])
			x2, y2 := vector(p[2], p[3])
			x3, y3 := vector(p[4], p[5])
			draws = append(draws, curve.C(x1, y1, x2, y2, x3, y3))
			cur = cur.Add(curve.Point{X: p[4], Y: p[5]})
		case curve.DrawA:
			cs, _, _ := curve.FromDraw(cur, d)
			for _, c := range cs {
				q := c.Points
				x1, y1 := vector(q[1].X-q[0].X, q[1].Y-q[0].Y)
				x2, y2 := vector(q[2].X-q[0].X, q[2].Y-q[0].Y)
				x3, y3 := vector(q[3].X-q[0].X, q[3].Y-q[0].Y)
				draws = append(draws, curve.C(x1, y1, x2, y2, x3, y3))
			}
		default:
			draws = append(draws, d)
		}
	}
	x, y := m.Apply(s.Start.X, s.Start.Y)
	return Stroke{Feature: s.Feature, Start: curve.Point{X: x, Y: y}, Draws: draws}
}
