package curve

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Orientation is the dominant axis of a curve.
type Orientation uint8

const (
	Horizontal Orientation = iota // runs mostly along x
	Vertical                      // runs mostly along y
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Curve is an absolute linear or cubic Bézier segment.
// Points holds 2 control points for a line and 4 for a cubic.
type Curve struct {
	Orientation Orientation
	Points      []Point
}

// NewLine returns the linear curve p0→p1.
func NewLine(p0, p1 Point, o Orientation) Curve {
	return Curve{Orientation: o, Points: []Point{p0, p1}}
}

// NewCubic returns the cubic curve with control points p0..p3.
func NewCubic(p0, p1, p2, p3 Point, o Orientation) Curve {
	return Curve{Orientation: o, Points: []Point{p0, p1, p2, p3}}
}

// Linear reports whether c is a straight segment.
func (c Curve) Linear() bool { return len(c.Points) == 2 }

// Start returns the first control point.
func (c Curve) Start() Point { return c.Points[0] }

// End returns the last control point.
func (c Curve) End() Point { return c.Points[len(c.Points)-1] }

// Evaluate returns the point at parameter t ∈ [0,1].
func (c Curve) Evaluate(t float64) Point {
	if c.Linear() {
		return lerp(c.Points[0], c.Points[1], t)
	}
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	p := c.Points
	return Point{
		X: b0*p[0].X + b1*p[1].X + b2*p[2].X + b3*p[3].X,
		Y: b0*p[0].Y + b1*p[1].Y + b2*p[2].Y + b3*p[3].Y,
	}
}

// Bisect splits c exactly at t = 0.5. Both halves keep c's orientation.
func (c Curve) Bisect() (Curve, Curve) {
	p := c.Points
	if c.Linear() {
		m := mid(p[0], p[1])
		return NewLine(p[0], m, c.Orientation), NewLine(m, p[1], c.Orientation)
	}
	// de Casteljau
	p01 := mid(p[0], p[1])
	p12 := mid(p[1], p[2])
	p23 := mid(p[2], p[3])
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	m := mid(p012, p123)
	return NewCubic(p[0], p01, p012, m, c.Orientation), NewCubic(m, p123, p23, p[3], c.Orientation)
}

// Bounds returns the bounding box of the control points, which contains the curve.
func (c Curve) Bounds() rect.Rect {
	r := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	for _, p := range c.Points {
		r.LLx = math.Min(r.LLx, p.X)
		r.LLy = math.Min(r.LLy, p.Y)
		r.URx = math.Max(r.URx, p.X)
		r.URy = math.Max(r.URy, p.Y)
	}
	return r
}

// size is the larger side of the bounding box.
func (c Curve) size() float64 {
	b := c.Bounds()
	return math.Max(b.URx-b.LLx, b.URy-b.LLy)
}

// Transform applies the affine map m to every control point.
// Orientation is preserved: m is expected to be a scale/translate/flip.
func (c Curve) Transform(m matrix.Matrix) Curve {
	pts := make([]Point, len(c.Points))
	for i, p := range c.Points {
		x, y := m.Apply(p.X, p.Y)
		pts[i] = Point{X: x, Y: y}
	}
	return Curve{Orientation: c.Orientation, Points: pts}
}

// Equal reports whether c and o have identical orientation and control points.
func (c Curve) Equal(o Curve) bool {
	if c.Orientation != o.Orientation || len(c.Points) != len(o.Points) {
		return false
	}
	for i := range c.Points {
		if c.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}
