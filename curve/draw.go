package curve

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Point is a coordinate on the glyph canvas.
type Point = vec.Vec2

// ErrBadDraw indicates a draw command with the wrong number of parameters
// or an unknown kind.
var ErrBadDraw = errors.New("curve: malformed draw command")

// DrawKind selects the drawing instruction of a Draw.
type DrawKind uint8

const (
	DrawH DrawKind = iota // horizontal line, params: dx
	DrawV                 // vertical line, params: dy
	DrawL                 // line, params: dx, dy
	DrawC                 // cubic Bézier, params: x1, y1, x2, y2, x3, y3 (relative)
	DrawA                 // full circle from its top point, clockwise, params: r
)

// arity lists the parameter count of each DrawKind.
var arity = [...]int{DrawH: 1, DrawV: 1, DrawL: 2, DrawC: 6, DrawA: 1}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

// String returns the SVG-like letter of k.
func (k DrawKind) String() string {
	switch k {
	case DrawH:
		return "h"
	case DrawV:
		return "v"
	case DrawL:
		return "l"
	case DrawC:
		return "c"
	case DrawA:
		return "a"
	}
	return "DrawKind(" + strconv.Itoa(int(k)) + ")"
}

// Draw is one relative drawing instruction.
type Draw struct {
	Kind   DrawKind
	Params []float64
}

// H returns a horizontal line of length dx.
func H(dx float64) Draw { return Draw{Kind: DrawH, Params: []float64{dx}} }

// V returns a vertical line of length dy.
func V(dy float64) Draw { return Draw{Kind: DrawV, Params: []float64{dy}} }

// L returns a straight line by (dx, dy).
func L(dx, dy float64) Draw { return Draw{Kind: DrawL, Params: []float64{dx, dy}} }

// C returns a cubic Bézier whose control points are offsets from the current point.
func C(x1, y1, x2, y2, x3, y3 float64) Draw {
	return Draw{Kind: DrawC, Params: []float64{x1, y1, x2, y2, x3, y3}}
}

// A returns a full circle of radius r starting at its top point.
func A(r float64) Draw { return Draw{Kind: DrawA, Params: []float64{r}} }

// Validate checks the kind and parameter count of d.
func (d Draw) Validate() error {
	if int(d.Kind) >= len(arity) {
		return fmt.Errorf("%w: kind %v", ErrBadDraw, d.Kind)
	}
	if len(d.Params) != arity[d.Kind] {
		return fmt.Errorf("%w: %v wants %d params, got %d", ErrBadDraw, d.Kind, arity[d.Kind], len(d.Params))
	}
	for _, p := range d.Params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: non-finite parameter in %v", ErrBadDraw, d.Kind)
		}
	}
	return nil
}

// String renders d as "c 1 2 3 4 5 6".
func (d Draw) String() string {
	var sb strings.Builder
	sb.WriteString(d.Kind.String())
	for _, p := range d.Params {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	return sb.String()
}

// FromDraw folds d from start into absolute curves and returns them together
// with the new current point. Lines and cubics yield one curve, a circle
// yields four cubic quarter arcs and ends where it started.
func FromDraw(start Point, d Draw) ([]Curve, Point, error) {
	if err := d.Validate(); err != nil {
		return nil, start, err
	}
	p := d.Params
	switch d.Kind {
	case DrawH:
		end := start.Add(Point{X: p[0]})
		return []Curve{NewLine(start, end, Horizontal)}, end, nil
	case DrawV:
		end := start.Add(Point{Y: p[0]})
		return []Curve{NewLine(start, end, Vertical)}, end, nil
	case DrawL:
		end := start.Add(Point{X: p[0], Y: p[1]})
		return []Curve{NewLine(start, end, dominant(p[0], p[1]))}, end, nil
	case DrawC:
		c1 := start.Add(Point{X: p[0], Y: p[1]})
		c2 := start.Add(Point{X: p[2], Y: p[3]})
		end := start.Add(Point{X: p[4], Y: p[5]})
		return []Curve{NewCubic(start, c1, c2, end, dominant(p[4], p[5]))}, end, nil
	default: // DrawA
		return circle(start, p[0]), start, nil
	}
}

// dominant picks the orientation of a displacement; ties go horizontal.
func dominant(dx, dy float64) Orientation {
	if math.Abs(dx) >= math.Abs(dy) {
		return Horizontal
	}
	return Vertical
}

// circle approximates a clockwise circle starting at top with four cubics.
func circle(top Point, r float64) []Curve {
	k := kappa * r
	c := top.Add(Point{Y: r})
	right := c.Add(Point{X: r})
	bottom := c.Add(Point{Y: r})
	left := c.Add(Point{X: -r})
	return []Curve{
		NewCubic(top, top.Add(Point{X: k}), right.Add(Point{Y: -k}), right, Horizontal),
		NewCubic(right, right.Add(Point{Y: k}), bottom.Add(Point{X: k}), bottom, Horizontal),
		NewCubic(bottom, bottom.Add(Point{X: -k}), left.Add(Point{Y: k}), left, Horizontal),
		NewCubic(left, left.Add(Point{Y: -k}), top.Add(Point{X: -k}), top, Horizontal),
	}
}
