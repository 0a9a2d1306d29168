package curve

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"seehuhn.de/go/geom/rect"
)

// Tolerances of the relation engine, in canvas units.
const (
	// Epsilon is the tolerance of coincidence and collinearity tests.
	Epsilon = 1e-6

	// MinSegment stops bisection once both pieces are smaller than this.
	MinSegment = 0.5

	// MaxDepth caps the bisection depth regardless of segment size.
	MaxDepth = 24

	// ConnectDistance reclassifies a curve intersection this close to an
	// end of either curve as a connection.
	ConnectDistance = 2.0
)

// Relation classifies c relative to o. Every pair yields exactly one
// relation and the result is mirror-symmetric in its arguments.
func (c Curve) Relation(o Curve) Relation {
	// Evaluate in a canonical argument order so that swapping the
	// arguments yields exactly the mirrored relation.
	if less(o, c) {
		return relate(o, c).Mirror()
	}
	return relate(c, o)
}

// relate implements the classification for a fixed argument order.
func relate(a, b Curve) Relation {
	// 1. Endpoint coincidence and endpoint-on-line connections
	if r, ok := connection(a, b); ok {
		return r
	}
	// 2. Two straight segments: straddle test
	if a.Linear() && b.Linear() {
		if straddles(a, b) && straddles(b, a) {
			return CrossRelation()
		}
		return disjoint(a, b)
	}
	// 3. Cubic involved: bisection search
	if p, ok := intersect(a, b, 0); ok {
		pa, pb := position(a, p), position(b, p)
		if pa != Mid || pb != Mid {
			return ConnectRelation(pa, pb)
		}
		return CrossRelation()
	}
	// 4. No contact at all
	return disjoint(a, b)
}

// connection tests the exact connection cases of step 1.
func connection(a, b Curve) (Relation, bool) {
	ends := [...]struct {
		p, q          Point
		first, second Position
	}{
		{a.Start(), b.Start(), Front, Front},
		{a.Start(), b.End(), Front, Back},
		{a.End(), b.Start(), Back, Front},
		{a.End(), b.End(), Back, Back},
	}
	for _, e := range ends {
		if same(e.p, e.q) {
			return ConnectRelation(e.first, e.second), true
		}
	}
	if a.Linear() {
		if onSegment(a, b.Start()) {
			return ConnectRelation(Mid, Front), true
		}
		if onSegment(a, b.End()) {
			return ConnectRelation(Mid, Back), true
		}
	}
	if b.Linear() {
		if onSegment(b, a.Start()) {
			return ConnectRelation(Front, Mid), true
		}
		if onSegment(b, a.End()) {
			return ConnectRelation(Back, Mid), true
		}
	}
	return Relation{}, false
}

// straddles reports whether b's endpoints lie strictly on opposite sides of a's line.
func straddles(a, b Curve) bool {
	dir := a.End().Sub(a.Start())
	d1 := cross(dir, b.Start().Sub(a.Start()))
	d2 := cross(dir, b.End().Sub(a.Start()))
	return d1*d2 < 0
}

// onSegment reports whether p lies on the straight curve l, excluding its ends.
func onSegment(l Curve, p Point) bool {
	s, e := l.Start(), l.End()
	dir := e.Sub(s)
	length := dir.Length()
	if length == 0 {
		return false
	}
	rel := p.Sub(s)
	if math.Abs(cross(dir, rel)) > Epsilon*length {
		return false
	}
	t := dot(dir, rel) / (length * length)
	return t > 0 && t < 1 && !same(p, s) && !same(p, e)
}

// intersect searches a common point of a and b by recursive bisection.
// The larger piece is split first; the first hit found is returned.
func intersect(a, b Curve, depth int) (Point, bool) {
	if !overlaps(a.Bounds(), b.Bounds()) {
		return Point{}, false
	}
	sa, sb := a.size(), b.size()
	if (sa < MinSegment && sb < MinSegment) || depth >= MaxDepth {
		return a.Evaluate(0.5), true
	}
	if sa >= sb {
		a1, a2 := a.Bisect()
		if p, ok := intersect(a1, b, depth+1); ok {
			return p, true
		}
		return intersect(a2, b, depth+1)
	}
	b1, b2 := b.Bisect()
	if p, ok := intersect(a, b1, depth+1); ok {
		return p, true
	}
	return intersect(a, b2, depth+1)
}

// position tags p relative to the ends of c.
func position(c Curve, p Point) Position {
	switch {
	case p.Sub(c.Start()).Length() <= ConnectDistance:
		return Front
	case p.Sub(c.End()).Length() <= ConnectDistance:
		return Back
	}
	return Mid
}

// disjoint classifies two curves without contact by interval comparison.
func disjoint(a, b Curve) Relation {
	ba, bb := a.Bounds(), b.Bounds()
	x := CompareInterval(ba.LLx, ba.URx, bb.LLx, bb.URx)
	y := CompareInterval(ba.LLy, ba.URy, bb.LLy, bb.URy)
	if a.Orientation != b.Orientation {
		return PerpendicularRelation(x, y)
	}
	if a.Orientation == Horizontal {
		return ParallelRelation(x, y)
	}
	return ParallelRelation(y, x)
}

func overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx+Epsilon && b.LLx <= a.URx+Epsilon &&
		a.LLy <= b.URy+Epsilon && b.LLy <= a.URy+Epsilon
}

func same(p, q Point) bool {
	return scalar.EqualWithinAbs(p.X, q.X, Epsilon) && scalar.EqualWithinAbs(p.Y, q.Y, Epsilon)
}

// less is a total order on curves used to canonicalize argument order.
func less(a, b Curve) bool {
	if len(a.Points) != len(b.Points) {
		return len(a.Points) < len(b.Points)
	}
	for i := range a.Points {
		p, q := a.Points[i], b.Points[i]
		if p.X != q.X {
			return p.X < q.X
		}
		if p.Y != q.Y {
			return p.Y < q.Y
		}
	}
	return a.Orientation < b.Orientation
}
