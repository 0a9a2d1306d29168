package curve

import "fmt"

// Axis compares two intervals on one coordinate axis.
// Negating an Axis swaps the roles of the two intervals.
type Axis int8

const (
	Before        Axis = -2 // entirely before the other interval
	PartialBefore Axis = -1 // overlapping, starting and ending earlier
	Overlap       Axis = 0  // one contains the other, or they share an end
	PartialAfter  Axis = 1  // overlapping, starting and ending later
	After         Axis = 2  // entirely after the other interval
)

// String returns a short name of a.
func (a Axis) String() string {
	switch a {
	case Before:
		return "before"
	case PartialBefore:
		return "partial-before"
	case Overlap:
		return "overlap"
	case PartialAfter:
		return "partial-after"
	case After:
		return "after"
	}
	return fmt.Sprintf("Axis(%d)", int8(a))
}

// CompareInterval places [a0,a1] relative to [b0,b1]; both must be ordered.
// Comparisons tolerate Epsilon.
func CompareInterval(a0, a1, b0, b1 float64) Axis {
	switch {
	case a1 < b0-Epsilon:
		return Before
	case a0 > b1+Epsilon:
		return After
	case a0 < b0-Epsilon && a1 < b1-Epsilon:
		return PartialBefore
	case a0 > b0+Epsilon && a1 > b1+Epsilon:
		return PartialAfter
	}
	return Overlap
}

// Position tags where on a curve a connection happens.
type Position uint8

const (
	Front Position = iota // at the start point
	Mid                   // strictly inside
	Back                  // at the end point
)

// String returns "front", "mid" or "back".
func (p Position) String() string {
	switch p {
	case Front:
		return "front"
	case Mid:
		return "mid"
	case Back:
		return "back"
	}
	return fmt.Sprintf("Position(%d)", uint8(p))
}

// Kind is the variant of a Relation.
type Kind uint8

const (
	Cross         Kind = iota // the curves intersect away from their ends
	Connect                   // the curves touch at an end of at least one
	Parallel                  // disjoint with the same orientation
	Perpendicular             // disjoint with different orientations
)

// String returns the name of k.
func (k Kind) String() string {
	switch k {
	case Cross:
		return "cross"
	case Connect:
		return "connect"
	case Parallel:
		return "parallel"
	case Perpendicular:
		return "perpendicular"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Relation is the topological relation of one curve to another.
// Only the fields of its Kind are meaningful; the others stay zero so
// that Relations compare with ==.
type Relation struct {
	Kind Kind

	// Connect: where the connection lies on the first and second curve.
	First, Second Position

	// Parallel: comparison along the shared orientation axis and across it.
	MainAxis, CrossAxis Axis

	// Perpendicular: comparison on x and y.
	X, Y Axis
}

// CrossRelation returns the Cross relation.
func CrossRelation() Relation { return Relation{Kind: Cross} }

// ConnectRelation returns Connect(first, second).
func ConnectRelation(first, second Position) Relation {
	return Relation{Kind: Connect, First: first, Second: second}
}

// ParallelRelation returns Parallel(main, cross).
func ParallelRelation(main, cross Axis) Relation {
	return Relation{Kind: Parallel, MainAxis: main, CrossAxis: cross}
}

// PerpendicularRelation returns Perpendicular(x, y).
func PerpendicularRelation(x, y Axis) Relation {
	return Relation{Kind: Perpendicular, X: x, Y: y}
}

// Mirror returns the relation seen from the other curve.
func (r Relation) Mirror() Relation {
	switch r.Kind {
	case Connect:
		return ConnectRelation(r.Second, r.First)
	case Parallel:
		return ParallelRelation(-r.MainAxis, -r.CrossAxis)
	case Perpendicular:
		return PerpendicularRelation(-r.X, -r.Y)
	}
	return r
}

// Disjoint reports whether r is Parallel or Perpendicular.
func (r Relation) Disjoint() bool {
	return r.Kind == Parallel || r.Kind == Perpendicular
}

// String renders r as e.g. "connect(mid,back)" or "parallel(overlap,after)".
func (r Relation) String() string {
	switch r.Kind {
	case Connect:
		return fmt.Sprintf("connect(%v,%v)", r.First, r.Second)
	case Parallel:
		return fmt.Sprintf("parallel(%v,%v)", r.MainAxis, r.CrossAxis)
	case Perpendicular:
		return fmt.Sprintf("perpendicular(%v,%v)", r.X, r.Y)
	}
	return r.Kind.String()
}
