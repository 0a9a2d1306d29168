package analysis

import (
	"github.com/katalvlaran/zigen/glyph"
	"github.com/katalvlaran/zigen/scheme"
	"github.com/katalvlaran/zigen/sieve"
)

// Sequence is an ordered list of root names.
type Sequence []string

// At returns the i-th root counting from 1 at the front, or from -1 at
// the back. Out-of-range and zero indices report false.
func (s Sequence) At(i int) (string, bool) {
	switch {
	case i > 0 && i <= len(s):
		return s[i-1], true
	case i < 0 && -i <= len(s):
		return s[len(s)+i], true
	}
	return "", false
}

// ComponentResult is the analysis of one component glyph.
type ComponentResult struct {
	Name string

	// Root is set when the component is itself a root.
	Root bool

	// Sequence lists the roots of Best in stroke order.
	Sequence Sequence

	// Best is the selected scheme.
	Best scheme.Scheme

	// Sieves names the sieves applied; Schemes holds every candidate
	// scheme with one score per sieve.
	Sieves  []string
	Schemes []sieve.Scored

	// Placements maps each root of Best to its stroke index lists.
	Placements map[string][][]int

	// Features lists the stroke features under each placement of Best.
	Features [][]glyph.Feature
}

// Tree is the operator structure of a compound with explicit stroke order.
// Leaves carry an operand name and its sequence.
type Tree struct {
	Operator glyph.Operator
	Order    []glyph.Block
	Operands []*Tree

	Name     string
	Sequence Sequence
}

// Leaf reports whether t is an operand leaf.
func (t *Tree) Leaf() bool { return len(t.Operands) == 0 }

// Analysis is one decomposition of one glyph variant.
type Analysis struct {
	Sequence Sequence

	// Component is set for component glyphs and roots.
	Component *ComponentResult

	// Tree is set for compounds with an explicit stroke order.
	Tree *Tree
}

// Result holds every analysis of a character, one per glyph variant
// combination.
type Result struct {
	Name     string
	Analyses []Analysis
}

// Sequences returns the sequence of every analysis.
func (r *Result) Sequences() []Sequence {
	out := make([]Sequence, len(r.Analyses))
	for i, a := range r.Analyses {
		out[i] = a.Sequence
	}
	return out
}

// Batch is the outcome of Analyze.
type Batch struct {
	// Order is the schedule: operands before the characters using them.
	Order []string

	Results map[string]*Result
	Errors  map[string]error
}

// Get returns the result or error recorded for name.
func (b *Batch) Get(name string) (*Result, error) {
	name = glyph.Normalize(name)
	if err, ok := b.Errors[name]; ok {
		return nil, err
	}
	if r, ok := b.Results[name]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}
