package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zigen/affine"
	"github.com/katalvlaran/zigen/glyph"
	"github.com/katalvlaran/zigen/schedule"
)

// Analyze decomposes names and every compound operand they need.
// Per-character failures are recorded in Batch.Errors and propagate to
// dependents as *BlockedError; a dependency cycle aborts the batch.
func (e *Engine) Analyze(names ...string) (*Batch, error) {
	requested := make([]string, len(names))
	for i, n := range names {
		requested[i] = glyph.Normalize(n)
	}

	// 1) Schedule operands before dependents
	order, err := schedule.Plan(requested, e.dependencies)
	if err != nil {
		var ce *schedule.CycleError
		if errors.As(err, &ce) {
			e.log.Warn("analysis: dependency cycle", "cycles", ce.Cycles)
			return nil, fmt.Errorf("%w: %w", ErrCyclicDependency, err)
		}
		return nil, fmt.Errorf("analysis: %w", err)
	}

	// 2) Analyse in schedule order
	b := &Batch{
		Order:   order,
		Results: make(map[string]*Result, len(order)),
		Errors:  make(map[string]error),
	}
	for _, name := range order {
		r, err := e.analyze(name, b)
		if err != nil {
			b.Errors[name] = err
			var be *BlockedError
			if errors.As(err, &be) {
				e.log.Warn("analysis: blocked", "name", name, "operand", be.Operand)
			} else {
				e.log.Warn("analysis: failed", "name", name, "err", err)
			}
			continue
		}
		b.Results[name] = r
		e.log.Debug("analysis: analysed", "name", name, "analyses", len(r.Analyses))
	}
	e.log.Info("analysis: batch done", "requested", len(names), "scheduled", len(order),
		"failed", len(b.Errors))
	return b, nil
}

// dependencies lists the analysis operands of name: compound operands and
// identity targets over every glyph variant. Roots and unknown names have
// none; component glyphs are rendered, not scheduled.
func (e *Engine) dependencies(name string) ([]string, error) {
	if e.rootSet[name] {
		return nil, nil
	}
	c, ok := e.rep.Lookup(name)
	if !ok {
		return nil, nil
	}
	var out []string
	for _, g := range c.Glyphs {
		if glyph.IsComponent(g) {
			continue
		}
		ds, err := glyph.Dependencies(g)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		for _, d := range ds {
			out = append(out, glyph.Normalize(d))
		}
	}
	return out, nil
}

// analyze handles one scheduled name; every operand is already in b.
func (e *Engine) analyze(name string, b *Batch) (*Result, error) {
	c, ok := e.rep.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if e.rootSet[name] {
		root := e.root(name)
		return &Result{Name: name, Analyses: []Analysis{{Sequence: root.Sequence, Component: root}}}, nil
	}
	if len(c.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: %q has no glyph", ErrNoValidScheme, name)
	}

	res := &Result{Name: name}
	for v, g := range c.Glyphs {
		var (
			as  []Analysis
			err error
		)
		switch x := g.(type) {
		case glyph.Basic, glyph.Derived, glyph.Spliced:
			var cr *ComponentResult
			cr, err = e.component(name, v)
			if err == nil {
				as = []Analysis{{Sequence: cr.Sequence, Component: cr}}
			}
		case glyph.Identity:
			var t *Result
			t, err = operand(name, glyph.Normalize(x.Target), b)
			if err == nil {
				as = t.Analyses
			}
		case glyph.Compound:
			as, err = e.compound(name, x, b)
		default:
			err = fmt.Errorf("analysis: %q: %w: %T", name, glyph.ErrUnknownGlyph, g)
		}
		if err != nil {
			return nil, err
		}
		res.Analyses = append(res.Analyses, as...)
	}
	return res, nil
}

// operand fetches the finished result of an operand.
func operand(name, op string, b *Batch) (*Result, error) {
	if err, failed := b.Errors[op]; failed {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %q needs %q", ErrMissingOperand, name, op)
		}
		return nil, &BlockedError{Name: name, Operand: op, Err: err}
	}
	r, ok := b.Results[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q needs %q", ErrMissingOperand, name, op)
	}
	return r, nil
}

// compound concatenates operand sequences over the cartesian product of
// the operands' analyses.
func (e *Engine) compound(name string, g glyph.Compound, b *Batch) ([]Analysis, error) {
	if err := affine.Check(g.Operator, len(g.Operands), len(g.Parameters)); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNoValidScheme, name, err)
	}
	parts := make([]*Result, len(g.Operands))
	for i, o := range g.Operands {
		r, err := operand(name, glyph.Normalize(o), b)
		if err != nil {
			return nil, err
		}
		if len(r.Analyses) == 0 {
			return nil, fmt.Errorf("%w: %q operand %q has no analysis", ErrNoValidScheme, name, o)
		}
		parts[i] = r
	}

	var out []Analysis
	pick := make([]int, len(parts))
	for {
		// one combination
		var seq Sequence
		operands := make([]*Tree, len(parts))
		for i, r := range parts {
			a := r.Analyses[pick[i]]
			seq = append(seq, a.Sequence...)
			if a.Tree != nil {
				operands[i] = a.Tree
			} else {
				operands[i] = &Tree{Name: r.Name, Sequence: a.Sequence}
			}
		}
		a := Analysis{Sequence: seq}
		if len(g.Order) > 0 {
			a.Tree = &Tree{Operator: g.Operator, Order: g.Order, Operands: operands}
		}
		out = append(out, a)

		// odometer step, last operand fastest
		i := len(pick) - 1
		for ; i >= 0; i-- {
			pick[i]++
			if pick[i] < len(parts[i].Analyses) {
				break
			}
			pick[i] = 0
		}
		if i < 0 {
			return out, nil
		}
	}
}
