package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zigen/degenerator"
	"github.com/katalvlaran/zigen/glyph"
	"github.com/katalvlaran/zigen/mask"
	"github.com/katalvlaran/zigen/render"
	"github.com/katalvlaran/zigen/scheme"
	"github.com/katalvlaran/zigen/sieve"
)

// AnalyzeComponent decomposes the first glyph variant of name, which
// must be a root or a basic, derived or spliced glyph.
func (e *Engine) AnalyzeComponent(name string) (*ComponentResult, error) {
	name = glyph.Normalize(name)
	c, ok := e.rep.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if e.rootSet[name] {
		return e.root(name), nil
	}
	if len(c.Glyphs) == 0 || !glyph.IsComponent(c.Glyphs[0]) {
		return nil, fmt.Errorf("%w: %q", ErrNotComponent, name)
	}
	return e.component(name, 0)
}

// root is the short-circuit analysis of a root.
func (e *Engine) root(name string) *ComponentResult {
	return &ComponentResult{
		Name:     name,
		Root:     true,
		Sequence: Sequence{name},
	}
}

// component analyses glyph variant v of name, memoized per configuration.
func (e *Engine) component(name string, v int) (*ComponentResult, error) {
	key := variantKey{name: name, variant: v}
	if r, ok := e.components[key]; ok {
		e.log.Debug("analysis: component cache hit", "name", name, "variant", v)
		return r, nil
	}

	// 1) Render and build the StrokeGraph
	box, err := e.renderer.RenderVariant(name, v)
	if errors.Is(err, render.ErrMissing) {
		return nil, fmt.Errorf("%w: %q: %w", ErrMissingOperand, name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("analysis: %q: %w", name, err)
	}
	n := len(box.Strokes)
	if n == 0 {
		return nil, fmt.Errorf("%w: %q has no strokes", ErrNoValidScheme, name)
	}
	if err := mask.Check(n); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNoValidScheme, name, err)
	}
	target, err := degenerator.NewShape(box.Strokes, e.cache)
	if err != nil {
		return nil, fmt.Errorf("analysis: %q: %w", name, err)
	}

	// 2) Root placements in root order, then single-stroke fallbacks
	type slot struct {
		root string
		m    mask.Mask
	}
	degenerated := make(map[slot]int)
	var placements []scheme.Placement
	for _, r := range e.rootShapes() {
		for _, idx := range degenerator.Match(e.cfg.Degenerator, r.shape, target) {
			p, err := scheme.NewPlacement(r.name, n, idx)
			if err != nil {
				return nil, fmt.Errorf("analysis: %q: %w", name, err)
			}
			placements = append(placements, p)
			degenerated[slot{r.name, p.Mask}] = degenerator.Degenerated(r.shape, target, idx)
		}
	}
	for i, s := range box.Strokes {
		p, err := scheme.NewPlacement(string(s.Feature), n, []int{i})
		if err != nil {
			return nil, fmt.Errorf("analysis: %q: %w", name, err)
		}
		placements = append(placements, p)
	}
	e.log.Debug("analysis: placements found", "name", name, "strokes", n, "placements", len(placements))

	// 3) Exact covers
	schemes := scheme.Schemes(n, placements)
	if len(schemes) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoValidScheme, name)
	}

	// 4) Selection
	ctx := sieve.NewContext(target.Graph, e.cfg.Strong, e.cfg.Weak)
	ctx.Degeneracy = func(p scheme.Placement) int { return degenerated[slot{p.Root, p.Mask}] }
	res, err := sieve.Select(schemes, e.sieves, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNoValidScheme, name, err)
	}
	if res.Ambiguous() {
		e.log.Warn("analysis: ambiguous scheme", "name", name, "candidates", len(res.Survivors))
		return nil, &AmbiguityError{Name: name, Candidates: res.Candidates()}
	}

	// 5) Result with reverse root map and placement features
	best := res.Best().Scheme
	out := &ComponentResult{
		Name:       name,
		Sequence:   Sequence(best.Roots()),
		Best:       best,
		Sieves:     res.Sieves,
		Schemes:    res.Scored,
		Placements: make(map[string][][]int),
		Features:   make([][]glyph.Feature, len(best)),
	}
	for k, p := range best {
		out.Placements[p.Root] = append(out.Placements[p.Root], p.Indices)
		fs := make([]glyph.Feature, len(p.Indices))
		for j, i := range p.Indices {
			fs[j] = box.Strokes[i].Feature
		}
		out.Features[k] = fs
	}
	e.components[key] = out
	e.log.Debug("analysis: component analysed", "name", name, "sequence", out.Sequence, "schemes", len(schemes))
	return out, nil
}
