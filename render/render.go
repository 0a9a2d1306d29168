package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/zigen/affine"
	"github.com/katalvlaran/zigen/glyph"
)

// MaxDepth is the default bound on the reference chain length.
const MaxDepth = 32

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("render: invalid option supplied")

// Option configures a Renderer.
type Option func(*Options)

// Options holds renderer settings.
type Options struct {
	// MaxDepth bounds the reference chain; must be positive.
	MaxDepth int

	// Layout is forwarded to affine.Compose.
	Layout []affine.Option

	err error
}

// DefaultOptions returns MaxDepth = MaxDepth and default layout.
func DefaultOptions() Options {
	return Options{MaxDepth: MaxDepth}
}

// WithMaxDepth bounds the reference chain.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLayout forwards options to the affine compositor.
func WithLayout(opts ...affine.Option) Option {
	return func(o *Options) {
		o.Layout = append(o.Layout, opts...)
	}
}

// Renderer renders characters of one repertoire.
type Renderer struct {
	rep  *glyph.Repertoire
	opts Options
	memo map[string]affine.Box
}

// New returns a Renderer over rep.
func New(rep *glyph.Repertoire, opts ...Option) (*Renderer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Renderer{rep: rep, opts: o, memo: make(map[string]affine.Box)}, nil
}

// Render renders the first glyph variant of name.
func (r *Renderer) Render(name string) (affine.Box, error) {
	return r.RenderVariant(name, 0)
}

// RenderVariant renders glyph variant v of name. Operands and sources
// always use their first variant.
func (r *Renderer) RenderVariant(name string, v int) (affine.Box, error) {
	c, ok := r.rep.Lookup(name)
	if !ok {
		return affine.Box{}, fmt.Errorf("%w: %q", ErrMissing, name)
	}
	if v < 0 || v >= len(c.Glyphs) {
		return affine.Box{}, fmt.Errorf("%w: %q variant %d of %d", ErrNoGlyph, name, v, len(c.Glyphs))
	}
	if v == 0 {
		return r.render(name, nil)
	}
	return r.glyph(name, c.Glyphs[v], []string{name})
}

// Strokes is Render without the extents.
func (r *Renderer) Strokes(name string) ([]glyph.Stroke, error) {
	b, err := r.Render(name)
	return b.Strokes, err
}

// render resolves name with stack holding the names being rendered.
func (r *Renderer) render(name string, stack []string) (affine.Box, error) {
	// 1) Memo hit
	if b, ok := r.memo[name]; ok {
		return b, nil
	}

	// 2) Gray-set check: name already on the stack closes a cycle
	for i, s := range stack {
		if s == name {
			chain := append(append([]string(nil), stack[i:]...), name)
			return affine.Box{}, &CycleError{Chain: chain}
		}
	}
	stack = append(stack, name)
	if len(stack) > r.opts.MaxDepth {
		return affine.Box{}, &DepthError{Limit: r.opts.MaxDepth, Chain: append([]string(nil), stack...)}
	}

	// 3) First variant of the character
	c, ok := r.rep.Lookup(name)
	if !ok {
		return affine.Box{}, fmt.Errorf("%w: %q", ErrMissing, name)
	}
	if len(c.Glyphs) == 0 {
		return affine.Box{}, fmt.Errorf("%w: %q has none", ErrNoGlyph, name)
	}
	b, err := r.glyph(name, c.Glyphs[0], stack)
	if err != nil {
		return affine.Box{}, err
	}
	r.memo[name] = b
	return b, nil
}

// glyph renders one variant; stack already ends with name.
func (r *Renderer) glyph(name string, g glyph.Glyph, stack []string) (affine.Box, error) {
	switch v := g.(type) {
	case glyph.Basic:
		for i, s := range v.Strokes {
			if err := s.CheckSchema(); err != nil {
				return affine.Box{}, fmt.Errorf("render: %q stroke %d: %w", name, i, err)
			}
		}
		return affine.NewBox(v.Strokes)
	case glyph.Derived:
		src, err := r.render(v.Source, stack)
		if err != nil {
			return affine.Box{}, err
		}
		strokes := make([]glyph.Stroke, len(v.Strokes))
		for i, d := range v.Strokes {
			switch {
			case d.Literal != nil:
				if err := d.Literal.CheckSchema(); err != nil {
					return affine.Box{}, fmt.Errorf("render: %q stroke %d: %w", name, i, err)
				}
				strokes[i] = *d.Literal
			case d.Index >= 0 && d.Index < len(src.Strokes):
				strokes[i] = src.Strokes[d.Index]
			default:
				return affine.Box{}, fmt.Errorf("%w: %q copies stroke %d of %q (%d strokes)",
					ErrCopy, name, d.Index, v.Source, len(src.Strokes))
			}
		}
		return affine.NewBox(strokes)
	case glyph.Spliced:
		return r.compose(name, v.Operator, v.Operands, v.Parameters, v.Order, stack)
	case glyph.Compound:
		return r.compose(name, v.Operator, v.Operands, v.Parameters, v.Order, stack)
	case glyph.Identity:
		return r.render(v.Target, stack)
	default:
		return affine.Box{}, fmt.Errorf("render: %q: %w: %T", name, glyph.ErrUnknownGlyph, g)
	}
}

func (r *Renderer) compose(name string, op glyph.Operator, operands []string,
	params []glyph.PartParams, order []glyph.Block, stack []string) (affine.Box, error) {
	parts := make([]affine.Box, len(operands))
	for i, o := range operands {
		b, err := r.render(o, stack)
		if err != nil {
			return affine.Box{}, err
		}
		parts[i] = b
	}
	b, err := affine.Compose(op, parts, params, order, r.opts.Layout...)
	if err != nil {
		return affine.Box{}, fmt.Errorf("render: %q: %w", name, err)
	}
	return b, nil
}
