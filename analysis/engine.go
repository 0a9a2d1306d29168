package analysis

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/zigen"
	"github.com/katalvlaran/zigen/affine"
	"github.com/katalvlaran/zigen/config"
	"github.com/katalvlaran/zigen/degenerator"
	"github.com/katalvlaran/zigen/glyph"
	"github.com/katalvlaran/zigen/render"
	"github.com/katalvlaran/zigen/sieve"
	"github.com/katalvlaran/zigen/topology"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("analysis: invalid option supplied")

// Option configures an Engine.
type Option func(*Options)

// Options holds the collaborators of an Engine.
type Options struct {
	// Logger defaults to zigen.Logger() at construction time.
	Logger *slog.Logger

	// Registry defaults to sieve.DefaultRegistry().
	Registry *sieve.Registry

	// Cache defaults to a fresh topology.Cache.
	Cache *topology.Cache

	err error
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithRegistry sets the sieve registry.
func WithRegistry(r *sieve.Registry) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil registry", ErrOptionViolation)
			return
		}
		o.Registry = r
	}
}

// WithTopologyCache shares a StrokeGraph cache between engines.
func WithTopologyCache(c *topology.Cache) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: nil cache", ErrOptionViolation)
			return
		}
		o.Cache = c
	}
}

// rootShape is a rendered root ready for matching.
type rootShape struct {
	name  string
	shape degenerator.Shape
}

type variantKey struct {
	name    string
	variant int
}

// Engine runs analyses over one repertoire.
type Engine struct {
	rep   *glyph.Repertoire
	cfg   config.Config
	reg   *sieve.Registry
	cache *topology.Cache
	log   *slog.Logger

	// derived from cfg; rebuilt by invalidate
	renderer   *render.Renderer
	sieves     []sieve.Sieve
	rootSet    map[string]bool
	shapes     []rootShape
	shaped     bool
	components map[variantKey]*ComponentResult
}

// New returns an Engine after validating cfg against the registry.
func New(rep *glyph.Repertoire, cfg config.Config, opts ...Option) (*Engine, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Logger == nil {
		o.Logger = zigen.Logger()
	}
	if o.Registry == nil {
		o.Registry = sieve.DefaultRegistry()
	}
	if o.Cache == nil {
		o.Cache = topology.NewCache()
	}

	e := &Engine{rep: rep, reg: o.Registry, cache: o.Cache, log: o.Logger}
	if err := e.Reconfigure(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() config.Config { return e.cfg.Clone() }

// Reconfigure validates and installs cfg, dropping every memoized result.
func (e *Engine) Reconfigure(cfg config.Config) error {
	if err := cfg.Validate(e.reg); err != nil {
		return err
	}
	e.cfg = cfg.Clone()
	return e.invalidate()
}

// SetDecisions replaces the root decisions, dropping every memoized result.
func (e *Engine) SetDecisions(decisions map[string]string) error {
	cfg := e.cfg.Clone()
	cfg.Decisions = make(map[string]string, len(decisions))
	for k, v := range decisions {
		cfg.Decisions[glyph.Normalize(k)] = v
	}
	e.cfg = cfg
	return e.invalidate()
}

// Roots returns the root set: decision keys present in the repertoire.
func (e *Engine) Roots() []string {
	out := maps.Keys(e.rootSet)
	slices.Sort(out)
	return out
}

// IsRoot reports whether name is in the root set.
func (e *Engine) IsRoot(name string) bool { return e.rootSet[glyph.Normalize(name)] }

func (e *Engine) invalidate() error {
	sieves, err := e.reg.Resolve(e.cfg.Sieves)
	if err != nil {
		return err
	}
	r, err := render.New(e.rep, render.WithLayout(affine.WithGap(e.cfg.Gap)))
	if err != nil {
		return err
	}
	e.sieves = sieves
	e.renderer = r
	e.rootSet = make(map[string]bool, len(e.cfg.Decisions))
	for name := range e.cfg.Decisions {
		name = glyph.Normalize(name)
		if e.rep.Has(name) {
			e.rootSet[name] = true
		}
	}
	e.shapes, e.shaped = nil, false
	e.components = make(map[variantKey]*ComponentResult)
	e.log.Debug("analysis: configuration installed",
		"roots", len(e.rootSet), "sieves", len(sieves), "no_cross", e.cfg.Degenerator.NoCross)
	return nil
}

// rootShapes renders every root once per configuration. Roots that fail
// to render are logged and left out of matching.
func (e *Engine) rootShapes() []rootShape {
	if e.shaped {
		return e.shapes
	}
	for _, name := range e.Roots() {
		box, err := e.renderer.Render(name)
		if err == nil && len(box.Strokes) == 0 {
			continue
		}
		var shape degenerator.Shape
		if err == nil {
			shape, err = degenerator.NewShape(box.Strokes, e.cache)
		}
		if err != nil {
			e.log.Warn("analysis: root skipped", "root", name, "err", err)
			continue
		}
		e.shapes = append(e.shapes, rootShape{name: name, shape: shape})
	}
	e.shaped = true
	return e.shapes
}
