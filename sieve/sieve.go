package sieve

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/zigen/scheme"
	"github.com/katalvlaran/zigen/topology"
)

// Sentinel errors for sieve lookup and selection.
var (
	// ErrNoCandidates is returned by Select for an empty scheme list.
	ErrNoCandidates = errors.New("sieve: no candidate schemes")

	// ErrUnknownSieve is returned for a name missing from the registry.
	ErrUnknownSieve = errors.New("sieve: unknown sieve")

	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("sieve: duplicate sieve name")
)

// Score is compared lexicographically; lower is better. A shorter score
// that is a prefix of a longer one ranks first.
type Score []int

// Compare returns -1, 0 or +1.
func (s Score) Compare(o Score) int { return slices.Compare(s, o) }

// Context carries what sieves know about the glyph being decomposed.
type Context struct {
	// Graph is the StrokeGraph of the component.
	Graph *topology.Graph

	// Strong and Weak are root name sets.
	Strong, Weak map[string]bool

	// Degeneracy counts the strokes of a placement matched through
	// degeneration. Nil means none are.
	Degeneracy func(scheme.Placement) int
}

// NewContext builds a Context from root name lists.
func NewContext(g *topology.Graph, strong, weak []string) *Context {
	return &Context{Graph: g, Strong: set(strong), Weak: set(weak)}
}

func set(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Sieve is one selection criterion.
type Sieve interface {
	Name() string
	Score(s scheme.Scheme, ctx *Context) Score
}

// Func adapts a function into a Sieve.
type Func struct {
	name string
	fn   func(scheme.Scheme, *Context) Score
}

// New returns a Sieve named name scoring with fn.
func New(name string, fn func(scheme.Scheme, *Context) Score) Func {
	return Func{name: name, fn: fn}
}

// Name implements Sieve.
func (f Func) Name() string { return f.name }

// Score implements Sieve.
func (f Func) Score(s scheme.Scheme, ctx *Context) Score { return f.fn(s, ctx) }

// Registry maps names to sieves.
type Registry struct {
	sieves map[string]Sieve
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sieves: make(map[string]Sieve)}
}

// DefaultRegistry returns a new registry holding every built-in sieve.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range Builtins() {
		_ = r.Register(s)
	}
	return r
}

// Register adds s under its name.
func (r *Registry) Register(s Sieve) error {
	if _, ok := r.sieves[s.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, s.Name())
	}
	r.sieves[s.Name()] = s
	return nil
}

// Lookup returns the sieve called name.
func (r *Registry) Lookup(name string) (Sieve, bool) {
	s, ok := r.sieves[name]
	return s, ok
}

// Resolve looks up every name in order.
func (r *Registry) Resolve(names []string) ([]Sieve, error) {
	out := make([]Sieve, len(names))
	for i, n := range names {
		s, ok := r.sieves[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSieve, n)
		}
		out[i] = s
	}
	return out, nil
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.sieves)
	slices.Sort(names)
	return names
}
