package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/zigen/bfs"
	"github.com/katalvlaran/zigen/core"
)

// ErrCycle is matched by every *CycleError.
var ErrCycle = errors.New("schedule: dependency cycle")

// CycleError reports the cyclic components left after scheduling.
type CycleError struct {
	// Cycles holds each strongly connected component, names sorted.
	Cycles [][]string

	// Blocked lists names outside any cycle that depend on one.
	Blocked []string
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		parts[i] = "{" + strings.Join(c, " ") + "}"
	}
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(parts, ", "))
}

// Unwrap lets errors.Is match ErrCycle.
func (e *CycleError) Unwrap() error { return ErrCycle }

// Deps returns the names name depends on.
type Deps func(name string) ([]string, error)

// Option configures Plan.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext sets a cancellation context. Nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Plan returns every name reachable from requested, dependencies first.
//
// Steps:
//  1. bfs.BFS discovers the names and fills a core.Graph with one edge
//     per dependency, operand → dependent.
//  2. Kahn's algorithm releases names whose operands are all placed,
//     smallest name first.
//  3. Names never released form a *CycleError.
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E)
func Plan(requested []string, deps Deps, opts ...Option) ([]string, error) {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Breadth-first discovery into a graph of operand → dependent edges
	g := core.NewGraph(core.WithLoops())
	res, err := bfs.BFS(g, requested, bfs.Expand(deps), bfs.WithContext(o.ctx))
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	names := res.Order

	// 2) Kahn's algorithm with the smallest ready name first; a
	// self-loop keeps its vertex's in-degree above zero
	indeg := make(map[string]int, len(names))
	var ready []string
	for _, n := range names {
		d, err := g.InDegree(n)
		if err != nil {
			return nil, fmt.Errorf("schedule: %w", err)
		}
		indeg[n] = d
		if d == 0 {
			ready = insert(ready, n)
		}
	}
	order := make([]string, 0, len(names))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)
		next, err := g.Successors(name)
		if err != nil {
			return nil, fmt.Errorf("schedule: %w", err)
		}
		for _, n := range next {
			indeg[n]--
			if indeg[n] == 0 {
				ready = insert(ready, n)
			}
		}
	}
	if len(order) == len(names) {
		return order, nil
	}

	// 3) Leftovers: report cycles and the names they block
	return nil, cycleError(g, names, order)
}

func insert(ready []string, name string) []string {
	i, _ := slices.BinarySearch(ready, name)
	return slices.Insert(ready, i, name)
}

// cycleError lists self-loops and the strongly connected components of
// the dependency graph, found with gonum's Tarjan implementation.
func cycleError(g *core.Graph, names, order []string) *CycleError {
	done := make(map[string]bool, len(order))
	for _, n := range order {
		done[n] = true
	}
	ids := make(map[string]int64, len(names))
	dg := simple.NewDirectedGraph()
	for i, n := range names {
		ids[n] = int64(i)
		dg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From != e.To {
			dg.SetEdge(simple.Edge{F: simple.Node(ids[e.From]), T: simple.Node(ids[e.To])})
		}
	}

	inCycle := make(map[string]bool)
	e := &CycleError{}
	for _, n := range g.Loops() {
		e.Cycles = append(e.Cycles, []string{n})
		inCycle[n] = true
	}
	for _, comp := range topo.TarjanSCC(dg) {
		if len(comp) < 2 {
			continue
		}
		c := make([]string, len(comp))
		for i, n := range comp {
			c[i] = names[n.ID()]
			inCycle[c[i]] = true
		}
		slices.Sort(c)
		e.Cycles = append(e.Cycles, c)
	}
	slices.SortFunc(e.Cycles, func(a, b []string) int { return slices.Compare(a, b) })
	for _, n := range names {
		if !done[n] && !inCycle[n] {
			e.Blocked = append(e.Blocked, n)
		}
	}
	slices.Sort(e.Blocked)
	return e
}
