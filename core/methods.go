package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// AddVertex inserts id if absent; adding an existing vertex is a no-op.
//
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(id)
	return nil
}

// HasVertex reports whether id is in the graph.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.out[id]
	return ok
}

// AddEdge records from → to, adding missing endpoints. A repeated edge
// is a no-op and reports false.
//
// Complexity: O(1) amortized
func (g *Graph) AddEdge(from, to string) (bool, error) {
	if from == "" || to == "" {
		return false, ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return false, fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(from)
	g.ensure(to)
	e := Edge{From: from, To: to}
	if _, dup := g.edges[e]; dup {
		return false, nil
	}
	g.edges[e] = struct{}{}
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
	return true, nil
}

// HasEdge reports whether from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[Edge{From: from, To: to}]
	return ok
}

// Vertices returns every vertex ID in insertion order.
//
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// Successors returns the sorted targets of edges leaving id.
//
// Complexity: O(d log d), d = out-degree
func (g *Graph) Successors(id string) ([]string, error) {
	return g.adjacent(g.out, id)
}

// Predecessors returns the sorted sources of edges entering id.
//
// Complexity: O(d log d), d = in-degree
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.adjacent(g.in, id)
}

// InDegree counts the edges entering id, a self-loop included.
func (g *Graph) InDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.out[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	return len(g.in[id]), nil
}

// Edges returns every edge, ordered by source insertion then target insertion.
//
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, from := range g.order {
		for _, to := range g.out[from] {
			out = append(out, Edge{From: from, To: to})
		}
	}
	return out
}

// Loops returns the sorted vertices carrying a self-loop.
func (g *Graph) Loops() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for _, id := range g.order {
		if _, ok := g.edges[Edge{From: id, To: id}]; ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// ensure adds id under the write lock held by the caller.
func (g *Graph) ensure(id string) {
	if _, ok := g.out[id]; ok {
		return
	}
	g.order = append(g.order, id)
	g.out[id] = nil
}

func (g *Graph) adjacent(m map[string][]string, id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.out[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := slices.Clone(m[id])
	slices.Sort(out)
	return out, nil
}
