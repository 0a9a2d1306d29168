package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one dependency: From is needed to build To.
type Edge struct {
	From string
	To   string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (a vertex depending on itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed graph without parallel edges.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	order []string            // vertex IDs in insertion order
	out   map[string][]string // from → to, insertion order
	in    map[string][]string // to → from, insertion order
	edges map[Edge]struct{}
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		out:   make(map[string][]string),
		in:    make(map[string][]string),
		edges: make(map[Edge]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
