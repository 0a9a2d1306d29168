package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/zigen/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	expand  Expand
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS visits start and everything reachable from it through expand,
// recording each dependency d of a visited name n as the edge d → n in g.
func BFS(g *core.Graph, start []string, expand Expand, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if expand == nil {
		return nil, fmt.Errorf("%w: nil expand", ErrOptionViolation)
	}

	w := &walker{
		graph:   g,
		expand:  expand,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool, len(start)),
		res: &BFSResult{
			Order: make([]string, 0, len(start)),
			Depth: make(map[string]int, len(start)),
		},
	}
	for _, id := range start {
		if w.visited[id] {
			continue
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("bfs: start %q: %w", id, err)
		}
		w.enqueue(id, 0)
	}
	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueDependencies(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueDependencies records the edges of item and enqueues unseen names.
func (w *walker) enqueueDependencies(item queueItem) error {
	deps, err := w.expand(item.id)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrExpand, item.id, err)
	}
	next := item.depth + 1
	for _, d := range deps {
		if _, err := w.graph.AddEdge(d, item.id); err != nil {
			return fmt.Errorf("bfs: %q → %q: %w", d, item.id, err)
		}
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		if !w.visited[d] {
			w.enqueue(d, next)
		}
	}
	return nil
}
