// Package bfs discovers a dependency graph breadth first.
//
// What
//
//   - Starts from a set of names and asks an Expand function for the
//     direct dependencies of each visited name.
//   - Records every dependency as an edge dependency → dependent in a
//     core.Graph, adding vertices on first sight.
//   - Returns a BFSResult with the visit Order and the Depth of every
//     name (its distance in edges from the nearest start name).
//   - Calls an optional OnVisit hook per visited name; an error aborts
//     the walk.
//   - Honors a MaxDepth limit (d > 0) or explicit "no limit" (d == 0).
//
// Determinism
//
//	Start names are visited in the given order and dependencies in the
//	order Expand returns them, so the visit sequence is reproducible.
//
// Complexity (V = names discovered, E = dependencies reported)
//
//   - Time:   O(V + E) plus the cost of Expand
//   - Memory: O(V)     (queue, Depth map, visited set)
//
// Usage
//
//	g := core.NewGraph(core.WithLoops())
//	res, err := bfs.BFS(g, []string{"森"}, deps,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  for a nil Expand or a negative MaxDepth.
//   - ErrExpand           wrapping the error returned by Expand.
//   - core errors from inserting names, context errors, OnVisit errors.
package bfs
