// Package schedule orders characters so that every character comes after
// the characters it is built from.
//
// Plan discovers every name reachable from the requested ones through the
// dependency function with bfs.BFS, which fills a core.Graph with edges
// operand → dependent, and runs Kahn's algorithm over that graph. Among
// the nodes ready at the same time the lexicographically smallest name
// goes first, so the order is fully deterministic.
//
// Nodes never released by Kahn's algorithm sit on or behind a cycle. They
// are reported as a *CycleError listing the self-references and the
// strongly connected components found by gonum's topo.TarjanSCC, plus the
// names merely blocked by them.
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E)
package schedule
