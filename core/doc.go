// Package core defines Graph, the string-keyed directed graph that holds
// the build dependencies between characters.
//
// Vertices are character names. An edge From → To reads "From is an
// operand of To", so a valid build order is a topological order of the
// graph. Parallel edges collapse into one; self-loops are kept only when
// the graph was created WithLoops, so that a character referring to
// itself can be reported instead of silently dropped.
//
// All methods are safe for concurrent use: mutations take the write lock,
// queries the read lock.
//
// Determinism:
//
//   - Vertices returns names in insertion order.
//   - Successors, Predecessors and Loops return names sorted.
//
// Errors:
//
//   - ErrEmptyVertexID   vertex ID is the empty string.
//   - ErrVertexNotFound  requested vertex does not exist.
//   - ErrLoopNotAllowed  self-loop on a graph without WithLoops.
package core
