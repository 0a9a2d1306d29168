// Package sieve ranks decomposition schemes with an ordered list of
// criteria.
//
// Every Sieve scores a scheme as an integer vector; lower scores win and
// vectors compare lexicographically. Select scores every scheme under
// every sieve, then walks the sieves in order, keeping at each step only
// the candidates with the minimal score, and stops as soon as one
// candidate remains. Survivors that no sieve separates make the result
// ambiguous.
//
// Sieves are looked up by name in an explicit Registry value; there is no
// global registration. DefaultRegistry returns a fresh registry holding
// the built-ins:
//
//	结构完整  placements whose stroke ranges interleave
//	根少优先  number of roots
//	能连不交  root pairs that cross
//	能散不连  root pairs that connect
//	同向笔画  side-by-side stroke pairs split across roots
//	少用退化  strokes matched only through feature degeneration
//	多强字根  strong roots, negated
//	少弱字根  weak roots
//	全符笔顺  concatenated stroke indices of the placements
//	取大优先  placement sizes in order, negated
//	取小优先  placement sizes in order
//
// DefaultOrder lists the first ten.
//
// Errors:
//
//   - ErrNoCandidates  Select called without schemes
//   - ErrUnknownSieve  name not in the registry
//   - ErrDuplicate     name registered twice
package sieve
