// Package analysis decomposes characters into sequences of roots.
//
// An Engine owns one session: an immutable repertoire, a mutable
// config.Config (roots, degeneration, sieve order) and a sieve.Registry.
//
// Component analysis (basic, derived and spliced glyphs):
//
//  1. Roots short-circuit: a root analyses as itself.
//  2. The glyph is rendered and its StrokeGraph built (memoized by content).
//  3. Every root is placed through the degenerator; each stroke also gets
//     a single-stroke fallback placement named by its feature.
//  4. Exact covers are enumerated and ranked by the configured sieves.
//
// Compound analysis: the batch driver schedules every requested character
// after its operands (Kahn order), then concatenates operand sequences in
// operand order, over the cartesian product of the operands' analyses.
// A compound with an explicit stroke-block order also gets a nested
// operator Tree. Identity glyphs reuse the target's analyses.
//
// Every change of configuration through Reconfigure or SetDecisions drops
// all memoized results. An Engine is not safe for concurrent use.
//
// Errors:
//
//   - ErrNotFound          requested character not in the repertoire
//   - ErrNotComponent      AnalyzeComponent on a compound or identity glyph
//   - ErrNoValidScheme     no exact cover of the component exists
//   - ErrAmbiguousScheme   (*AmbiguityError) sieves leave several schemes
//   - ErrCyclicDependency  operand references form a cycle; aborts the batch
//   - ErrMissingOperand    an operand is not in the repertoire
//   - ErrBlocked           (*BlockedError) an operand failed
package analysis
