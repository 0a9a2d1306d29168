package sieve

import (
	"github.com/katalvlaran/zigen/scheme"
)

// Scored is a scheme with one score per sieve.
type Scored struct {
	Scheme scheme.Scheme
	Scores []Score
}

// Result is the outcome of Select.
type Result struct {
	// Sieves are the names of the sieves applied, in order.
	Sieves []string

	// Scored lists every input scheme in input order.
	Scored []Scored

	// Survivors indexes Scored; never empty.
	Survivors []int
}

// Best returns the first survivor.
func (r *Result) Best() Scored { return r.Scored[r.Survivors[0]] }

// Ambiguous reports whether the sieves left several schemes.
func (r *Result) Ambiguous() bool { return len(r.Survivors) > 1 }

// Candidates returns the surviving schemes.
func (r *Result) Candidates() []scheme.Scheme {
	out := make([]scheme.Scheme, len(r.Survivors))
	for i, k := range r.Survivors {
		out[i] = r.Scored[k].Scheme
	}
	return out
}

// Select scores every scheme under every sieve, then keeps the minimum
// at each sieve in turn until one scheme is left.
//
// Steps:
//  1. Score every scheme under every sieve, so Result.Scored reports
//     the full table even for schemes eliminated early.
//  2. For each sieve in order, keep the candidates whose score compares
//     lowest.
//  3. Stop early once a single candidate survives.
//
// Complexity:
//
//   - Time:   O(S · F · c) for S schemes, F sieves and c per-score cost
//   - Memory: O(S · F)
func Select(schemes []scheme.Scheme, sieves []Sieve, ctx *Context) (*Result, error) {
	if len(schemes) == 0 {
		return nil, ErrNoCandidates
	}

	// 1) Full scoring, independent of the filtering below
	res := &Result{
		Sieves: make([]string, len(sieves)),
		Scored: make([]Scored, len(schemes)),
	}
	for k, s := range sieves {
		res.Sieves[k] = s.Name()
	}
	for i, sc := range schemes {
		scores := make([]Score, len(sieves))
		for k, s := range sieves {
			scores[k] = s.Score(sc, ctx)
		}
		res.Scored[i] = Scored{Scheme: sc, Scores: scores}
	}

	// 2) Lexicographic filtering, sieve by sieve
	alive := make([]int, len(schemes))
	for i := range alive {
		alive[i] = i
	}
	for k := range sieves {
		if len(alive) == 1 {
			break
		}
		best := res.Scored[alive[0]].Scores[k]
		for _, i := range alive[1:] {
			if s := res.Scored[i].Scores[k]; s.Compare(best) < 0 {
				best = s
			}
		}
		kept := alive[:0]
		for _, i := range alive {
			if res.Scored[i].Scores[k].Compare(best) == 0 {
				kept = append(kept, i)
			}
		}
		alive = kept
	}
	res.Survivors = alive
	return res, nil
}
