package sieve

import (
	"github.com/katalvlaran/zigen/scheme"
)

// Built-in sieve names.
const (
	Integrity   = "结构完整"
	FewerRoots  = "根少优先"
	Disjoint    = "能连不交"
	Scattered   = "能散不连"
	Oriented    = "同向笔画"
	Degenerate  = "少用退化"
	Strong      = "多强字根"
	Weak        = "少弱字根"
	StrokeOrder = "全符笔顺"
	Larger      = "取大优先"
	Smaller     = "取小优先"
)

// DefaultOrder is the sieve order used when none is configured.
var DefaultOrder = []string{
	Integrity, FewerRoots, Disjoint, Scattered, Oriented,
	Degenerate, Strong, Weak, StrokeOrder, Larger,
}

// Builtins returns the built-in sieves.
func Builtins() []Sieve {
	return []Sieve{
		New(Integrity, integrity),
		New(FewerRoots, func(s scheme.Scheme, _ *Context) Score { return Score{len(s)} }),
		New(Disjoint, func(s scheme.Scheme, ctx *Context) Score { return Score{pairs(s, ctx, crosses)} }),
		New(Scattered, func(s scheme.Scheme, ctx *Context) Score { return Score{pairs(s, ctx, connects)} }),
		New(Oriented, oriented),
		New(Degenerate, degenerate),
		New(Strong, func(s scheme.Scheme, ctx *Context) Score { return Score{-count(s, ctx, true)} }),
		New(Weak, func(s scheme.Scheme, ctx *Context) Score { return Score{count(s, ctx, false)} }),
		New(StrokeOrder, strokeOrder),
		New(Larger, func(s scheme.Scheme, _ *Context) Score { return sizes(s, -1) }),
		New(Smaller, func(s scheme.Scheme, _ *Context) Score { return sizes(s, 1) }),
	}
}

// integrity counts placement pairs whose stroke ranges interleave.
func integrity(s scheme.Scheme, _ *Context) Score {
	n := 0
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			a, b := s[i].Indices, s[j].Indices
			if len(a) == 0 || len(b) == 0 {
				continue
			}
			if a[0] < b[len(b)-1] && b[0] < a[len(a)-1] {
				n++
			}
		}
	}
	return Score{n}
}

func crosses(ctx *Context, i, j int) bool  { return ctx.Graph.Crosses(i, j) }
func connects(ctx *Context, i, j int) bool { return ctx.Graph.Connects(i, j) }

// pairs counts placement pairs having some stroke pair satisfying rel.
func pairs(s scheme.Scheme, ctx *Context, rel func(*Context, int, int) bool) int {
	if ctx == nil || ctx.Graph == nil {
		return 0
	}
	n := 0
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if anyPair(s[i].Indices, s[j].Indices, func(a, b int) bool { return rel(ctx, a, b) }) {
				n++
			}
		}
	}
	return n
}

func anyPair(a, b []int, f func(int, int) bool) bool {
	for _, x := range a {
		for _, y := range b {
			if f(x, y) {
				return true
			}
		}
	}
	return false
}

// oriented counts side-by-side stroke pairs placed in different roots.
func oriented(s scheme.Scheme, ctx *Context) Score {
	if ctx == nil || ctx.Graph == nil {
		return Score{0}
	}
	owner := make(map[int]int)
	for k, p := range s {
		for _, i := range p.Indices {
			owner[i] = k
		}
	}
	n := 0
	for _, pr := range ctx.Graph.OrientedPairs {
		if owner[pr[0]] != owner[pr[1]] {
			n++
		}
	}
	return Score{n}
}

func degenerate(s scheme.Scheme, ctx *Context) Score {
	if ctx == nil || ctx.Degeneracy == nil {
		return Score{0}
	}
	n := 0
	for _, p := range s {
		n += ctx.Degeneracy(p)
	}
	return Score{n}
}

// count counts the strong (or weak) roots of s.
func count(s scheme.Scheme, ctx *Context, strong bool) int {
	if ctx == nil {
		return 0
	}
	names := ctx.Weak
	if strong {
		names = ctx.Strong
	}
	n := 0
	for _, p := range s {
		if names[p.Root] {
			n++
		}
	}
	return n
}

func strokeOrder(s scheme.Scheme, _ *Context) Score {
	var out Score
	for _, p := range s {
		out = append(out, p.Indices...)
	}
	return out
}

func sizes(s scheme.Scheme, sign int) Score {
	out := make(Score, len(s))
	for i, p := range s {
		out[i] = sign * p.Len()
	}
	return out
}
