package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/core"
)

// TestGraph_Vertices checks insertion order and empty-ID rejection.
func TestGraph_Vertices(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("林"))
	require.NoError(t, g.AddVertex("木"))
	require.NoError(t, g.AddVertex("林"))
	assert.Equal(t, []string{"林", "木"}, g.Vertices())
	assert.True(t, g.HasVertex("木"))
	assert.False(t, g.HasVertex("森"))
	assert.Equal(t, 2, g.VertexCount())
}

// TestGraph_Edges checks collapsing of parallel edges and adjacency order.
func TestGraph_Edges(t *testing.T) {
	g := core.NewGraph()
	added, err := g.AddEdge("木", "林")
	require.NoError(t, err)
	assert.True(t, added)
	added, err = g.AddEdge("木", "林")
	require.NoError(t, err)
	assert.False(t, added, "parallel edge collapses")
	_, err = g.AddEdge("林", "森")
	require.NoError(t, err)
	_, err = g.AddEdge("木", "森")
	require.NoError(t, err)

	assert.Equal(t, []string{"木", "林", "森"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("木", "林"))
	assert.False(t, g.HasEdge("林", "木"))

	succ, err := g.Successors("木")
	require.NoError(t, err)
	assert.Equal(t, []string{"林", "森"}, succ)
	pred, err := g.Predecessors("森")
	require.NoError(t, err)
	assert.Equal(t, []string{"木", "林"}, pred)
	in, err := g.InDegree("森")
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	assert.Equal(t, []core.Edge{
		{From: "木", To: "林"}, {From: "木", To: "森"}, {From: "林", To: "森"},
	}, g.Edges())

	_, err = g.Successors("水")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.InDegree("水")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge("", "木")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestGraph_Loops covers the loop policy.
func TestGraph_Loops(t *testing.T) {
	_, err := core.NewGraph().AddEdge("戊", "戊")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	g := core.NewGraph(core.WithLoops())
	_, err = g.AddEdge("戊", "戊")
	require.NoError(t, err)
	_, err = g.AddEdge("甲", "甲")
	require.NoError(t, err)
	assert.Equal(t, []string{"戊", "甲"}, g.Loops())
	in, err := g.InDegree("戊")
	require.NoError(t, err)
	assert.Equal(t, 1, in, "a self-loop counts toward the in-degree")
}

// TestGraph_Concurrent adds edges from several goroutines.
func TestGraph_Concurrent(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, to := range []string{"林", "森", "相"} {
				_, _ = g.AddEdge("木", to)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}
