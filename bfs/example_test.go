package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/zigen/bfs"
	"github.com/katalvlaran/zigen/core"
)

// ExampleBFS discovers what 想 is built from, layer by layer.
func ExampleBFS() {
	parts := map[string][]string{"想": {"相", "心"}, "相": {"木", "目"}}
	g := core.NewGraph()
	res, err := bfs.BFS(g, []string{"想"}, func(id string) ([]string, error) { return parts[id], nil })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, res.Depth["木"])
	fmt.Println(g.Predecessors("相"))
	// Output:
	// [想 相 心 木 目] 2
	// [木 目] <nil>
}
