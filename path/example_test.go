package path_test

import (
	"fmt"

	"github.com/citegraph/citegraph/core"
	"github.com/citegraph/citegraph/path"
)

// ExampleFindShortestPath demonstrates a plain hop-count search: with no
// weight configuration every edge costs 1, so the direct edge beats the
// two-hop detour.
func ExampleFindShortestPath() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("A", "C", 0)

	res, err := path.FindShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Distance)
	// Output: [A C] 1
}
