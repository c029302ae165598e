package biconn_test

import (
	"fmt"

	"github.com/citegraph/citegraph/biconn"
	"github.com/citegraph/citegraph/core"
)

// ExampleDecompose finds the cut vertices of a simple path: removing
// either interior vertex disconnects the chain.
func ExampleDecompose() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)

	res, err := biconn.Decompose(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(res.Components), res.ArticulationPoints)
	// Output: 3 [B C]
}
