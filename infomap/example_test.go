package infomap_test

import (
	"fmt"

	"github.com/citegraph/citegraph/core"
	"github.com/citegraph/citegraph/infomap"
)

// ExampleCluster partitions two disconnected co-citation pairs: the
// walker never crosses between components, so each pair becomes its own
// module with zero exit flow.
func ExampleCluster() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "D", 0)

	res, err := infomap.Cluster(g, infomap.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(res.Modules), res.Modules[0].Nodes)
	// Output: 2 [A B]
}
