// Package path_test contains unit tests for the shortest-path engine.
// These tests validate input checking, default-weight semantics, weight
// resolution, traversal filters, determinism, and unreachable targets.
package path_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/citegraph/citegraph/core"
	"github.com/citegraph/citegraph/path"
	"github.com/citegraph/citegraph/weight"
)

// ------------------------------------------------------------------------
// 1. Validation: errors are reserved for malformed input.
// ------------------------------------------------------------------------

func TestFindShortestPath_NilGraph(t *testing.T) {
	_, err := path.FindShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, path.ErrNilGraph)
}

func TestFindShortestPath_MissingEndpoints(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	_, err := path.FindShortestPath(g, "X", "B")
	require.ErrorIs(t, err, path.ErrSourceNotFound)

	_, err = path.FindShortestPath(g, "A", "X")
	require.ErrorIs(t, err, path.ErrTargetNotFound)
}

func TestFindShortestPath_EmptyTarget(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	_, err := path.FindShortestPath(g, "A", "")
	require.ErrorIs(t, err, path.ErrTargetNotFound)
}

func TestFindShortestPath_NegativeDepthOption(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	_, err := path.FindShortestPath(g, "A", "B", path.WithMaxDepth(-1))
	require.ErrorIs(t, err, path.ErrOptionViolation)
}

func TestFindShortestPath_Cancellation(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := path.FindShortestPath(g, "A", "B", path.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. Default-weight semantics: no config means hop counting.
// ------------------------------------------------------------------------

func TestFindShortestPath_DefaultWeightIsHopCount(t *testing.T) {
	// A→B carries weight metadata 2, B→C carries 3; with no weight
	// config every edge costs 1, so A→B is distance 1 and A→C is 2 —
	// NOT the stored property values.
	g := core.NewGraph(core.WithDirected(true))
	e1, _ := g.AddEdge("A", "B", 0)
	e2, _ := g.AddEdge("B", "C", 0)
	_ = g.SetEdgeMetadata(e1, "w", 2.0)
	_ = g.SetEdgeMetadata(e2, "w", 3.0)

	res, err := path.FindShortestPath(g, "A", "B")
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 1.0, res.Distance)

	res, err = path.FindShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Distance)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)

	// With the property configured, the stored values apply.
	res, err = path.FindShortestPath(g, "A", "C",
		path.WithWeight(weight.Config{Property: "w"}))
	require.NoError(t, err)
	require.Equal(t, 5.0, res.Distance)
}

// ------------------------------------------------------------------------
// 3. Weighted routing and path reconstruction.
// ------------------------------------------------------------------------

func TestFindShortestPath_PrefersCheaperDetour(t *testing.T) {
	// Triangle: A–B cost 1, B–C cost 2, A–C cost 5 (via metadata).
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B", 0)
	e2, _ := g.AddEdge("B", "C", 0)
	e3, _ := g.AddEdge("A", "C", 0)
	_ = g.SetEdgeMetadata(e1, "cost", 1.0)
	_ = g.SetEdgeMetadata(e2, "cost", 2.0)
	_ = g.SetEdgeMetadata(e3, "cost", 5.0)

	res, err := path.FindShortestPath(g, "A", "C",
		path.WithWeight(weight.Config{Property: "cost"}))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 3.0, res.Distance)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestFindShortestPath_DistanceEqualsEdgeSum(t *testing.T) {
	g := core.NewGraph()
	costs := map[string]float64{}
	addEdge := func(a, b string, c float64) {
		eid, _ := g.AddEdge(a, b, 0)
		_ = g.SetEdgeMetadata(eid, "c", c)
		costs[a+b] = c
		costs[b+a] = c
	}
	addEdge("A", "B", 2)
	addEdge("B", "C", 0.5)
	addEdge("C", "D", 1.25)

	res, err := path.FindShortestPath(g, "A", "D",
		path.WithWeight(weight.Config{Property: "c"}))
	require.NoError(t, err)
	require.True(t, res.Found)

	var sum float64
	for i := 0; i+1 < len(res.Path); i++ {
		sum += costs[res.Path[i]+res.Path[i+1]]
	}
	require.InDelta(t, sum, res.Distance, 1e-12)
}

func TestFindShortestPath_SourceEqualsTarget(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	res, err := path.FindShortestPath(g, "A", "A")
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 0.0, res.Distance)
	require.Equal(t, []string{"A"}, res.Path)
}

// ------------------------------------------------------------------------
// 4. Unreachability is a value, not an error.
// ------------------------------------------------------------------------

func TestFindShortestPath_Unreachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_ = g.AddVertex("Z")

	res, err := path.FindShortestPath(g, "A", "Z")
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Empty(t, res.Path)
	require.True(t, math.IsInf(res.Distance, 1))
}

func TestFindShortestPath_UnreachableAgainstDirection(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)

	// B cannot reach A outbound…
	res, err := path.FindShortestPath(g, "B", "A")
	require.NoError(t, err)
	require.False(t, res.Found)

	// …but can inbound.
	res, err = path.FindShortestPath(g, "B", "A", path.WithDirection(path.Inbound))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 1.0, res.Distance)

	// Both admits either orientation.
	res, err = path.FindShortestPath(g, "B", "A", path.WithDirection(path.Both))
	require.NoError(t, err)
	require.True(t, res.Found)
}

// ------------------------------------------------------------------------
// 5. Filters: type allow-lists, property predicates, depth ceiling.
// ------------------------------------------------------------------------

func TestFindShortestPath_EdgeTypeAllowList(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 0, core.WithEdgeType("cites"))
	_, _ = g.AddEdge("B", "C", 0, core.WithEdgeType("coauthor"))

	res, err := path.FindShortestPath(g, "A", "C", path.WithEdgeTypes("cites"))
	require.NoError(t, err)
	require.False(t, res.Found, "coauthor edge must be filtered out")

	res, err = path.FindShortestPath(g, "A", "C", path.WithEdgeTypes("cites", "coauthor"))
	require.NoError(t, err)
	require.True(t, res.Found)
}

func TestFindShortestPath_NodeTypeAllowList(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A", core.WithVertexType("paper"))
	_ = g.AddVertex("B", core.WithVertexType("author"))
	_ = g.AddVertex("C", core.WithVertexType("paper"))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	res, err := path.FindShortestPath(g, "A", "C", path.WithNodeTypes("paper"))
	require.NoError(t, err)
	require.False(t, res.Found, "route via author vertex must be filtered out")
}

func TestFindShortestPath_EdgePropertyPredicate(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	e1, _ := g.AddEdge("A", "B", 0)
	e2, _ := g.AddEdge("B", "C", 0)
	_ = g.SetEdgeMetadata(e1, "year", 2019)
	_ = g.SetEdgeMetadata(e2, "year", 1998)

	res, err := path.FindShortestPath(g, "A", "C",
		path.WithEdgeProperty("year", 2019, 2020))
	require.NoError(t, err)
	require.False(t, res.Found, "1998 edge must be filtered out")

	// Numeric widths compare by value: float allow-list matches int metadata.
	res, err = path.FindShortestPath(g, "A", "B",
		path.WithEdgeProperty("year", 2019.0))
	require.NoError(t, err)
	require.True(t, res.Found)
}

func TestFindShortestPath_MaxDepthHopCeiling(t *testing.T) {
	// A–B–C–D line; D is 3 hops from A.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)

	res, err := path.FindShortestPath(g, "A", "D", path.WithMaxDepth(2))
	require.NoError(t, err)
	require.False(t, res.Found)

	res, err = path.FindShortestPath(g, "A", "D", path.WithMaxDepth(3))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 3.0, res.Distance)
}

func TestFindShortestPath_HopCeilingKeepsCostlierShallowRoute(t *testing.T) {
	// Two ways to reach X: a feather-cheap two-hop route S→A→X and an
	// expensive direct edge S→X. The target T sits one hop past X, so
	// under a 2-hop ceiling only the direct edge can reach it — the
	// cheap route must not shadow it.
	g := core.NewGraph(core.WithDirected(true))
	cost := func(a, b string, c float64) {
		eid, _ := g.AddEdge(a, b, 0)
		_ = g.SetEdgeMetadata(eid, "c", c)
	}
	cost("S", "A", 0.001)
	cost("A", "X", 0.001)
	cost("S", "X", 5)
	cost("X", "T", 1)
	cfg := weight.Config{Property: "c"}

	res, err := path.FindShortestPath(g, "S", "T",
		path.WithWeight(cfg), path.WithMaxDepth(2))
	require.NoError(t, err)
	require.True(t, res.Found, "S→X→T is 2 hops and must be found")
	require.Equal(t, []string{"S", "X", "T"}, res.Path)
	require.InDelta(t, 6.0, res.Distance, 1e-12)

	// Without the ceiling the cheap detour wins.
	res, err = path.FindShortestPath(g, "S", "T", path.WithWeight(cfg))
	require.NoError(t, err)
	require.Equal(t, []string{"S", "A", "X", "T"}, res.Path)
	require.InDelta(t, 1.002, res.Distance, 1e-12)
}

func TestShortestDistances_HopCeilingPathsStayConsistent(t *testing.T) {
	// Same shape as above in single-source mode: X's own best route is
	// the cheap two-hop one, but T's route must be the direct edge, and
	// the reconstructed path must match the reported distance.
	g := core.NewGraph(core.WithDirected(true))
	cost := func(a, b string, c float64) {
		eid, _ := g.AddEdge(a, b, 0)
		_ = g.SetEdgeMetadata(eid, "c", c)
	}
	cost("S", "A", 0.001)
	cost("A", "X", 0.001)
	cost("S", "X", 5)
	cost("X", "T", 1)

	dd, err := path.ShortestDistances(g, "S",
		path.WithWeight(weight.Config{Property: "c"}), path.WithMaxDepth(2))
	require.NoError(t, err)

	require.InDelta(t, 0.002, dd.Dist["X"], 1e-12)
	require.InDelta(t, 6.0, dd.Dist["T"], 1e-12)

	p, ok := dd.PathTo("T")
	require.True(t, ok)
	require.Equal(t, []string{"S", "X", "T"}, p)

	p, ok = dd.PathTo("X")
	require.True(t, ok)
	require.Equal(t, []string{"S", "A", "X"}, p)
}

// ------------------------------------------------------------------------
// 6. Determinism and monotonicity.
// ------------------------------------------------------------------------

func TestFindShortestPath_LexicalTieBreak(t *testing.T) {
	// Two equal-cost routes A→B→D and A→C→D; the lexically smaller
	// intermediate (B) must win, run after run.
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("B", "D", 0)
	_, _ = g.AddEdge("C", "D", 0)

	for i := 0; i < 10; i++ {
		res, err := path.FindShortestPath(g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D"}, res.Path)
	}
}

func TestShortestDistances_MonotoneAlongPath(t *testing.T) {
	g := core.NewGraph()
	e1, _ := g.AddEdge("A", "B", 0)
	e2, _ := g.AddEdge("B", "C", 0)
	e3, _ := g.AddEdge("A", "C", 0)
	_ = g.SetEdgeMetadata(e1, "c", 1.0)
	_ = g.SetEdgeMetadata(e2, "c", 2.0)
	_ = g.SetEdgeMetadata(e3, "c", 5.0)

	dd, err := path.ShortestDistances(g, "A",
		path.WithWeight(weight.Config{Property: "c"}))
	require.NoError(t, err)

	p, ok := dd.PathTo("C")
	require.True(t, ok)
	// Distances never decrease with hop count along the returned path.
	prev := -1.0
	for _, v := range p {
		require.Greater(t, dd.Dist[v], prev)
		prev = dd.Dist[v]
	}
}

func TestShortestDistances_AllVertices(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_ = g.AddVertex("Z")

	dd, err := path.ShortestDistances(g, "A")
	require.NoError(t, err)
	require.Equal(t, 0.0, dd.Dist["A"])
	require.Equal(t, 1.0, dd.Dist["B"])
	require.Equal(t, 2.0, dd.Dist["C"])
	_, reached := dd.Dist["Z"]
	require.False(t, reached)

	_, ok := dd.PathTo("Z")
	require.False(t, ok)
}

// ------------------------------------------------------------------------
// 7. Inverted node-property weights (citation-count routing).
// ------------------------------------------------------------------------

func TestFindShortestPath_InvertedNodeProperty(t *testing.T) {
	// Routing toward highly-cited papers: invert the target's citation
	// count so big counts mean cheap edges.
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddVertex("HUB", core.WithVertexMetadata("citations", 1000.0))
	_ = g.AddVertex("OBSCURE", core.WithVertexMetadata("citations", 1.0))
	_, _ = g.AddEdge("A", "HUB", 0)
	_, _ = g.AddEdge("A", "OBSCURE", 0)
	_, _ = g.AddEdge("HUB", "T", 0)
	_, _ = g.AddEdge("OBSCURE", "T", 0)

	cfg := weight.Config{
		NodeProperty:       "citations",
		NodePropertyTarget: weight.NodeTargetVertex,
		Invert:             true,
	}
	res, err := path.FindShortestPath(g, "A", "T", path.WithWeight(cfg))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []string{"A", "HUB", "T"}, res.Path)
}
