package kcore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/citegraph/citegraph/core"
	"github.com/citegraph/citegraph/kcore"
)

func lineGraph(ids ...string) *core.Graph {
	g := core.NewGraph()
	for i := 0; i+1 < len(ids); i++ {
		_, _ = g.AddEdge(ids[i], ids[i+1], 0)
	}
	return g
}

func TestDecompose_Validation(t *testing.T) {
	_, err := kcore.Decompose(nil)
	require.ErrorIs(t, err, kcore.ErrNilGraph)

	_, err = kcore.Decompose(core.NewGraph())
	require.ErrorIs(t, err, kcore.ErrEmptyGraph)
}

func TestDecompose_PathGraph(t *testing.T) {
	// A–B–C–D: every vertex survives the 1-core, nothing denser exists.
	g := lineGraph("A", "B", "C", "D")

	res, err := kcore.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, 1, res.Degeneracy)
	for _, id := range []string{"A", "B", "C", "D"} {
		require.Equal(t, 1, res.CoreNumbers[id], "vertex %s", id)
	}

	one, err := res.Core(1)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, one)

	_, err = res.Core(2)
	require.ErrorIs(t, err, kcore.ErrInvalidK)
}

func TestDecompose_TriangleWithPendant(t *testing.T) {
	// Triangle A–B–C plus pendant D–A: the triangle is the 2-core, the
	// pendant peels off at k=1.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)
	_, _ = g.AddEdge("D", "A", 0)

	res, err := kcore.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, 2, res.Degeneracy)
	require.Equal(t, 2, res.CoreNumbers["A"])
	require.Equal(t, 2, res.CoreNumbers["B"])
	require.Equal(t, 2, res.CoreNumbers["C"])
	require.Equal(t, 1, res.CoreNumbers["D"])

	two, err := res.Core(2)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, two)
}

func TestDecompose_DirectedDegreesAreOrientationBlind(t *testing.T) {
	// A directed triangle is still a 2-core: direction is ignored.
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	res, err := kcore.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, 2, res.Degeneracy)
}

func TestDecompose_SelfLoopsIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 0)

	res, err := kcore.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, 1, res.Degeneracy)
	require.Equal(t, 1, res.CoreNumbers["A"])
}

func TestDecompose_NestingInvariant(t *testing.T) {
	// Two triangles joined by a bridge plus a clique of four: cores must
	// nest for every k up to the degeneracy.
	g := core.NewGraph()
	edges := [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"}, // triangle
		{"C", "D"},                         // bridge
		{"D", "E"}, {"E", "F"}, {"F", "D"}, // triangle
		{"W", "X"}, {"W", "Y"}, {"W", "Z"}, // K4
		{"X", "Y"}, {"X", "Z"}, {"Y", "Z"},
	}
	for _, e := range edges {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	res, err := kcore.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.Degeneracy, "K4 is a 3-core")

	prev, err := res.Core(1)
	require.NoError(t, err)
	for k := 2; k <= res.Degeneracy; k++ {
		cur, err := res.Core(k)
		require.NoError(t, err)
		require.Subset(t, prev, cur, "core(%d) must contain core(%d)", k-1, k)
		prev = cur
	}

	// Degeneracy equals the maximum core number.
	maxCore := 0
	for _, c := range res.CoreNumbers {
		if c > maxCore {
			maxCore = c
		}
	}
	require.Equal(t, res.Degeneracy, maxCore)
}

func TestCore_ZeroReturnsAll(t *testing.T) {
	g := lineGraph("A", "B")
	_ = g.AddVertex("ISOLATED")

	res, err := kcore.Decompose(g)
	require.NoError(t, err)
	require.Equal(t, 0, res.CoreNumbers["ISOLATED"])

	all, err := res.Core(0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	_, err = res.Core(-1)
	require.ErrorIs(t, err, kcore.ErrInvalidK)
}

func TestCoreSubgraph(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)
	_, _ = g.AddEdge("D", "A", 0)

	sub, err := kcore.CoreSubgraph(g, 2)
	require.NoError(t, err)
	require.Equal(t, 3, sub.VertexCount())
	require.Equal(t, 3, sub.EdgeCount())
	require.False(t, sub.HasVertex("D"))

	// Source graph untouched.
	require.Equal(t, 4, g.VertexCount())

	_, err = kcore.CoreSubgraph(g, 5)
	require.ErrorIs(t, err, kcore.ErrInvalidK)
}
