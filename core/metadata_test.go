package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/citegraph/citegraph/core"
)

func TestNumericMetadata_Shapes(t *testing.T) {
	meta := map[string]interface{}{
		"f64":  3.5,
		"f32":  float32(2.5),
		"int":  7,
		"i64":  int64(-4),
		"u32":  uint32(9),
		"str":  "12",
		"bool": true,
	}

	cases := []struct {
		key  string
		want float64
		ok   bool
	}{
		{"f64", 3.5, true},
		{"f32", 2.5, true},
		{"int", 7, true},
		{"i64", -4, true},
		{"u32", 9, true},
		{"str", 0, false},  // strings are not coerced
		{"bool", 0, false}, // booleans are not coerced
		{"missing", 0, false},
	}
	for _, tc := range cases {
		got, ok := core.NumericMetadata(meta, tc.key)
		require.Equal(t, tc.ok, ok, "key %q", tc.key)
		require.Equal(t, tc.want, got, "key %q", tc.key)
	}

	_, ok := core.NumericMetadata(nil, "any")
	require.False(t, ok)
}

func TestSetVertexMetadata(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.SetVertexMetadata("X", "k", 1), core.ErrVertexNotFound)

	_ = g.AddVertex("A")
	require.NoError(t, g.SetVertexMetadata("A", "citations", 10))
	v, _ := g.Vertex("A")
	got, ok := core.NumericMetadata(v.Metadata, "citations")
	require.True(t, ok)
	require.Equal(t, 10.0, got)
}

func TestSetEdgeMetadata(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.SetEdgeMetadata("e99", "k", 1), core.ErrEdgeNotFound)

	eid, _ := g.AddEdge("A", "B", 0)
	require.NoError(t, g.SetEdgeMetadata(eid, "year", 2019))
	e, _ := g.Edge(eid)
	got, ok := core.NumericMetadata(e.Metadata, "year")
	require.True(t, ok)
	require.Equal(t, 2019.0, got)
}
