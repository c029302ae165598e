// Package core: cloning and derived views.
//
// Cloning never mutates the source graph; every function here takes
// read locks on the source and builds a fresh instance. Metadata maps
// are shared between source and clone (shallow copy) — payloads are
// treated as immutable domain data.

package core

import "sync/atomic"

// configOptions rebuilds the GraphOption list matching g's flags.
func (g *Graph) configOptions() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}

// CloneEmpty returns a new Graph with identical configuration and
// vertices, but no edges.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.configOptions()...)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Type: v.Type, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices,
// edges, and adjacency. Edge structs are duplicated so later mutation
// of the clone's catalog leaves the source intact.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight,
			Type: e.Type, Metadata: e.Metadata, Directed: e.Directed}
		clone.edges[eid] = ne
		clone.ensureAdjMap(e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			clone.ensureAdjMap(e.To, e.From)
			clone.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
		if ne.Directed {
			clone.ensureInboundMap(ne.To, ne.From)
			clone.inboundList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	// Carry over the edge ID counter so future AddEdge() calls cannot
	// collide with copied IDs.
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return clone
}

// InducedSubgraph returns a new Graph induced by the set "keep" of
// vertex IDs: the result contains only vertices v where keep[v] is
// true, and all edges whose endpoints are both in keep. The input
// graph is not mutated. Edge IDs and directedness are preserved.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.configOptions()...)
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Type: v.Type, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Snapshot the edge ID counter under the same lock as the edge
	// catalog snapshot. Even if the induced subgraph filters out some
	// edges, carrying the counter forward prevents reusing historical
	// IDs and keeps monotonicity aligned with the source graph.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight,
			Type: e.Type, Metadata: e.Metadata, Directed: e.Directed}
		out.edges[eid] = ne
		out.ensureAdjMap(ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			out.ensureAdjMap(ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
		if ne.Directed {
			out.ensureInboundMap(ne.To, ne.From)
			out.inboundList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
