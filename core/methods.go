// Package core: high-performance Graph method implementations
//
// This file provides thread-safe, O(1) (amortized) operations for
// vertex and edge management on the Graph type defined in types.go.
// We leverage separate RWMutex locks for vertices (muVert) and
// edges+adjacency (muEdgeAdj) to minimize contention.
// Adjacency is stored as a nested map: adjacencyList[from][to][edgeID] = struct{}{},
// allowing constant-time existence, insertion, and deletion of edges.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, the options are applied onto it and the
// call is otherwise a no-op (idempotent upsert).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	// Acquire write lock on vertices only
	g.muVert.Lock()
	v, exists := g.vertices[id]
	if !exists {
		v = &Vertex{ID: id, Metadata: make(map[string]interface{})}
		g.vertices[id] = v
	}
	// Apply per-vertex options (type, metadata) on new and existing vertices alike.
	for _, opt := range opts {
		opt(v)
	}
	g.muVert.Unlock()

	if !exists {
		// Initialize adjacencyList entry for this vertex (lazy map-of-maps)
		g.muEdgeAdj.Lock()
		g.ensureAdjID(id)
		g.muEdgeAdj.Unlock()
	}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the vertex with the given ID, or (nil, false) if absent.
// The returned pointer is the live vertex; treat it as read-only.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]

	return v, ok
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if vertex does not exist.
// Complexity: O(E) worst case (scan for incident edges).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// Lock vertices and edges+adjacency to prevent races
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	// Remove all edges where id is either endpoint
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeEdgeFromAdj(g, eid, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	cleanupAdjacency(g)

	return nil
}

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// options, returning its unique Edge.ID. Missing endpoints are created.
// Handles parallel edges, loops, weights per configuration; undirected
// edges are mirrored in adjacency both ways. Per-edge directedness
// overrides require mixed mode (WithMixedEdges at construction).
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Weight constraint
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// 4) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 5) Lock everything around edges & adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 6) Multi-edge existence check
	if !g.allowMulti {
		if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 7) Generate a new atomic Edge.ID
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))

	// 8) Construct the Edge with the global default directedness
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	directedBefore := e.Directed
	// 9) Apply any per-edge overrides (direction, type, metadata)
	for _, opt := range opts {
		opt(e)
	}
	// 10) A direction override is only honored in mixed mode.
	if e.Directed != directedBefore && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	// 11) Store in the global map
	g.edges[eid] = e

	// 12) Insert into nested adjacencyList[from][to][eid]
	g.ensureAdjMap(from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// 13) If this edge is undirected, mirror it for the reverse adjacency
	//     (loops skip the mirror)
	if !e.Directed && from != to {
		g.ensureAdjMap(to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	// 14) Directed edges land in the reverse index so incoming lookups
	//     never scan the catalog.
	if e.Directed {
		g.ensureInboundMap(to, from)
		g.inboundList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror) from the graph,
// updating both global map and adjacency nested maps.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeEdgeFromAdj(g, eid, e)
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// Edge returns the edge with the given ID, or (nil, false) if absent.
// The returned pointer is the live edge; treat it as read-only.
// Complexity: O(1).
func (g *Graph) Edge(eid string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]

	return e, ok
}

// Neighbors returns all edges traversable out of vertex 'id':
// directed edges originating at id plus all undirected incident edges.
// Result is a slice of *Edge pointers, sorted by Edge.ID for determinism.
// Complexity: O(d log d), where d is number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Ensure vertex exists
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			// For directed, include only if the edge actually leaves id.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	// Sort by ID to ensure reproducible ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// IncidentEdges returns every edge touching vertex 'id' regardless of
// orientation: outgoing, incoming, and undirected. Needed by engines
// that view the graph as undirected (k-core, biconnectivity) or walk
// edges inbound. Result is sorted by Edge.ID.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[string]struct{})
	var out []*Edge
	// Mirrored adjacency covers undirected and outgoing directed edges.
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, g.edges[eid])
		}
	}
	// Directed incoming edges come from the reverse index (a directed
	// self-loop sits in both indexes; seen dedupes it).
	for _, edgeSet := range g.inboundList[id] {
		for eid := range edgeSet {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all adjacent vertices to id reachable
// by one traversable edge, honoring directed, undirected, and per-edge
// overrides. Sorted for determinism.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the undirected degree of id: the number of incident
// edges counting orientation-blind, self-loops counted once, parallel
// edges counted individually. This is the degree notion used by k-core
// and biconnectivity analysis.
// Complexity: O(d log d) (see IncidentEdges).
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.IncidentEdges(id)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VerticesMap returns a shallow copy of the vertex map.
// Complexity: O(V)
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}

// Weighted reports whether the graph treats edge weights as meaningful.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges default to directed.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// HasDirectedEdges reports whether there is at least one edge with Directed == true.
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Clear resets the graph to empty state (vertices, edges) but preserves flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	g.inboundList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// FilterEdges removes all edges failing the predicate.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !pred(e) {
			removeEdgeFromAdj(g, eid, e)
			delete(g.edges, eid)
		}
	}
	cleanupAdjacency(g)
}

// Internal helper methods:
////////////////////

// ensureAdjID makes adjacencyList[id] non-nil.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap ensures adjacencyList[from][to] initialized.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// ensureInboundMap ensures inboundList[to][from] initialized.
func (g *Graph) ensureInboundMap(to, from string) {
	if _, ok := g.inboundList[to]; !ok {
		g.inboundList[to] = make(map[string]map[string]struct{})
	}
	if g.inboundList[to][from] == nil {
		g.inboundList[to][from] = make(map[string]struct{})
	}
}

// removeEdgeFromAdj deletes eid from both directions if needed.
func removeEdgeFromAdj(g *Graph, eid string, e *Edge) {
	// from -> to
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	// mirror when undirected
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
	// reverse index when directed
	if e.Directed {
		if m := g.inboundList[e.To][e.From]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(g.inboundList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency removes empty nested maps from both indexes.
func cleanupAdjacency(g *Graph) {
	sweep := func(idx map[string]map[string]map[string]struct{}) {
		for u, m := range idx {
			for v, em := range m {
				if len(em) == 0 {
					delete(m, v)
				}
			}
			if len(m) == 0 {
				delete(idx, u)
			}
		}
	}
	sweep(g.adjacencyList)
	sweep(g.inboundList)
}
