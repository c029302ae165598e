// Package path: Dijkstra engine implementation.
//
// Notes on implementation choices:
//
//   - Weights come from weight.Resolve per traversed edge; the floor in
//     package weight guarantees strict positivity, so no negative-weight
//     pre-scan is needed here.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries on pop.
//   - Heap order is (distance, vertex ID), so equal-distance vertices
//     settle in lexical order and results are deterministic.
//   - Without a hop ceiling, search state is keyed by vertex. With one,
//     state is keyed by (vertex, hops): a cheap many-hop route must not
//     shadow a costlier route that stays under the ceiling, so each hop
//     level relaxes independently and a vertex's distance is the first
//     of its states to settle.

package path

import (
	"container/heap"
	"math"

	"github.com/citegraph/citegraph/core"
	"github.com/citegraph/citegraph/weight"
)

// state identifies one search node. hops participates in the identity
// only when a hop ceiling is active (see runner.key).
type state struct {
	id   string
	hops int
}

// FindShortestPath computes the minimum-cost path from source to target
// under the supplied options. The search halts as soon as target is
// settled.
//
// Unreachability is not an error: the returned Result has Found ==
// false, an empty Path, and Distance == +Inf. Errors are returned only
// for malformed input (ErrNilGraph, ErrSourceNotFound,
// ErrTargetNotFound, ErrOptionViolation) or context cancellation.
//
// Complexity: O((V + E) log V) time, O(V + E) space; with a hop ceiling
// d the state space multiplies by d.
func FindShortestPath(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	if target == "" {
		return nil, ErrTargetNotFound
	}
	r, err := newRunner(g, source, target, opts)
	if err != nil {
		return nil, err
	}
	if err = r.run(); err != nil {
		return nil, err
	}

	// Reconstruct if the target was settled.
	d, ok := r.dist[target]
	if !ok {
		return &Result{Distance: math.Inf(1), Found: false}, nil
	}

	p, _ := r.distances().PathTo(target)

	return &Result{Path: p, Distance: d, Found: true}, nil
}

// ShortestDistances computes best-known distances from source to every
// vertex reachable under the supplied options (single-source mode).
//
// Complexity: O((V + E) log V) time, O(V + E) space; with a hop ceiling
// d the state space multiplies by d.
func ShortestDistances(g *core.Graph, source string, opts ...Option) (*Distances, error) {
	r, err := newRunner(g, source, "", opts)
	if err != nil {
		return nil, err
	}
	if err = r.run(); err != nil {
		return nil, err
	}

	return r.distances(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph      // input graph; read-only within the search
	opts    TraversalOptions // resolved options
	source  string           // start vertex
	target  string           // early-exit vertex, "" for single-source
	limited bool             // hop ceiling active: states carry hops

	distS   map[state]float64 // state → best known distance
	parentS map[state]state   // state → predecessor state
	settled map[state]bool    // state → distance finalized

	dist   map[string]float64 // vertex → distance of its first settled state
	parent map[string]string  // vertex → predecessor vertex on that path
	best   map[string]state   // vertex → its first settled state

	pq nodePQ // min-heap under lazy decrease-key
}

// newRunner validates inputs and prepares the initial search state.
// Validation order: nil graph, option violations, source, target.
func newRunner(g *core.Graph, source, target string, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if target != "" && !g.HasVertex(target) {
		return nil, ErrTargetNotFound
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		opts:    o,
		source:  source,
		target:  target,
		limited: o.MaxDepth > 0,
		distS:   make(map[state]float64, n),
		parentS: make(map[state]state, n),
		settled: make(map[state]bool, n),
		dist:    make(map[string]float64, n),
		parent:  make(map[string]string, n),
		best:    make(map[string]state, n),
		pq:      make(nodePQ, 0, n),
	}

	r.distS[r.key(source, 0)] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0, hops: 0})

	return r, nil
}

// key maps a (vertex, hops) pair onto search-state identity: hop counts
// only distinguish states when the ceiling is active.
func (r *runner) key(id string, hops int) state {
	if !r.limited {
		return state{id: id}
	}

	return state{id: id, hops: hops}
}

// distances packages the search outcome.
func (r *runner) distances() *Distances {
	return &Distances{
		Dist:        r.dist,
		Parent:      r.parent,
		Source:      r.source,
		best:        r.best,
		stateParent: r.parentS,
	}
}

// run is the core loop: repeatedly settle the nearest frontier state
// and relax its admissible edges. Stops when the heap empties or the
// target is settled.
func (r *runner) run() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per settled state)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		// 1) Pop the smallest (dist, id) entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		k := r.key(item.id, item.hops)

		// 2) Skip stale lazy-decrease-key duplicates.
		if r.settled[k] {
			continue
		}

		// 3) Settle: the state's distance is now final. The first state
		//    of a vertex to settle carries its minimum distance within
		//    constraints.
		r.settled[k] = true
		if _, done := r.dist[item.id]; !done {
			r.dist[item.id] = item.dist
			r.best[item.id] = k
			if pk, ok := r.parentS[k]; ok {
				r.parent[item.id] = pk.id
			}
		}

		// 4) Early exit once the target is settled.
		if r.target != "" && item.id == r.target {
			return nil
		}

		// 5) Relax all admissible edges out of this state.
		if err := r.relax(item, k); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each incident edge of the state's vertex, filters by
// the traversal options, and improves neighbor states where possible.
func (r *runner) relax(item *nodeItem, k state) error {
	u := item.id
	edges, err := r.g.IncidentEdges(u)
	if err != nil {
		return err
	}

	srcVert, _ := r.g.Vertex(u)

	for _, e := range edges {
		// Direction admissibility relative to u.
		if !r.admitsDirection(e, u) {
			continue
		}
		// Edge-type allow-list.
		if !r.admitsEdgeType(e) {
			continue
		}
		// Discrete edge-metadata predicates.
		if !r.admitsProperties(e) {
			continue
		}

		v := otherEndpoint(e, u)

		// Node-type allow-list on the vertex the edge leads to.
		dstVert, ok := r.g.Vertex(v)
		if !ok || !r.admitsNodeType(dstVert) {
			continue
		}

		// Hop ceiling, independent of weight.
		nh := item.hops + 1
		if r.limited && nh > r.opts.MaxDepth {
			continue
		}

		// Resolved cost is strictly positive by the weight floor.
		w := weight.Resolve(e, srcVert, dstVert, r.opts.Weight)
		nd := item.dist + w

		// Strictly-better check per state; avoids duplicate pushes on
		// equal cost.
		nk := r.key(v, nh)
		if cur, seen := r.distS[nk]; seen && nd >= cur {
			continue
		}

		r.distS[nk] = nd
		r.parentS[nk] = k
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd, hops: nh})
	}

	return nil
}

// admitsDirection reports whether edge e may be traversed out of u
// under the configured direction.
func (r *runner) admitsDirection(e *core.Edge, u string) bool {
	if !e.Directed {
		return true
	}
	switch r.opts.Direction {
	case Inbound:
		return e.To == u
	case Both:
		return true
	default: // Outbound
		return e.From == u
	}
}

// admitsEdgeType reports whether e passes the edge-type allow-list.
func (r *runner) admitsEdgeType(e *core.Edge) bool {
	if len(r.opts.EdgeTypes) == 0 {
		return true
	}
	for _, t := range r.opts.EdgeTypes {
		if e.Type == t {
			return true
		}
	}

	return false
}

// admitsNodeType reports whether v passes the node-type allow-list.
func (r *runner) admitsNodeType(v *core.Vertex) bool {
	if len(r.opts.NodeTypes) == 0 {
		return true
	}
	for _, t := range r.opts.NodeTypes {
		if v.Type == t {
			return true
		}
	}

	return false
}

// admitsProperties reports whether e satisfies every discrete
// edge-metadata predicate. A predicate matches when the stored value
// equals one of the allowed values; numeric values compare by value
// across widths (int 3 matches float64 3).
func (r *runner) admitsProperties(e *core.Edge) bool {
	for _, pf := range r.opts.propFilters {
		if e.Metadata == nil {
			return false
		}
		raw, ok := e.Metadata[pf.name]
		if !ok {
			return false
		}
		if !matchesAny(raw, pf.allowed) {
			return false
		}
	}

	return true
}

// matchesAny compares a stored metadata value against the allow-list.
func matchesAny(raw interface{}, allowed []interface{}) bool {
	rawNum, rawIsNum := core.NumericMetadata(map[string]interface{}{"v": raw}, "v")
	for _, a := range allowed {
		if raw == a {
			return true
		}
		if rawIsNum {
			if aNum, ok := core.NumericMetadata(map[string]interface{}{"v": a}, "v"); ok && rawNum == aNum {
				return true
			}
		}
	}

	return false
}

// otherEndpoint returns the endpoint of e that is not u; for self-loops
// it returns u itself.
func otherEndpoint(e *core.Edge, u string) string {
	if e.From == u {
		return e.To
	}

	return e.From
}

// nodeItem represents a vertex, its tentative distance from the source,
// and the hop count of the path that produced that distance.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
	hops int     // edges on the path behind this entry
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
// The lexical secondary key makes pop order — and therefore tie-broken
// shortest paths — deterministic.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then lexical vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
