// Package biconn: Tarjan low-link implementation.
//
// Steps:
//  1. Validate input and snapshot the sorted vertex list.
//  2. Run DFS from every unvisited vertex (forest order = sorted IDs).
//  3. During descent push tree and back edges on the edge stack;
//     flush a component whenever low[child] ≥ disc[parent].
//  4. Mark articulation points: non-root parents at a flush boundary,
//     roots with more than one DFS child.
//
// The traversal arrives at each vertex along a specific edge ID, not a
// parent vertex ID, so parallel edges are distinguished correctly: the
// second edge between the same endpoints acts as a back edge.

package biconn

import (
	"sort"

	"github.com/citegraph/citegraph/core"
)

// Decompose computes the biconnected components and articulation
// points of g, ignoring edge orientation.
// Returns ErrNilGraph or ErrEmptyGraph for degenerate input.
// Complexity: O(V + E) time and space.
func Decompose(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}

	w := &walker{
		g:    g,
		disc: make(map[string]int, len(ids)),
		low:  make(map[string]int, len(ids)),
		arts: make(map[string]struct{}),
		res:  &Result{},
	}

	// DFS forest: disconnected graphs are processed as independent
	// trees and the results unioned.
	for _, root := range ids {
		if _, seen := w.disc[root]; seen {
			continue
		}
		w.dfs(root, "")
	}

	w.res.ArticulationPoints = make([]string, 0, len(w.arts))
	for id := range w.arts {
		w.res.ArticulationPoints = append(w.res.ArticulationPoints, id)
	}
	sort.Strings(w.res.ArticulationPoints)
	w.res.artSet = w.arts

	return w.res, nil
}

// walker encapsulates DFS state for one decomposition.
type walker struct {
	g     *core.Graph
	disc  map[string]int // vertex → discovery time
	low   map[string]int // vertex → low-link
	timer int
	stack []*core.Edge // edges pushed on descent, flushed per component
	arts  map[string]struct{}
	res   *Result
}

// dfs explores u, having arrived along edge arrivedBy ("" for roots).
func (w *walker) dfs(u, arrivedBy string) {
	w.disc[u] = w.timer
	w.low[u] = w.timer
	w.timer++

	children := 0
	edges, _ := w.g.IncidentEdges(u) // u exists: enumerated from Vertices()
	for _, e := range edges {
		// Never walk back along the arrival edge; a parallel edge has a
		// different ID and is handled as a back edge below.
		if e.ID == arrivedBy {
			continue
		}
		// A self-loop is its own single-vertex component.
		if e.From == e.To {
			if e.From == u { // emit once, at its owner
				w.emit([]*core.Edge{e})
			}
			continue
		}

		v := e.To
		if v == u {
			v = e.From
		}

		dv, visited := w.disc[v]
		switch {
		case !visited:
			// Tree edge: descend.
			children++
			w.stack = append(w.stack, e)
			base := len(w.stack) - 1
			w.dfs(v, e.ID)
			if w.low[v] < w.low[u] {
				w.low[u] = w.low[v]
			}
			// Flush boundary: v's subtree cannot reach above u.
			if w.low[v] >= w.disc[u] {
				if arrivedBy != "" {
					w.arts[u] = struct{}{}
				}
				w.flush(base)
			}
		case dv < w.disc[u]:
			// Back edge to an ancestor: stack it and tighten low[u].
			w.stack = append(w.stack, e)
			if dv < w.low[u] {
				w.low[u] = dv
			}
		default:
			// Descendant side of an already-stacked back edge: skip.
		}
	}

	// Root rule: an articulation point iff more than one DFS child.
	if arrivedBy == "" && children > 1 {
		w.arts[u] = struct{}{}
	}
}

// flush pops the edge stack down to index base and records the popped
// edges as one biconnected component. No-op on an empty range.
func (w *walker) flush(base int) {
	if len(w.stack) <= base {
		return
	}
	comp := make([]*core.Edge, len(w.stack)-base)
	copy(comp, w.stack[base:])
	w.stack = w.stack[:base]
	w.emit(comp)
}

// emit records a component from its edge list, deduplicating and
// sorting the spanned vertices.
func (w *walker) emit(edges []*core.Edge) {
	vset := make(map[string]struct{}, len(edges)+1)
	eids := make([]string, 0, len(edges))
	for _, e := range edges {
		vset[e.From] = struct{}{}
		vset[e.To] = struct{}{}
		eids = append(eids, e.ID)
	}
	verts := make([]string, 0, len(vset))
	for v := range vset {
		verts = append(verts, v)
	}
	sort.Strings(verts)
	sort.Strings(eids)

	w.res.Components = append(w.res.Components, Component{Vertices: verts, Edges: eids})
}
