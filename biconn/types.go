// Package biconn: result types and error definitions.

package biconn

import "errors"

// Sentinel errors for biconnected decomposition.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("biconn: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("biconn: graph has no vertices")
)

// Component is one biconnected component: its vertex set and the edges
// it owns. Both slices are sorted for determinism.
type Component struct {
	// Vertices are the IDs of the vertices spanned by the component.
	Vertices []string

	// Edges are the IDs of the edges owned by the component. Every
	// graph edge belongs to exactly one component.
	Edges []string
}

// Result holds the outcome of a biconnected decomposition.
type Result struct {
	// Components lists every biconnected component, in deterministic
	// order (DFS forest order, roots sorted).
	Components []Component

	// ArticulationPoints are the cut vertices, sorted.
	ArticulationPoints []string

	// artSet backs IsArticulationPoint.
	artSet map[string]struct{}
}

// IsArticulationPoint reports whether id is a cut vertex.
func (r *Result) IsArticulationPoint(id string) bool {
	_, ok := r.artSet[id]

	return ok
}

// Bridges returns the IDs of bridge edges: edges whose removal
// disconnects their endpoints. A bridge is exactly a non-loop
// biconnected component with a single edge.
func (r *Result) Bridges() []string {
	var out []string
	for _, c := range r.Components {
		if len(c.Edges) == 1 && len(c.Vertices) == 2 {
			out = append(out, c.Edges[0])
		}
	}

	return out
}
