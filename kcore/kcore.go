// Package kcore: Batagelj–Zaversnik peeling implementation.
//
// Steps:
//  1. Index vertices in sorted order and build an orientation-blind
//     adjacency table (self-loops dropped, parallel edges kept).
//  2. Bucket-sort vertices by degree (bin array + position table).
//  3. Peel: walk the degree-ordered table left to right; the current
//     vertex's remaining degree is its core number; every unprocessed
//     neighbor with a higher remaining degree is swapped down into the
//     next-lower bucket.
//
// Core numbers are monotonically non-decreasing along the peel order,
// which is what makes the single left-to-right pass sufficient.

package kcore

import (
	"fmt"

	"github.com/citegraph/citegraph/core"
)

// Decompose computes core numbers for every vertex of g and the graph's
// degeneracy.
// Returns ErrNilGraph or ErrEmptyGraph for degenerate input.
// Complexity: O(V + E) time and space.
func Decompose(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// 1) Stable vertex indexing and adjacency construction.
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}
	adj := make([][]int, n)
	deg := make([]int, n)
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue // self-loops cannot tighten a core
		}
		u, v := idx[e.From], idx[e.To]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		deg[u]++
		deg[v]++
	}

	// 2) Bucket sort by degree: bin[d] = start offset of bucket d in vert.
	maxDeg := 0
	for _, d := range deg {
		if d > maxDeg {
			maxDeg = d
		}
	}
	bin := make([]int, maxDeg+1)
	for _, d := range deg {
		bin[d]++
	}
	start := 0
	for d := 0; d <= maxDeg; d++ {
		count := bin[d]
		bin[d] = start
		start += count
	}
	vert := make([]int, n) // vertices in ascending remaining-degree order
	pos := make([]int, n)  // position of each vertex in vert
	for v := 0; v < n; v++ {
		pos[v] = bin[deg[v]]
		vert[pos[v]] = v
		bin[deg[v]]++
	}
	// Restore bucket starts shifted by the fill above.
	for d := maxDeg; d > 0; d-- {
		bin[d] = bin[d-1]
	}
	bin[0] = 0

	// 3) Peel in degree order; deg[v] at extraction time is v's core number.
	coreNum := make([]int, n)
	for i := 0; i < n; i++ {
		v := vert[i]
		coreNum[v] = deg[v]
		for _, u := range adj[v] {
			if deg[u] <= deg[v] {
				continue // u already peeled or tied at the frontier
			}
			// Swap u with the first vertex of its bucket, then shrink
			// u's degree by one bucket.
			du := deg[u]
			pu := pos[u]
			pw := bin[du]
			w := vert[pw]
			if u != w {
				pos[u] = pw
				vert[pu] = w
				pos[w] = pu
				vert[pw] = u
			}
			bin[du]++
			deg[u]--
		}
	}

	// 4) Collect results keyed by vertex ID.
	res := &Result{CoreNumbers: make(map[string]int, n)}
	for i, id := range ids {
		res.CoreNumbers[id] = coreNum[i]
		if coreNum[i] > res.Degeneracy {
			res.Degeneracy = coreNum[i]
		}
	}

	return res, nil
}

// CoreSubgraph materializes the k-core of g as a new core.Graph induced
// by the k-core vertex set. The input graph is not mutated.
// Returns ErrNilGraph, ErrEmptyGraph, or ErrInvalidK.
// Complexity: O(V + E).
func CoreSubgraph(g *core.Graph, k int) (*core.Graph, error) {
	res, err := Decompose(g)
	if err != nil {
		return nil, err
	}
	members, err := res.Core(k)
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(members))
	for _, id := range members {
		keep[id] = true
	}

	return core.InducedSubgraph(g, keep), nil
}

// invalidK wraps ErrInvalidK with the requested and admissible values.
func invalidK(k, degeneracy int) error {
	return fmt.Errorf("%w: k=%d, degeneracy=%d", ErrInvalidK, k, degeneracy)
}
