// Package kcore: result types and error definitions.

package kcore

import (
	"errors"
	"sort"
)

// Sentinel errors for k-core decomposition.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("kcore: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("kcore: graph has no vertices")

	// ErrInvalidK is returned when the requested k exceeds the computed
	// degeneracy (or is negative).
	ErrInvalidK = errors.New("kcore: invalid k")
)

// Result holds the outcome of a k-core decomposition.
type Result struct {
	// CoreNumbers maps vertex ID → the largest k for which the vertex
	// belongs to the k-core.
	CoreNumbers map[string]int

	// Degeneracy is the maximum core number over all vertices — the
	// largest k for which a non-empty k-core exists.
	Degeneracy int
}

// Core returns the sorted vertex IDs of the k-core: every vertex whose
// core number is ≥ k. k == 0 returns all vertices.
// Returns ErrInvalidK (wrapped with k and degeneracy) when k is
// negative or exceeds the degeneracy.
// Complexity: O(V log V).
func (r *Result) Core(k int) ([]string, error) {
	if k < 0 || k > r.Degeneracy {
		return nil, invalidK(k, r.Degeneracy)
	}
	ids := make([]string, 0, len(r.CoreNumbers))
	for id, c := range r.CoreNumbers {
		if c >= k {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids, nil
}
