// Package kcore implements k-core decomposition of a core.Graph using
// the Batagelj–Zaversnik peeling algorithm.
//
// The k-core of a graph is the maximal subgraph in which every vertex
// has degree ≥ k within that subgraph. Peeling assigns every vertex a
// core number — the largest k for which it belongs to the k-core — by
// repeatedly extracting the minimum-degree vertex and decrementing its
// unprocessed neighbors. Cores are nested: the (k+1)-core is always a
// subset of the k-core.
//
// Degrees are orientation-blind: a citation counts toward both
// endpoints regardless of edge direction. Parallel edges count
// individually; self-loops are ignored (a loop cannot bind a vertex
// into a denser core).
//
// Instead of a generic priority queue, vertices are bucketed by current
// degree. Degrees only ever decrease by exactly 1 per neighbor removal,
// so each decrement is a swap between adjacent buckets and the whole
// decomposition runs in O(V+E) time and O(V+E) space.
//
// Errors:
//
//	– ErrNilGraph   if the provided graph pointer is nil.
//	– ErrEmptyGraph if the graph has zero vertices.
//	– ErrInvalidK   if a requested k exceeds the computed degeneracy
//	                (the error message carries both values).
//
// Example:
//
//	res, err := kcore.Decompose(g)
//	if err != nil { ... }
//	dense, err := res.Core(res.Degeneracy) // the innermost core
package kcore
