// Package path implements weighted shortest-path search over a
// core.Graph, parameterized by the weight resolution of package weight
// and by declarative traversal filters.
//
// The engine is Dijkstra's algorithm: vertices are settled in order of
// increasing distance from the source using a min-heap priority queue
// with the lazy-decrease-key strategy (duplicates pushed, stale entries
// skipped on pop). Ties in distance are broken by lexical vertex-ID
// order, so results are deterministic for a fixed graph.
//
// Edge admissibility is an AND-composed pre-filter applied before an
// edge is considered for relaxation:
//
//   - Direction: Outbound (default), Inbound, or Both.
//   - Edge-type allow-list (WithEdgeTypes).
//   - Node-type allow-list applied to the vertex an edge leads to
//     (WithNodeTypes).
//   - Discrete edge-metadata predicates (WithEdgeProperty).
//   - Hop ceiling independent of weight (WithMaxDepth).
//
// Unreachability is a normal outcome, not a fault: FindShortestPath
// returns Found == false with an empty path and Distance == +Inf.
// Errors are reserved for malformed input — nil graph, missing source
// or target, invalid options.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each vertex is extracted from the priority queue at most once.
//	   • Each edge relaxation may push into the priority queue.
//	– Space: O(V + E) for distance/predecessor maps and the heap under
//	  lazy decrease-key.
//
// Example:
//
//	res, err := path.FindShortestPath(g, "A", "D",
//	    path.WithWeight(weight.Config{Property: "strength", Invert: true}),
//	    path.WithEdgeTypes("cites"),
//	)
//	if err != nil { ... }
//	if !res.Found { /* no admissible route */ }
package path
