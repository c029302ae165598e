// Package core provides a high-performance, thread-safe in-memory Graph
// implementation tailored to citation networks.
//
// The Graph G = (V,E) supports a rich mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Typed vertices and edges ("paper", "author", "cites", …) for
//     traversal allow-list filtering
//   - Arbitrary per-entity metadata with a safe numeric accessor
//     (NumericMetadata) for weight resolution
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all
//     return sorted results, so every analysis engine built on top is
//     reproducible run to run.
//   - Clone support — CloneEmpty (vertices+flags), Clone (deep copy),
//     InducedSubgraph (problem-specific slices without side effects).
//
// The analysis packages (path, kcore, biconn, infomap) treat a Graph as
// a read-only snapshot: they hold read locks via the query methods and
// never mutate the instance. Mutation belongs to the storage layer that
// owns the graph.
package core
