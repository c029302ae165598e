// Package citegraph is an in-process toolkit for analyzing citation
// networks — from the core graph primitives up to community detection.
//
// 🚀 What is citegraph?
//
//	A thread-safe, dependency-light library that brings together:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Weight resolution: derive traversal costs from entity metadata
//		• Shortest paths: Dijkstra with direction/type/property filters
//		• Cohesion: k-core decomposition (Batagelj–Zaversnik)
//		• Robustness: biconnected components & articulation points (Tarjan)
//		• Communities: Infomap-style map-equation clustering
//
// ✨ Why choose citegraph?
//
//   - Deterministic – sorted enumeration, seeded trials, lexical tie-breaks
//   - Rock-solid guarantees – R/W locks on the graph, pure analysis engines
//   - Pure Go – no cgo, no hidden deps
//   - Honest results – unreachable targets and trivial partitions are
//     values, not errors
//
// Everything is organized under six subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	weight/  — edge/vertex metadata → strictly positive traversal weights
//	path/    — weighted shortest paths over a graph snapshot
//	kcore/   — core numbers, degeneracy, nested k-core extraction
//	biconn/  — biconnected components, articulation points, bridges
//	infomap/ — two-level map-equation community detection
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square of four papers, each citing two neighbors.
//
// The analysis engines never mutate the input graph: build or clone a
// snapshot, hand it to an engine, branch on the returned value.
package citegraph
