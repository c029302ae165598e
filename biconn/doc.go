// Package biconn implements biconnected-component decomposition and
// articulation-point detection on a core.Graph using Tarjan's
// depth-first low-link algorithm.
//
// A biconnected component is a maximal subgraph with no internal
// articulation point; an articulation point is a vertex whose removal
// increases the number of connected components. Two biconnected
// components share at most one vertex, and a shared vertex is by
// definition an articulation point. The components partition the edge
// set exactly: every edge belongs to exactly one component.
//
// The algorithm is a single DFS computing, per vertex, a discovery time
// and a low-link (the lowest discovery time reachable through one back
// edge). Tree edges are pushed on an edge stack during descent; when a
// child's low-link reaches back no further than its parent's discovery
// time, the stack is flushed down to the tree edge — that flush is one
// biconnected component, and the parent (if not the DFS root) is an
// articulation point. A DFS root is an articulation point iff it has
// more than one DFS child.
//
// Orientation is ignored: citation direction does not affect
// 2-connectivity. Parallel edges are honored (the second parallel edge
// is a genuine back edge, so a doubled edge forms a 2-connected
// component). A self-loop forms its own single-vertex component and
// never creates an articulation point. Disconnected graphs are
// processed as a DFS forest, roots taken in sorted vertex order, and
// the results unioned.
//
// "No articulation points" is a normal result, not an error; errors are
// reserved for a nil or vertex-less graph.
//
// Complexity: O(V + E) time, O(V + E) space, one pass.
package biconn
