// Package weight turns a declarative weight configuration into a
// concrete, strictly positive traversal cost per edge.
//
// A Config describes where the number comes from, in precedence order:
//
//  1. Fn — a custom weight function; its result is used verbatim
//     (then floored like every other source).
//  2. NodeProperty — a named numeric metadata field read off the source
//     vertex, the target vertex, or the average of both, selected by
//     NodePropertyTarget. Missing or non-numeric values fall back to
//     NodeDefault (default 1).
//  3. Property — a named numeric metadata field read off the edge.
//     Missing falls back to Default (default 1).
//  4. Nothing configured — constant weight 1, i.e. hop counting.
//
// If Invert is set, the weight becomes 1/max(w, MinWeight) before the
// final floor — useful when a high score (many citations) should mean
// a short edge.
//
// Every resolved weight is floored at MinWeight (0.001). Zero-citation
// entities must never produce a zero- or negative-cost edge: Dijkstra's
// correctness rests on strictly positive weights, and a zero-cost cycle
// would admit false "shortest" loops.
//
// Resolution never fails; absence degrades to defaults by contract.
//
// Complexity: O(1) per edge. The resolver holds no state and is safe
// for concurrent use.
package weight
