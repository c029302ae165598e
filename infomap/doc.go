// Package infomap detects community structure on a core.Graph by
// minimizing the two-level map equation over the dynamics of a random
// walker, in the style of Rosvall & Bergstrom's Infomap.
//
// The map equation scores a partition by the expected per-step
// codelength of describing the walker's trajectory with a two-level
// codebook: an index codebook for jumps between modules plus one
// codebook per module for movement inside it. Partitions that trap the
// walker inside well-connected groups compress the trajectory below the
// one-level (unpartitioned) entropy; the minimizing partition is the
// community structure.
//
// Pipeline per call:
//
//  1. Build the flow network: resolve edge weights through a
//     weight.Config (constant 1 by default), then derive the walker's
//     stationary visit rates. Undirected graphs use the closed-form
//     strength-proportional distribution; graphs with directed edges
//     run power iteration with 0.15 teleportation and uniform dangling
//     redistribution until the L1 sweep change drops below Tolerance.
//  2. Run NumTrials independent restarts. Each trial starts from
//     singleton modules and alternates greedy local moves (best
//     strictly-improving relocation per vertex, vertices visited in a
//     seeded shuffled order) with module aggregation into supernode
//     networks, until a level merges nothing.
//  3. Keep the trial with the lowest exactly-recomputed codelength. If
//     even the best trial beats nothing, the trivial single-module
//     partition is returned instead, so CompressionRatio ≥ 1 always.
//
// Determinism: a fixed non-zero Seed reproduces the identical partition
// and DescriptionLength on the identical graph; Seed 0 seeds from the
// clock. Failure of the stationary solve, or of every trial, to settle
// within MaxIterations surfaces as ErrConvergence carrying the budget
// spent — never as a silent partial result.
//
// The input graph is never mutated; concurrent calls over independent
// graphs are safe.
//
// Complexity: O(V + E) per power-iteration sweep and per local-move
// pass, O(trials · passes · (V + E)) overall.
package infomap
