// Package infomap: two-level map-equation bookkeeping.
//
// With q_i the exit flow of module i, p_i its visit probability and
// p_a the leaf visit rates, the two-level codelength is
//
//	L = plogp(Σq_i) - 2·Σ plogp(q_i) + Σ plogp(q_i + p_i) - Σ plogp(p_a)
//
// in bits per walker step. The last term is partition-independent and
// is exactly the one-level codelength, so a single all-enclosing module
// (all q_i = 0, p_1 = 1) encodes at the one-level rate.

package infomap

import "math"

// plogp is x·log2(x) with the entropy convention plogp(0) = 0.
func plogp(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return x * math.Log2(x)
}

// codelength evaluates the two-level map equation from per-module
// aggregates. nodeTerm is the precomputed -Σ plogp(p_a).
func codelength(sumExit float64, exit, flow []float64, nodeTerm float64) float64 {
	l := plogp(sumExit)
	for i := range exit {
		l -= 2 * plogp(exit[i])
		l += plogp(exit[i] + flow[i])
	}

	return l + nodeTerm
}

// evaluate computes the exact codelength of a compact assignment over
// the leaf network, avoiding any drift accumulated by incremental
// deltas during optimization.
func evaluate(net *network, assign []int, numModules int) float64 {
	flow := make([]float64, numModules)
	exit := make([]float64, numModules)
	for a, pa := range net.p {
		flow[assign[a]] += pa
	}
	sumExit := 0.0
	for a := range net.out {
		for _, l := range net.out[a] {
			if assign[a] != assign[l.peer] {
				exit[assign[a]] += l.flow
				sumExit += l.flow
			}
		}
	}

	return codelength(sumExit, exit, flow, net.nodeTerm)
}
