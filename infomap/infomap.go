// Package infomap: map-equation minimization.
//
// Steps, per trial:
//  1. Start every vertex in its own module.
//  2. Local moves: visit vertices in a shuffled order and apply, per
//     vertex, the best strictly-improving relocation into a neighboring
//     module; repeat passes until a full pass improves nothing.
//  3. Aggregate modules into supernodes and rerun step 2 on the coarser
//     network; stop when a level merges nothing.
//
// The best trial by exact recomputed codelength wins. A partition worse
// than the trivial single-module encoding is discarded in favor of that
// single module, so the compression ratio never drops below 1.

package infomap

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/citegraph/citegraph/core"
)

// deltaTol guards move acceptance and best-trial comparison against
// floating-point jitter.
const deltaTol = 1e-12

// Cluster partitions g's vertices into modules by minimizing the
// two-level map equation over the random walker implied by the graph.
// Returns ErrNilGraph, ErrEmptyGraph, ErrOptionViolation on bad input
// and ErrConvergence when no trial stabilized within the budget.
//
// Complexity: O(trials · passes · (V + E)) after an O(V + E) per-sweep
// stationary solve.
func Cluster(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	net, err := buildNetwork(g, o.Weight, o.Tolerance, o.MaxIterations)
	if err != nil {
		return nil, err
	}
	n := len(net.ids)

	seed := effectiveSeed(o.Seed)

	var (
		bestAssign []int
		bestL      float64
		bestPasses int
		found      bool
	)
	for t := 0; t < o.NumTrials; t++ {
		assign, l, passes, ok := search(net, trialRNG(seed, uint64(t)), o.MaxIterations)
		if !ok {
			continue
		}
		if !found || l < bestL-deltaTol {
			bestAssign, bestL, bestPasses, found = assign, l, passes, true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no trial stabilized within %d passes (%d trials)", ErrConvergence, o.MaxIterations, o.NumTrials)
	}

	// Single-module fallback: the trivial encoding is the ceiling.
	oneLevel := net.nodeTerm
	if bestL > oneLevel+deltaTol {
		bestAssign = make([]int, n)
		bestL = oneLevel
	}

	return assemble(net, bestAssign, bestL, oneLevel, net.sweeps+bestPasses), nil
}

// search runs one trial: local moves and aggregation until a level
// merges nothing, then an exact leaf-level codelength. ok is false when
// any level's local moves ran out of passes before stabilizing.
func search(net *network, rng *rand.Rand, maxIter int) (assign []int, l float64, passes int, ok bool) {
	assign = make([]int, len(net.ids))
	for i := range assign {
		assign[i] = i
	}

	cur := net
	for {
		level, levelPasses, converged := localMoves(cur, rng, maxIter)
		passes += levelPasses
		if !converged {
			return nil, 0, passes, false
		}
		level, numModules := compact(level)
		for i := range assign {
			assign[i] = level[assign[i]]
		}
		if numModules == len(cur.p) {
			break
		}
		cur = aggregate(cur, level, numModules)
	}

	numModules := 0
	for _, m := range assign {
		if m+1 > numModules {
			numModules = m + 1
		}
	}

	return assign, evaluate(net, assign, numModules), passes, true
}

// localMoves greedily relocates vertices between modules on one network
// level, starting from singletons. Module aggregates (visit flow, exit
// flow) are maintained incrementally; only the best strictly-improving
// move per vertex per pass is applied.
func localMoves(net *network, rng *rand.Rand, maxIter int) (assign []int, passes int, converged bool) {
	n := len(net.p)
	assign = make([]int, n)
	modFlow := make([]float64, n)
	modExit := make([]float64, n)
	outTotal := make([]float64, n)
	for a := 0; a < n; a++ {
		assign[a] = a
		modFlow[a] = net.p[a]
		for _, l := range net.out[a] {
			if l.peer != a {
				outTotal[a] += l.flow
			}
		}
		modExit[a] = outTotal[a]
	}
	sumExit := 0.0
	for _, e := range modExit {
		sumExit += e
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	outTo := make(map[int]float64, 8)
	inFrom := make(map[int]float64, 8)
	for passes = 1; passes <= maxIter; passes++ {
		shuffleInts(order, rng)
		improved := false
		for _, a := range order {
			src := assign[a]

			// Bucket a's flows by neighboring module.
			for m := range outTo {
				delete(outTo, m)
			}
			for m := range inFrom {
				delete(inFrom, m)
			}
			for _, l := range net.out[a] {
				if l.peer != a {
					outTo[assign[l.peer]] += l.flow
				}
			}
			for _, l := range net.in[a] {
				if l.peer != a {
					inFrom[assign[l.peer]] += l.flow
				}
			}
			candidates := candidateModules(outTo, inFrom, src)
			if len(candidates) == 0 {
				continue
			}

			// Detaching a from src is move-independent.
			exitSrcNew := modExit[src] - (outTotal[a] - outTo[src]) + inFrom[src]
			flowSrcNew := modFlow[src] - net.p[a]

			bestDelta := -deltaTol
			bestMod := -1
			bestExitDst := 0.0
			for _, m := range candidates {
				exitDstNew := modExit[m] + (outTotal[a] - outTo[m]) - inFrom[m]
				flowDstNew := modFlow[m] + net.p[a]
				newSum := sumExit + (exitSrcNew - modExit[src]) + (exitDstNew - modExit[m])

				delta := plogp(newSum) - plogp(sumExit)
				delta -= 2 * (plogp(exitSrcNew) + plogp(exitDstNew) - plogp(modExit[src]) - plogp(modExit[m]))
				delta += plogp(exitSrcNew+flowSrcNew) + plogp(exitDstNew+flowDstNew)
				delta -= plogp(modExit[src]+modFlow[src]) + plogp(modExit[m]+modFlow[m])
				if delta < bestDelta {
					bestDelta, bestMod, bestExitDst = delta, m, exitDstNew
				}
			}
			if bestMod < 0 {
				continue
			}

			sumExit += (exitSrcNew - modExit[src]) + (bestExitDst - modExit[bestMod])
			modExit[src] = exitSrcNew
			modExit[bestMod] = bestExitDst
			modFlow[src] = flowSrcNew
			modFlow[bestMod] += net.p[a]
			assign[a] = bestMod
			improved = true
		}
		if !improved {
			return assign, passes, true
		}
	}

	return assign, maxIter, false
}

// candidateModules returns the distinct neighboring modules of a vertex
// in ascending order, so tie evaluation is independent of map order.
func candidateModules(outTo, inFrom map[int]float64, src int) []int {
	set := make(map[int]struct{}, len(outTo)+len(inFrom))
	for m := range outTo {
		if m != src {
			set[m] = struct{}{}
		}
	}
	for m := range inFrom {
		if m != src {
			set[m] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Ints(out)

	return out
}

// compact renumbers module IDs to 0..k-1 in order of first appearance
// over ascending vertex index, returning the renumbered slice and k.
func compact(assign []int) ([]int, int) {
	remap := make(map[int]int, len(assign))
	for _, m := range assign {
		if _, seen := remap[m]; !seen {
			remap[m] = len(remap)
		}
	}
	out := make([]int, len(assign))
	for i, m := range assign {
		out[i] = remap[m]
	}

	return out, len(remap)
}

// aggregate collapses a partitioned level into a supernode network:
// supernode flow is the member flow sum, inter-module link flows are
// summed, intra-module flow is dropped (it can never cross a boundary
// again). The leaf nodeTerm carries over untouched.
func aggregate(net *network, assign []int, numModules int) *network {
	agg := &network{
		out:      make([][]link, numModules),
		in:       make([][]link, numModules),
		p:        make([]float64, numModules),
		nodeTerm: net.nodeTerm,
	}
	for a, pa := range net.p {
		agg.p[assign[a]] += pa
	}

	raw := make([]map[int]float64, numModules)
	for a := range net.out {
		ma := assign[a]
		for _, l := range net.out[a] {
			mb := assign[l.peer]
			if ma == mb {
				continue
			}
			if raw[ma] == nil {
				raw[ma] = make(map[int]float64)
			}
			raw[ma][mb] += l.flow
		}
	}
	for ma, m := range raw {
		if m == nil {
			continue
		}
		peers := make([]int, 0, len(m))
		for mb := range m {
			peers = append(peers, mb)
		}
		sort.Ints(peers)
		for _, mb := range peers {
			f := m[mb]
			agg.out[ma] = append(agg.out[ma], link{peer: mb, flow: f})
			agg.in[mb] = append(agg.in[mb], link{peer: ma, flow: f})
		}
	}
	for mb := range agg.in {
		sort.Slice(agg.in[mb], func(i, j int) bool { return agg.in[mb][i].peer < agg.in[mb][j].peer })
	}

	return agg
}

// assemble builds the public Result from a compact leaf assignment,
// reordering modules by their lexicographically smallest member.
func assemble(net *network, assign []int, l, oneLevel float64, iterations int) *Result {
	numModules := 0
	for _, m := range assign {
		if m+1 > numModules {
			numModules = m + 1
		}
	}

	members := make([][]string, numModules)
	flow := make([]float64, numModules)
	exit := make([]float64, numModules)
	for a, id := range net.ids {
		m := assign[a]
		members[m] = append(members[m], id)
		flow[m] += net.p[a]
	}
	for a := range net.out {
		for _, lk := range net.out[a] {
			if assign[a] != assign[lk.peer] {
				exit[assign[a]] += lk.flow
			}
		}
	}

	// net.ids is sorted, so members[m][0] is each module's minimum.
	order := make([]int, numModules)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return members[order[i]][0] < members[order[j]][0] })

	res := &Result{
		Modules:            make([]Module, numModules),
		Assignments:        make(map[string]int, len(net.ids)),
		DescriptionLength:  l,
		OneLevelCodelength: oneLevel,
		CompressionRatio:   1,
		Iterations:         iterations,
	}
	for newIdx, old := range order {
		res.Modules[newIdx] = Module{
			Nodes:            members[old],
			VisitProbability: flow[old],
			ExitProbability:  exit[old],
		}
		for _, id := range members[old] {
			res.Assignments[id] = newIdx
		}
	}
	if l > 0 {
		res.CompressionRatio = oneLevel / l
	}

	return res
}
