// Package infomap: flow network construction.
//
// Steps:
//  1. Index vertices by sorted ID so every working array is positional.
//  2. Resolve edge weights and aggregate parallel arcs; an undirected
//     edge becomes a symmetric arc pair.
//  3. Derive the walker's stationary visit rates: closed form
//     (strength-proportional) when no edge is directed, otherwise power
//     iteration with teleportation and uniform dangling redistribution.
//  4. Turn arcs into per-step link flows f(a→b) = p[a]·w(a,b)/s(a).
//
// All float accumulation runs over peer-sorted arc lists, never over
// map iteration order, so identical inputs give bit-identical flows.
// The network is immutable once built; trials and aggregation levels
// own their working arrays and never touch it.

package infomap

import (
	"fmt"
	"sort"

	"github.com/citegraph/citegraph/core"
	"github.com/citegraph/citegraph/weight"
)

// link is one directed flow between the owning vertex and peer.
type link struct {
	peer int
	flow float64
}

// arc is one aggregated weighted connection a→peer.
type arc struct {
	peer   int
	weight float64
}

// network is the positional flow view of a graph snapshot.
type network struct {
	ids   []string // sorted vertex IDs; position = index
	out   [][]link // per vertex, flows a→peer, ascending peer
	in    [][]link // per vertex, flows peer→a, ascending peer
	p     []float64
	// nodeTerm is -Σ plogp(p[a]) over leaf vertices. It is both the
	// one-level codelength and the partition-independent term of the
	// two-level codelength, so it survives module aggregation unchanged.
	nodeTerm float64
	sweeps   int // power-iteration sweeps spent
}

// buildNetwork converts g into flow form. Fails with ErrConvergence if
// the stationary distribution does not settle within maxIter sweeps.
//
// Complexity: O(V + E) per sweep plus O(E log E) for arc sorting.
func buildNetwork(g *core.Graph, cfg weight.Config, tol float64, maxIter int) (*network, error) {
	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Step 2: weighted arc aggregation. Self-loops carry no structural
	// information for a partition and are dropped.
	raw := make([]map[int]float64, n)
	strength := make([]float64, n)
	addArc := func(u, v int, w float64) {
		if raw[u] == nil {
			raw[u] = make(map[int]float64)
		}
		raw[u][v] += w
		strength[u] += w
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := index[e.From], index[e.To]
		src, _ := g.Vertex(e.From)
		dst, _ := g.Vertex(e.To)
		w := weight.Resolve(e, src, dst, cfg)
		addArc(u, v, w)
		if !e.Directed {
			addArc(v, u, w)
		}
	}
	arcs := make([][]arc, n)
	for a, m := range raw {
		if m == nil {
			continue
		}
		arcs[a] = make([]arc, 0, len(m))
		for b, w := range m {
			arcs[a] = append(arcs[a], arc{peer: b, weight: w})
		}
		sort.Slice(arcs[a], func(i, j int) bool { return arcs[a][i].peer < arcs[a][j].peer })
	}

	net := &network{
		ids: ids,
		out: make([][]link, n),
		in:  make([][]link, n),
	}

	// Step 3: stationary visit rates.
	directed := g.HasDirectedEdges()
	var err error
	if directed {
		net.p, net.sweeps, err = stationaryDirected(arcs, strength, tol, maxIter)
		if err != nil {
			return nil, err
		}
	} else {
		net.p = stationaryUndirected(strength)
	}

	// Step 4: link flows. Teleportation steps are not encoded, so the
	// directed flows are scaled by the link-following probability.
	scale := 1.0
	if directed {
		scale = 1 - teleportProb
	}
	for a := 0; a < n; a++ {
		for _, ac := range arcs[a] {
			f := scale * net.p[a] * ac.weight / strength[a]
			net.out[a] = append(net.out[a], link{peer: ac.peer, flow: f})
			net.in[ac.peer] = append(net.in[ac.peer], link{peer: a, flow: f})
		}
	}
	for b := 0; b < n; b++ {
		sort.Slice(net.in[b], func(i, j int) bool { return net.in[b][i].peer < net.in[b][j].peer })
	}

	for _, pa := range net.p {
		net.nodeTerm -= plogp(pa)
	}

	return net, nil
}

// stationaryUndirected returns the closed-form visit rates of an
// undirected walk: proportional to vertex strength. A graph with no
// edges degrades to the uniform distribution.
func stationaryUndirected(strength []float64) []float64 {
	n := len(strength)
	p := make([]float64, n)
	total := 0.0
	for _, s := range strength {
		total += s
	}
	if total == 0 {
		for i := range p {
			p[i] = 1 / float64(n)
		}

		return p
	}
	for i, s := range strength {
		p[i] = s / total
	}

	return p
}

// stationaryDirected runs power iteration with teleportation
// probability teleportProb, redistributing dangling mass uniformly.
// Converges when the L1 change of a sweep drops below tol.
func stationaryDirected(arcs [][]arc, strength []float64, tol float64, maxIter int) ([]float64, int, error) {
	n := len(strength)
	p := make([]float64, n)
	next := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}

	for sweep := 1; sweep <= maxIter; sweep++ {
		dangling := 0.0
		for i := range next {
			next[i] = 0
		}
		for a := 0; a < n; a++ {
			if strength[a] == 0 {
				dangling += p[a]
				continue
			}
			for _, ac := range arcs[a] {
				next[ac.peer] += (1 - teleportProb) * p[a] * ac.weight / strength[a]
			}
		}
		base := teleportProb/float64(n) + (1-teleportProb)*dangling/float64(n)
		diff := 0.0
		for i := range next {
			next[i] += base
			d := next[i] - p[i]
			if d < 0 {
				d = -d
			}
			diff += d
		}
		p, next = next, p
		if diff < tol {
			return p, sweep, nil
		}
	}

	return nil, maxIter, fmt.Errorf("%w: stationary distribution unsettled after %d sweeps", ErrConvergence, maxIter)
}
