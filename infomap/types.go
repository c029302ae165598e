// Package infomap: options, result types and error definitions.

package infomap

import (
	"errors"
	"fmt"

	"github.com/citegraph/citegraph/weight"
)

// Sentinel errors for map-equation clustering.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("infomap: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("infomap: graph has no vertices")

	// ErrOptionViolation is returned when a functional option received
	// an invalid value.
	ErrOptionViolation = errors.New("infomap: invalid option")

	// ErrConvergence is returned when neither the stationary
	// distribution nor any optimization trial stabilized within the
	// iteration budget. The wrapped message carries the budget spent.
	ErrConvergence = errors.New("infomap: failed to converge")
)

// Tunable defaults.
const (
	// DefaultMaxIterations bounds both the power-iteration sweep count
	// and the number of local-move passes per optimization level.
	DefaultMaxIterations = 200

	// DefaultNumTrials is the number of independent randomized
	// restarts; the trial with the lowest codelength wins.
	DefaultNumTrials = 10

	// DefaultTolerance is the L1 convergence threshold for the
	// stationary-distribution power iteration.
	DefaultTolerance = 1e-6

	// teleportProb is the random-walker teleportation probability used
	// on graphs with directed edges. Undirected graphs need none: their
	// stationary distribution is strength-proportional in closed form.
	teleportProb = 0.15
)

// Options configures a clustering run. Use the With... helpers.
type Options struct {
	// MaxIterations caps power-iteration sweeps and local-move passes
	// per level. Must be positive.
	MaxIterations int

	// NumTrials is the number of seeded restarts. Must be positive.
	NumTrials int

	// Seed drives the per-trial node visitation order. The same seed on
	// the same graph reproduces the exact same partition; seed 0 draws
	// a fresh seed from the clock and is explicitly non-deterministic.
	Seed int64

	// Tolerance is the power-iteration convergence threshold.
	Tolerance float64

	// Weight controls how edge transition weights are resolved. The
	// zero value weighs every edge 1.
	Weight weight.Config

	// err records the first option violation; surfaced by Cluster.
	err error
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		NumTrials:     DefaultNumTrials,
		Tolerance:     DefaultTolerance,
	}
}

// Option adjusts one Options field.
type Option func(*Options)

// WithMaxIterations sets the iteration budget. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations %d is not positive", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithNumTrials sets the number of randomized restarts. n must be
// positive.
func WithNumTrials(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: trial count %d is not positive", ErrOptionViolation, n)
			return
		}
		o.NumTrials = n
	}
}

// WithSeed fixes the RNG seed for reproducible partitions.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTolerance sets the power-iteration convergence threshold. eps
// must be positive.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: tolerance %g is not positive", ErrOptionViolation, eps)
			return
		}
		o.Tolerance = eps
	}
}

// WithWeight sets the edge-weight resolution used when building the
// walker's transition probabilities.
func WithWeight(cfg weight.Config) Option {
	return func(o *Options) { o.Weight = cfg }
}

// Module is one element of the partition: its member vertices plus the
// random-walk statistics the map equation is computed from.
type Module struct {
	// Nodes are the member vertex IDs, sorted.
	Nodes []string

	// VisitProbability is the stationary probability mass of the walker
	// being at any member of this module.
	VisitProbability float64

	// ExitProbability is the per-step flow leaving the module.
	ExitProbability float64
}

// Result holds the best partition found across all trials.
type Result struct {
	// Modules lists the partition elements, ordered by their
	// lexicographically smallest member ID.
	Modules []Module

	// Assignments maps every vertex ID to its index in Modules.
	Assignments map[string]int

	// DescriptionLength is the two-level map-equation codelength of the
	// returned partition, in bits per walker step.
	DescriptionLength float64

	// OneLevelCodelength is the codelength of the trivial unpartitioned
	// encoding (the entropy of the node visit rates).
	OneLevelCodelength float64

	// CompressionRatio is OneLevelCodelength / DescriptionLength; at
	// least 1 by construction.
	CompressionRatio float64

	// Iterations is the total work spent on the winning trial:
	// power-iteration sweeps plus local-move passes across all levels.
	Iterations int
}
