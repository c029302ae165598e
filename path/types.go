// Package path: options, result types and error definitions for the
// shortest-path engine.

package path

import (
	"context"
	"errors"
	"fmt"

	"github.com/citegraph/citegraph/weight"
)

// Sentinel errors for shortest-path execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("path: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("path: source vertex not found")

	// ErrTargetNotFound is returned when the target vertex is absent.
	ErrTargetNotFound = errors.New("path: target vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("path: invalid option supplied")
)

// Direction selects which incident edges are traversable from the
// vertex currently being expanded.
type Direction int

const (
	// Outbound follows directed edges leaving the vertex plus all
	// undirected edges. This is the default.
	Outbound Direction = iota

	// Inbound follows directed edges entering the vertex plus all
	// undirected edges (walking citations backwards).
	Inbound

	// Both follows every incident edge regardless of orientation.
	Both
)

// propFilter is a discrete allow-list predicate on one edge metadata
// field: the stored value must equal one of the allowed values.
type propFilter struct {
	name    string
	allowed []interface{}
}

// TraversalOptions holds parameters customizing a shortest-path run.
// All filters AND-compose.
type TraversalOptions struct {
	// Ctx allows cancellation and deadlines; Background if nil.
	Ctx context.Context

	// Direction of traversal relative to the expanded vertex.
	Direction Direction

	// EdgeTypes, when non-empty, admits only edges whose Type is listed.
	EdgeTypes []string

	// NodeTypes, when non-empty, admits only expansion onto vertices
	// whose Type is listed. The source vertex is always admitted.
	NodeTypes []string

	// MaxDepth, if > 0, is a hop-count ceiling independent of weight.
	// 0 disables the limit.
	MaxDepth int

	// Weight configures per-edge cost resolution; the zero value counts
	// hops (constant weight 1).
	Weight weight.Config

	// propFilters holds discrete edge-metadata predicates.
	propFilters []propFilter

	// internal error recorded during option parsing
	err error
}

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the search is invoked.
type Option func(*TraversalOptions)

// DefaultOptions returns TraversalOptions with sane defaults:
// Background context, Outbound direction, no type filters, no depth
// limit, hop-count weights.
func DefaultOptions() TraversalOptions {
	return TraversalOptions{
		Ctx:       context.Background(),
		Direction: Outbound,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *TraversalOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection sets the traversal direction.
func WithDirection(d Direction) Option {
	return func(o *TraversalOptions) {
		switch d {
		case Outbound, Inbound, Both:
			o.Direction = d
		default:
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
		}
	}
}

// WithEdgeTypes restricts traversal to edges of the listed types.
func WithEdgeTypes(types ...string) Option {
	return func(o *TraversalOptions) {
		o.EdgeTypes = append(o.EdgeTypes, types...)
	}
}

// WithNodeTypes restricts expansion to vertices of the listed types.
func WithNodeTypes(types ...string) Option {
	return func(o *TraversalOptions) {
		o.NodeTypes = append(o.NodeTypes, types...)
	}
}

// WithMaxDepth stops the search at the given hop count (inclusive).
//
//	d > 0: limit paths to d edges
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *TraversalOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithWeight sets the weight resolution config for edge costs.
func WithWeight(cfg weight.Config) Option {
	return func(o *TraversalOptions) {
		o.Weight = cfg
	}
}

// WithEdgeProperty admits only edges whose metadata field name equals
// one of the allowed values. Multiple calls AND-compose.
func WithEdgeProperty(name string, allowed ...interface{}) Option {
	return func(o *TraversalOptions) {
		if name == "" {
			o.err = fmt.Errorf("%w: edge property name is empty", ErrOptionViolation)
			return
		}
		if len(allowed) == 0 {
			o.err = fmt.Errorf("%w: edge property %q has no allowed values", ErrOptionViolation, name)
			return
		}
		o.propFilters = append(o.propFilters, propFilter{name: name, allowed: allowed})
	}
}

// Result holds the outcome of a source→target shortest-path search.
type Result struct {
	// Path is the ordered vertex-ID sequence from source to target,
	// inclusive. Empty when Found is false.
	Path []string

	// Distance is the sum of resolved edge weights along Path, or +Inf
	// when Found is false.
	Distance float64

	// Found reports whether target was reachable within constraints.
	Found bool
}

// Distances holds the outcome of a single-source search: best-known
// distances and the shortest-path tree.
type Distances struct {
	// Dist maps vertex ID → distance from the source; unreachable
	// vertices are absent.
	Dist map[string]float64

	// Parent maps vertex ID → predecessor on its shortest path;
	// the source has no entry.
	Parent map[string]string

	// Source is the vertex the search started from.
	Source string

	// best and stateParent record each vertex's settling state and the
	// exact predecessor chain behind it. Under a hop ceiling a vertex's
	// Parent entries alone do not form a consistent tree (two vertices
	// may have settled through different hop levels of the same
	// predecessor), so PathTo walks the state chain when present.
	best        map[string]state
	stateParent map[state]state
}

// PathTo reconstructs the path from the source to dest, inclusive.
// The second return is false if dest was not reached.
func (d *Distances) PathTo(dest string) ([]string, bool) {
	if _, ok := d.Dist[dest]; !ok {
		return nil, false
	}
	// build reversed path
	rev := []string{}
	if d.stateParent != nil {
		for cur := d.best[dest]; ; {
			rev = append(rev, cur.id)
			prev, ok := d.stateParent[cur]
			if !ok {
				break
			}
			cur = prev
		}
	} else {
		for cur := dest; ; {
			rev = append(rev, cur)
			prev, ok := d.Parent[cur]
			if !ok {
				break
			}
			cur = prev
		}
	}
	// reverse to get source → dest
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}
