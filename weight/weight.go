// Package weight: Config and Resolve.
//
// Resolution precedence, fallback rules and the positivity floor are
// documented in doc.go; the implementation below follows them step by
// step.

package weight

import (
	"github.com/citegraph/citegraph/core"
)

// MinWeight is the strictly positive floor applied to every resolved
// weight, and the guard used by inversion against division by zero.
const MinWeight = 0.001

// defaultWeight is the constant cost used when no source is configured
// and the fallback when a configured source is absent.
const defaultWeight = 1.0

// NodeTarget selects which endpoint's metadata feeds node-property
// weight resolution.
type NodeTarget string

const (
	// NodeSource reads the property off the edge's source vertex.
	NodeSource NodeTarget = "source"

	// NodeTargetVertex reads the property off the edge's target vertex.
	NodeTargetVertex NodeTarget = "target"

	// NodeAverage averages the property over both endpoints; an endpoint
	// missing the property contributes NodeDefault.
	NodeAverage NodeTarget = "average"
)

// Fn computes a custom weight for the edge being traversed from src to
// dst. src is the vertex the search is expanding, dst the vertex the
// edge leads to (already normalized for undirected edges).
type Fn func(e *core.Edge, src, dst *core.Vertex) float64

// Config describes how to derive a traversal weight for an edge.
// The zero value means "constant weight 1 per edge" (hop counting).
type Config struct {
	// Property names an edge metadata field to use as the weight.
	Property string

	// Default substitutes for a missing or non-numeric edge Property.
	// Zero means 1.
	Default float64

	// NodeProperty names a vertex metadata field to use as the weight.
	// Takes precedence over Property.
	NodeProperty string

	// NodePropertyTarget picks source, target, or average endpoint
	// metadata. Empty means NodeSource.
	NodePropertyTarget NodeTarget

	// NodeDefault substitutes for a missing or non-numeric vertex
	// NodeProperty. Zero means 1.
	NodeDefault float64

	// Fn, when non-nil, overrides the declarative selectors entirely.
	Fn Fn

	// Invert maps the weight w to 1/max(w, MinWeight) before the final
	// floor, turning high scores into short edges.
	Invert bool
}

// Resolve computes the traversal weight of edge e expanded from src
// toward dst under cfg. The result is always ≥ MinWeight.
//
// src and dst may be nil when the caller has no vertex payloads (the
// node-property path then falls back to NodeDefault).
// Complexity: O(1).
func Resolve(e *core.Edge, src, dst *core.Vertex, cfg Config) float64 {
	var w float64

	switch {
	// 1) Custom function wins outright.
	case cfg.Fn != nil:
		w = cfg.Fn(e, src, dst)

	// 2) Node property with endpoint discrimination.
	case cfg.NodeProperty != "":
		w = resolveNodeProperty(src, dst, cfg)

	// 3) Edge property.
	case cfg.Property != "":
		w = defaultOr(cfg.Default)
		if e != nil {
			if v, ok := core.NumericMetadata(e.Metadata, cfg.Property); ok {
				w = v
			}
		}

	// 4) Nothing configured: hop counting.
	default:
		w = defaultWeight
	}

	// Inversion happens before the floor so that inverting a huge score
	// still yields a small-but-positive cost.
	if cfg.Invert {
		if w < MinWeight {
			w = MinWeight
		}
		w = 1 / w
	}

	// Final positivity floor.
	if w < MinWeight {
		w = MinWeight
	}

	return w
}

// resolveNodeProperty reads cfg.NodeProperty off the configured
// endpoint(s), substituting NodeDefault per endpoint when absent.
func resolveNodeProperty(src, dst *core.Vertex, cfg Config) float64 {
	fallback := defaultOr(cfg.NodeDefault)

	read := func(v *core.Vertex) float64 {
		if v == nil {
			return fallback
		}
		if got, ok := core.NumericMetadata(v.Metadata, cfg.NodeProperty); ok {
			return got
		}
		return fallback
	}

	switch cfg.NodePropertyTarget {
	case NodeTargetVertex:
		return read(dst)
	case NodeAverage:
		return (read(src) + read(dst)) / 2
	default: // NodeSource and empty
		return read(src)
	}
}

// defaultOr maps the zero value to the documented default of 1.
func defaultOr(d float64) float64 {
	if d == 0 {
		return defaultWeight
	}

	return d
}
