// Package core: metadata access helpers.
//
// Vertex and Edge metadata is schemaless (map[string]interface{});
// callers attach whatever their domain model carries — citation counts,
// h-index, publication years. Weight resolution and property filtering
// must read named numeric fields without trusting the payload shape,
// so extraction goes through NumericMetadata, which shape-checks the
// stored value and reports absence instead of panicking.

package core

// NumericMetadata extracts the named field from a metadata map as a
// float64. The second return is false when the map is nil, the key is
// absent, or the stored value is not a numeric type.
//
// Recognized types: all Go integer widths (signed and unsigned),
// float32 and float64. Booleans and strings are not coerced.
// Complexity: O(1).
func NumericMetadata(meta map[string]interface{}, key string) (float64, bool) {
	if meta == nil {
		return 0, false
	}
	raw, ok := meta[key]
	if !ok {
		return 0, false
	}

	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// SetVertexMetadata writes one metadata key on an existing vertex.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1).
func (g *Graph) SetVertexMetadata(id, key string, value interface{}) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	if v.Metadata == nil {
		v.Metadata = make(map[string]interface{})
	}
	v.Metadata[key] = value

	return nil
}

// SetEdgeMetadata writes one metadata key on an existing edge.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) SetEdgeMetadata(eid, key string, value interface{}) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value

	return nil
}
