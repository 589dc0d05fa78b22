// SPDX-License-Identifier: MIT
// Package: align3/dag
//
// graph.go - immutable arena graph with a CSR incoming index.
//
// Layout:
//   - vertices are dense ids 0..V-1 resolved to coordinates by a Layout;
//   - edges live in one slice, in the caller's order;
//   - inStart[v]..inStart[v+1] indexes inEdges, the ids of edges ending at v,
//     in the same relative order as the edge slice.
//
// Complexity: NewGraph is O(V + E) time and memory.

package dag

// GraphOption configures NewGraph.
type GraphOption func(*graphConfig)

type graphConfig struct {
	start VertexID
	end   VertexID
}

func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{start: NoVertex, end: NoVertex}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStart designates id as the only vertex where a path may begin.
// Panics on a negative id; range is checked by NewGraph.
func WithStart(id VertexID) GraphOption {
	if id < 0 {
		panic("dag: WithStart(id) requires id ≥ 0")
	}

	return func(c *graphConfig) { c.start = id }
}

// WithEnd designates id as the only vertex where a path may end.
// Panics on a negative id; range is checked by NewGraph.
func WithEnd(id VertexID) GraphOption {
	if id < 0 {
		panic("dag: WithEnd(id) requires id ≥ 0")
	}

	return func(c *graphConfig) { c.end = id }
}

// Graph is an immutable weighted alignment DAG. Safe for concurrent reads;
// every Solve call keeps its DP state in fresh arrays.
type Graph struct {
	layout  Layout
	edges   []Edge
	inStart []int32  // len V+1, CSR offsets
	inEdges []EdgeID // len E, grouped by target
	start   VertexID
	end     VertexID
}

// NewGraph validates layout and edges and builds the incoming index.
// edges is retained; the caller must not modify it afterwards.
//
// Steps:
//  1. Check arena sizes against int32 ids.
//  2. Check start/end designations are in range.
//  3. For every edge check id range, From < To and the step invariant.
//  4. Count incoming edges per vertex, prefix-sum, then scatter edge ids.
//
// Errors: ErrResourceExhausted, ErrMalformedInput (wrapped with the edge index).
func NewGraph(layout Layout, edges []Edge, opts ...GraphOption) (*Graph, error) {
	cfg := newGraphConfig(opts...)

	// 1) arena limits
	n := layout.Len()
	if n > maxArena-1 {
		return nil, dagErrorf(MethodNewGraph, ErrResourceExhausted, "%d vertices", n)
	}
	if len(edges) > maxArena {
		return nil, dagErrorf(MethodNewGraph, ErrResourceExhausted, "%d edges", len(edges))
	}

	// 2) constraints
	if cfg.start != NoVertex && int(cfg.start) >= n {
		return nil, dagErrorf(MethodNewGraph, ErrMalformedInput, "start vertex %d out of range [0,%d)", cfg.start, n)
	}
	if cfg.end != NoVertex && int(cfg.end) >= n {
		return nil, dagErrorf(MethodNewGraph, ErrMalformedInput, "end vertex %d out of range [0,%d)", cfg.end, n)
	}

	// 3) edge invariants, counting in-degrees on the way
	inStart := make([]int32, n+1)
	for idx := range edges {
		e := &edges[idx]
		if e.From < 0 || int(e.From) >= n || e.To < 0 || int(e.To) >= n {
			return nil, dagErrorf(MethodNewGraph, ErrMalformedInput, "edge %d: vertex out of range (%d→%d)", idx, e.From, e.To)
		}
		if e.From >= e.To {
			return nil, dagErrorf(MethodNewGraph, ErrMalformedInput, "edge %d: %d→%d breaks iteration order", idx, e.From, e.To)
		}
		if err := checkStep(layout.Coord(e.From), layout.Coord(e.To), e.Label); err != nil {
			return nil, dagErrorf(MethodNewGraph, ErrMalformedInput, "edge %d: %v", idx, err)
		}
		inStart[e.To+1]++
	}

	// 4) prefix sums and scatter
	for v := 0; v < n; v++ {
		inStart[v+1] += inStart[v]
	}
	inEdges := make([]EdgeID, len(edges))
	fill := make([]int32, n)
	copy(fill, inStart[:n])
	for idx := range edges {
		to := edges[idx].To
		inEdges[fill[to]] = EdgeID(idx)
		fill[to]++
	}

	return &Graph{
		layout:  layout,
		edges:   edges,
		inStart: inStart,
		inEdges: inEdges,
		start:   cfg.start,
		end:     cfg.end,
	}, nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.layout.Len() }

// EdgeCount returns E.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Coord returns the coordinate of vertex id.
func (g *Graph) Coord(id VertexID) Coord { return g.layout.Coord(id) }

// Edge returns edge id.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// Edges returns the edge slice in insertion order. Callers must not modify it.
func (g *Graph) Edges() []Edge { return g.edges }

// Incoming returns the ids of edges ending at v, in insertion order.
// The returned slice aliases internal storage.
func (g *Graph) Incoming(v VertexID) []EdgeID {
	return g.inEdges[g.inStart[v]:g.inStart[v+1]]
}

// Start returns the designated start vertex, if any.
func (g *Graph) Start() (VertexID, bool) { return g.start, g.start != NoVertex }

// End returns the designated end vertex, if any.
func (g *Graph) End() (VertexID, bool) { return g.end, g.end != NoVertex }
