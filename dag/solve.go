// SPDX-License-Identifier: MIT
// Package: align3/dag
//
// solve.go - forward DP in iteration order and path reconstruction.

package dag

import (
	"context"
	"math"
)

// unreached is the weight of a vertex no admissible path reaches.
var unreached = math.Inf(-1)

// cancelStride is how many vertices are relaxed between context checks.
const cancelStride = 1 << 14

// SolveOption configures Solve.
type SolveOption func(*solveConfig)

type solveConfig struct {
	ctx     context.Context
	workers int
}

func newSolveConfig(opts ...SolveOption) solveConfig {
	cfg := solveConfig{ctx: context.Background(), workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) SolveOption {
	return func(c *solveConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithWorkers enables the wavefront solver with n goroutines per level.
// n == 1 keeps the sequential pass. Panics if n < 1.
func WithWorkers(n int) SolveOption {
	if n < 1 {
		panic("dag: WithWorkers(n) requires n ≥ 1")
	}

	return func(c *solveConfig) { c.workers = n }
}

// Result is the outcome of Solve.
type Result struct {
	// Found is false when no admissible path exists (NoPathFound).
	Found bool

	// Score is the path weight; 0 when Found is false.
	Score float64

	// StartID and EndID are NoVertex when Found is false.
	StartID VertexID
	EndID   VertexID

	// Start and End are the coordinates of StartID and EndID.
	Start Coord
	End   Coord

	// Path is the ordered edge labels from Start to End. Empty for a
	// single-vertex path.
	Path []Label
}

// Rows renders the path as the three aligned rows, one per sequence.
func (r *Result) Rows() [3]string {
	var rows [3][]byte
	for x := range rows {
		rows[x] = make([]byte, len(r.Path))
	}
	for col, l := range r.Path {
		for x := range rows {
			rows[x][col] = l[x]
		}
	}

	return [3]string{string(rows[0]), string(rows[1]), string(rows[2])}
}

// dpState holds one solve's per-vertex weights and back-pointers.
type dpState struct {
	weight []float64
	back   []EdgeID
}

func newDPState(n int) *dpState {
	st := &dpState{weight: make([]float64, n), back: make([]EdgeID, n)}
	for v := range st.weight {
		st.weight[v] = unreached
		st.back[v] = noEdge
	}

	return st
}

// Solve finds the maximum-weight admissible path.
//
// Steps:
//  1. Walk vertices in id order, skipping those before the designated start.
//  2. Seed the vertex with 0 when it may start a path.
//  3. Relax every incoming edge whose source is reached; a strictly greater
//     candidate replaces the weight and records the back-pointer.
//  4. Select the end vertex: the designated end, or the first maximum.
//  5. Follow back-pointers and reverse the collected labels.
//
// Returns Result{Found:false} for an empty graph or an unreachable end.
// Returns ctx.Err() when cancelled.
//
// Complexity: O(V + E) time, O(V) extra memory.
func (g *Graph) Solve(opts ...SolveOption) (*Result, error) {
	cfg := newSolveConfig(opts...)
	n := g.VertexCount()
	if n == 0 {
		return &Result{StartID: NoVertex, EndID: NoVertex}, nil
	}

	var (
		st   *dpState
		best VertexID
		err  error
	)
	if cfg.workers > 1 {
		st, best, err = g.solveWavefront(cfg)
	} else {
		st, best, err = g.solveSequential(cfg)
	}
	if err != nil {
		return nil, err
	}

	return g.reconstruct(st, best), nil
}

// relax computes the final weight of v from its already final predecessors.
// It writes only st.weight[v] and st.back[v].
func (g *Graph) relax(st *dpState, v VertexID) {
	if g.start == NoVertex || v == g.start {
		st.weight[v] = 0
	}
	for _, eid := range g.Incoming(v) {
		e := &g.edges[eid]
		from := st.weight[e.From]
		if math.IsInf(from, -1) {
			continue
		}
		if cand := from + e.Weight; cand > st.weight[v] {
			st.weight[v] = cand
			st.back[v] = eid
		}
	}
}

func (g *Graph) solveSequential(cfg solveConfig) (*dpState, VertexID, error) {
	n := g.VertexCount()
	st := newDPState(n)

	first := VertexID(0)
	if g.start != NoVertex {
		first = g.start
	}
	last := VertexID(n - 1)
	if g.end != NoVertex {
		last = g.end
	}

	best := NoVertex
	for v := first; v <= last; v++ {
		if int(v-first)%cancelStride == 0 {
			select {
			case <-cfg.ctx.Done():
				return nil, NoVertex, cfg.ctx.Err()
			default:
			}
		}
		g.relax(st, v)
		if g.end == NoVertex && !math.IsInf(st.weight[v], -1) &&
			(best == NoVertex || st.weight[v] > st.weight[best]) {
			best = v
		}
	}

	return st, g.pickEnd(st, best), nil
}

// pickEnd applies the end constraint to the running best.
func (g *Graph) pickEnd(st *dpState, best VertexID) VertexID {
	if g.end == NoVertex {
		return best
	}
	if math.IsInf(st.weight[g.end], -1) {
		return NoVertex
	}

	return g.end
}

// reconstruct walks back-pointers from end and returns the labelled path.
func (g *Graph) reconstruct(st *dpState, end VertexID) *Result {
	if end == NoVertex {
		return &Result{StartID: NoVertex, EndID: NoVertex}
	}

	var path []Label
	v := end
	for st.back[v] != noEdge {
		e := &g.edges[st.back[v]]
		path = append(path, e.Label)
		v = e.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path == nil {
		path = []Label{}
	}

	return &Result{
		Found:   true,
		Score:   st.weight[end],
		StartID: v,
		EndID:   end,
		Start:   g.Coord(v),
		End:     g.Coord(end),
		Path:    path,
	}
}
