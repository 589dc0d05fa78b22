// SPDX-License-Identifier: MIT
// Package: align3/dag
//
// wavefront.go - level-synchronous parallel relaxation.
//
// A vertex's level is one more than the highest level among its in-range
// predecessors (0 when it has none). All predecessors of a level-L vertex sit
// on levels < L, so a level can be relaxed concurrently once the previous
// levels are final. Per-vertex arithmetic is the same as in the sequential
// pass, so weights and back-pointers come out bit-identical.

package dag

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice of a level handed to one goroutine.
const minChunk = 512

// levelize groups ids first..last by dependency level, ascending id within a
// level. levels[L] is a sub-slice of one shared backing array.
func (g *Graph) levelize(first, last VertexID) [][]VertexID {
	span := int(last-first) + 1
	level := make([]int32, span)
	maxLevel := int32(0)
	for v := first; v <= last; v++ {
		lv := int32(0)
		for _, eid := range g.Incoming(v) {
			from := g.edges[eid].From
			if from < first {
				continue
			}
			if l := level[from-first] + 1; l > lv {
				lv = l
			}
		}
		level[v-first] = lv
		if lv > maxLevel {
			maxLevel = lv
		}
	}

	// counting sort by level keeps id order stable inside each level
	offsets := make([]int, maxLevel+2)
	for _, lv := range level {
		offsets[lv+1]++
	}
	for l := 1; l < len(offsets); l++ {
		offsets[l] += offsets[l-1]
	}
	order := make([]VertexID, span)
	fill := make([]int, maxLevel+1)
	copy(fill, offsets[:maxLevel+1])
	for i, lv := range level {
		order[fill[lv]] = first + VertexID(i)
		fill[lv]++
	}

	levels := make([][]VertexID, maxLevel+1)
	for l := range levels {
		levels[l] = order[offsets[l]:offsets[l+1]]
	}

	return levels
}

func (g *Graph) solveWavefront(cfg solveConfig) (*dpState, VertexID, error) {
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
	if first > last {
		return st, g.pickEnd(st, NoVertex), nil
	}

	for _, lvl := range g.levelize(first, last) {
		if err := cfg.ctx.Err(); err != nil {
			return nil, NoVertex, err
		}
		if len(lvl) < 2*minChunk {
			for _, v := range lvl {
				g.relax(st, v)
			}
			continue
		}

		eg, ctx := errgroup.WithContext(cfg.ctx)
		eg.SetLimit(cfg.workers)
		chunk := (len(lvl) + cfg.workers - 1) / cfg.workers
		if chunk < minChunk {
			chunk = minChunk
		}
		for lo := 0; lo < len(lvl); lo += chunk {
			part := lvl[lo:min(lo+chunk, len(lvl))]
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				for _, v := range part {
					g.relax(st, v)
				}

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, NoVertex, err
		}
	}

	// the running best of the sequential pass, recomputed in id order
	best := NoVertex
	if g.end == NoVertex {
		for v := first; v <= last; v++ {
			w := st.weight[v]
			if !math.IsInf(w, -1) && (best == NoVertex || w > st.weight[best]) {
				best = v
			}
		}
	}

	return st, g.pickEnd(st, best), nil
}
