// SPDX-License-Identifier: MIT
// Package: align3/builder
//
// api.go - public entry points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(s1, s2, s3, opts...). BuildSet adapts a slice.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs and options ⇒ identical vertex and edge order.
//   - Safety: never panic at runtime; return wrapped dag sentinels.

package builder

import (
	"reflect"

	"github.com/katalvlaran/align3/dag"
)

// Sequence is the input contract: a length and indexed symbol access.
// Symbols are taken verbatim; *sequence.Sequence satisfies it.
type Sequence interface {
	Len() int
	At(i int) byte
}

// Build expands s1, s2, s3 into the product DAG and hands it to dag.NewGraph.
//
// Steps:
//  1. Validate the sequences and resolve options.
//  2. Check closed-form counts against the ceilings (no allocation yet).
//  3. Walk vertices in id order; for each, emit one edge per non-empty subset
//     of the not-exhausted sequences, by ascending subset mask.
//  4. Attach the requested start/end constraints.
//
// Complexity:
//   - Time:   O(V + E), E ≤ 7V.
//   - Memory: O(E) for the edge arena plus O(V + E) inside dag.NewGraph.
//
// Errors:
//   - dag.ErrMalformedInput    - a nil sequence.
//   - dag.ErrResourceExhausted - counts above the ceilings or int32 ids.
func Build(s1, s2, s3 Sequence, opts ...BuilderOption) (*dag.Graph, error) {
	// 1) inputs and configuration
	if err := validateSequences(MethodBuild, s1, s2, s3); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	dims := DimsOf(s1, s2, s3)

	// 2) ceilings on the closed-form counts
	_, edgeCount, err := validateCeilings(MethodBuild, dims, cfg)
	if err != nil {
		return nil, err
	}

	// 3) expansion
	seqs := [SequenceCount]Sequence{s1, s2, s3}
	lens := [SequenceCount]int{dims.N1, dims.N2, dims.N3}
	edges := make([]dag.Edge, 0, edgeCount)

	var pos [SequenceCount]int // (i,j,k) of the current vertex
	for pos[0] = 0; pos[0] <= lens[0]; pos[0]++ {
		for pos[1] = 0; pos[1] <= lens[1]; pos[1]++ {
			for pos[2] = 0; pos[2] <= lens[2]; pos[2]++ {
				edges = appendOutEdges(edges, dims, cfg, seqs, lens, pos)
			}
		}
	}

	// 4) constraints
	var gopts []dag.GraphOption
	if cfg.startAtOrigin {
		gopts = append(gopts, dag.WithStart(dims.Index(dims.Origin())))
	}
	if cfg.endAtTerminal {
		gopts = append(gopts, dag.WithEnd(dims.Index(dims.Terminal())))
	}

	g, err := dag.NewGraph(dims, edges, gopts...)
	if err != nil {
		return nil, builderErrorf(MethodBuild, err, "assemble graph")
	}

	return g, nil
}

// appendOutEdges emits the out-edges of the vertex at pos.
func appendOutEdges(
	edges []dag.Edge,
	dims Dims,
	cfg builderConfig,
	seqs [SequenceCount]Sequence,
	lens [SequenceCount]int,
	pos [SequenceCount]int,
) []dag.Edge {
	// avail bit x is set while sequence x still has residues left
	avail := 0
	var cur [SequenceCount]byte
	for x := 0; x < SequenceCount; x++ {
		if pos[x] < lens[x] {
			avail |= 1 << x
			cur[x] = seqs[x].At(pos[x])
		}
	}
	if avail == 0 {
		return edges // terminal vertex
	}

	from := dims.Index(dag.Coord{I: pos[0], J: pos[1], K: pos[2]})
	for mask := 1; mask <= maxOutDegree; mask++ {
		if mask&^avail != 0 {
			continue // subset names an exhausted sequence
		}
		var (
			lbl dag.Label
			to  = pos
		)
		for x := 0; x < SequenceCount; x++ {
			if mask&(1<<x) != 0 {
				lbl[x] = cur[x]
				to[x]++
			} else {
				lbl[x] = gap
			}
		}
		edges = append(edges, dag.Edge{
			Label:  lbl,
			From:   from,
			To:     dims.Index(dag.Coord{I: to[0], J: to[1], K: to[2]}),
			Weight: float64(cfg.scorer.SumOfPairs(lbl[0], lbl[1], lbl[2])),
		})
	}

	return edges
}

// BuildSet is Build over a slice; exactly three non-nil sequences are required.
// Complexity: same as Build.
func BuildSet(seqs []Sequence, opts ...BuilderOption) (*dag.Graph, error) {
	if err := validateSequences(MethodBuildSet, seqs...); err != nil {
		return nil, err
	}

	return Build(seqs[0], seqs[1], seqs[2], opts...)
}

// isNil reports a nil interface or an interface holding a nil pointer.
func isNil(s Sequence) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
