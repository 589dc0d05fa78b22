// Package builder provides validation helpers to enforce the input and
// resource contracts of Build.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

import (
	"github.com/katalvlaran/align3/dag"
)

// validateSequences ensures all three sequences are present and non-negative in length.
//
// Parameters:
//   - method: entry point name constant, e.g. MethodBuild.
//   - seqs:   the sequences in argument order.
//
// Complexity: O(1) time and space.
func validateSequences(method string, seqs ...Sequence) error {
	if len(seqs) != SequenceCount {
		return builderErrorf(method, dag.ErrMalformedInput, "need exactly %d sequences, got %d", SequenceCount, len(seqs))
	}
	for x, s := range seqs {
		if isNil(s) {
			return builderErrorf(method, dag.ErrMalformedInput, "sequence %d is nil", x+1)
		}
		if s.Len() < 0 {
			return builderErrorf(method, dag.ErrMalformedInput, "sequence %d has negative length %d", x+1, s.Len())
		}
	}

	return nil
}

// validateCeilings checks the closed-form vertex and edge counts of d
// against the configured ceilings, before anything is allocated.
//
// Returns the counts on success.
//
// Complexity: O(1) time and space.
func validateCeilings(method string, d Dims, cfg builderConfig) (vertices, edges uint64, err error) {
	vertices, ok := d.VertexCount()
	if !ok || vertices > cfg.maxVertices {
		return 0, 0, builderErrorf(method, dag.ErrResourceExhausted,
			"%dx%dx%d box exceeds %d vertices", d.N1+1, d.N2+1, d.N3+1, cfg.maxVertices)
	}
	edges, ok = d.EdgeCount()
	if !ok || edges > cfg.maxEdges {
		return 0, 0, builderErrorf(method, dag.ErrResourceExhausted,
			"%dx%dx%d box exceeds %d edges", d.N1+1, d.N2+1, d.N3+1, cfg.maxEdges)
	}

	return vertices, edges, nil
}
