// Package builder expands three residue sequences into the full product DAG
// consumed by package dag.
//
// The package offers the following key components:
//
//   - Entry points:
//     – Build:     three sequences → *dag.Graph.
//     – BuildSet:  the same from a slice; anything but exactly three
//     non-nil sequences is malformed input.
//   - Geometry:
//     – Dims:      the (n1+1)×(n2+1)×(n3+1) box, linearized index ↔ (i,j,k),
//     exact vertex and edge counts with overflow detection.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  scorer, constraint flags, resource ceilings.
//   - Shared constants:
//     – DefaultMaxVertices, DefaultMaxEdges.
//     – MethodBuild, MethodBuildSet tokens for builderErrorf context.
//
// Edge rule, per vertex (i,j,k):
//
//   - avail is the set of sequences not yet exhausted (i<n1, j<n2, k<n3);
//   - every non-empty subset T of avail yields one edge: sequences in T
//     contribute their current residue and advance, the others contribute the
//     gap and stay;
//   - the weight is the scorer's sum-of-pairs over the column.
//
// Vertices are emitted with i varying slowest, then j, then k; the linearized
// index (i*(n2+1)+j)*(n3+1)+k is the dag.VertexID. Edges of one vertex are
// emitted by ascending subset mask (bit 0 = first sequence).
//
// Guarantees:
//
//   - Vertex count is exactly (n1+1)(n2+1)(n3+1).
//   - Ceilings are checked on the closed-form counts before any allocation.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) wrapping dag.ErrMalformedInput
//     or dag.ErrResourceExhausted.
//
// Complexity: O(V + E) time and memory, E ≤ 7V.
package builder
