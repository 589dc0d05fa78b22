// Package dag solves maximum-weight paths over the three-way alignment DAG.
//
// What:
//
//   - Graph: an immutable arena of vertices and edges. Vertices are dense
//     VertexID values in topological iteration order, each mapped to an
//     (i,j,k) Coord by a Layout. Edges carry a three-symbol Label and a
//     weight; incoming adjacency is stored as a compact CSR index.
//   - Solve: one forward dynamic-programming pass in iteration order with
//     optional start/end vertex constraints, followed by back-pointer
//     reconstruction of the winning path.
//   - Wavefront solving (WithWorkers): vertices are grouped into dependency
//     levels and each level is relaxed concurrently behind a barrier. The
//     result is identical to the sequential pass.
//   - Histogram: per-edge-label weight and frequency, diagnostic only.
//
// Recurrence (per vertex v, in iteration order):
//
//	w(v) = max( 0                         if v may start a path,
//	            w(u) + weight(e)          for every edge e = u→v with u reached )
//
// A vertex may start a path when no start constraint is set, or when it is
// the designated start. Vertices that precede the designated start are never
// reached. With an end constraint the answer is the end vertex, or no path
// when the end stays unreached; otherwise the answer is the first vertex (in
// iteration order) holding the maximum weight.
//
// Invariants checked by NewGraph:
//
//   - every edge goes from an earlier to a later VertexID (topological order);
//   - every edge advances each coordinate by 0 or 1 and at least one of them;
//   - a label symbol is the gap exactly where its coordinate does not advance.
//
// Complexity:
//
//   - NewGraph: O(V + E) time, O(V + E) memory for the CSR index.
//   - Solve:    O(V + E) time, O(V) memory (one float64 and one int32 per vertex).
//
// Errors:
//
//   - ErrMalformedInput    - ids out of range, invariant violations, bad constraints.
//   - ErrResourceExhausted - vertex or edge counts beyond the int32 arena.
//   - A missing path is not an error: Result.Found is false.
package dag
