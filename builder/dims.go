// SPDX-License-Identifier: MIT
// Package: align3/builder
//
// dims.go - geometry of the product box.
//
// Linearization (i slowest, k fastest):
//
//	id(i,j,k) = (i*(N2+1) + j)*(N3+1) + k
//
// Lexicographic (i,j,k) order equals ascending id, and every edge strictly
// increases i+j+k, so ascending id is a topological order.

package builder

import (
	"math/bits"

	"github.com/katalvlaran/align3/dag"
)

// Dims is the sequence lengths (n1,n2,n3). It implements dag.Layout over
// the (n1+1)×(n2+1)×(n3+1) vertex box.
type Dims struct {
	N1, N2, N3 int
}

// DimsOf returns the Dims of three sequences.
func DimsOf(s1, s2, s3 Sequence) Dims {
	return Dims{N1: s1.Len(), N2: s2.Len(), N3: s3.Len()}
}

// Len implements dag.Layout. Only meaningful once VertexCount reported no overflow.
func (d Dims) Len() int {
	return (d.N1 + 1) * (d.N2 + 1) * (d.N3 + 1)
}

// Coord implements dag.Layout.
// Complexity: O(1).
func (d Dims) Coord(id dag.VertexID) dag.Coord {
	v := int(id)
	k := v % (d.N3 + 1)
	v /= d.N3 + 1
	j := v % (d.N2 + 1)
	i := v / (d.N2 + 1)

	return dag.Coord{I: i, J: j, K: k}
}

// Index returns the VertexID of c. c must lie inside the box.
// Complexity: O(1).
func (d Dims) Index(c dag.Coord) dag.VertexID {
	return dag.VertexID((c.I*(d.N2+1)+c.J)*(d.N3+1) + c.K)
}

// Contains reports whether c lies inside the box.
func (d Dims) Contains(c dag.Coord) bool {
	return c.I >= 0 && c.I <= d.N1 && c.J >= 0 && c.J <= d.N2 && c.K >= 0 && c.K <= d.N3
}

// Origin returns (0,0,0).
func (d Dims) Origin() dag.Coord { return dag.Coord{} }

// Terminal returns (n1,n2,n3).
func (d Dims) Terminal() dag.Coord { return dag.Coord{I: d.N1, J: d.N2, K: d.N3} }

// VertexCount returns (n1+1)(n2+1)(n3+1); ok is false on uint64 overflow.
// Complexity: O(1).
func (d Dims) VertexCount() (n uint64, ok bool) {
	return mulAll(uint64(d.N1)+1, uint64(d.N2)+1, uint64(d.N3)+1)
}

// EdgeCount returns the exact number of edges Build emits; ok is false on
// uint64 overflow.
//
// A vertex whose not-exhausted dimension set is A has 2^|A|−1 out-edges, and
// there are ∏_{d∈A} n_d such vertices, so
//
//	E = Σ_{A ⊆ {1,2,3}} (∏_{d∈A} n_d) · (2^|A| − 1).
//
// Complexity: O(1) (eight subsets).
func (d Dims) EdgeCount() (n uint64, ok bool) {
	lens := [SequenceCount]uint64{uint64(d.N1), uint64(d.N2), uint64(d.N3)}
	var total uint64
	for mask := 1; mask <= maxOutDegree; mask++ {
		term := uint64(1<<bits.OnesCount(uint(mask)) - 1)
		for x := 0; x < SequenceCount; x++ {
			if mask&(1<<x) == 0 {
				continue
			}
			if term, ok = mul(term, lens[x]); !ok {
				return 0, false
			}
		}
		var carry uint64
		if total, carry = bits.Add64(total, term, 0); carry != 0 {
			return 0, false
		}
	}

	return total, true
}

// mul multiplies with overflow detection.
func mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

func mulAll(xs ...uint64) (uint64, bool) {
	acc := uint64(1)
	for _, x := range xs {
		var ok bool
		if acc, ok = mul(acc, x); !ok {
			return 0, false
		}
	}

	return acc, true
}
