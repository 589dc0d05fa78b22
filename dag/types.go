// SPDX-License-Identifier: MIT
// Package: align3/dag
//
// types.go - vertex, edge and label types plus sentinel errors.

package dag

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/align3/scoring"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrMalformedInput indicates input that violates the graph contract:
	// a wrong number of sequences, an undeclared or out-of-range vertex,
	// an edge that breaks the step or ordering invariants, or a duplicated
	// start/end designation.
	ErrMalformedInput = errors.New("dag: malformed input")

	// ErrResourceExhausted indicates that a vertex or edge count exceeds the
	// configured ceiling. It is reported before the large allocations happen.
	ErrResourceExhausted = errors.New("dag: resource ceiling exceeded")
)

// Method names used as error prefixes.
const (
	MethodNewGraph = "NewGraph"
	MethodSolve    = "Solve"
)

// dagErrorf prefixes a sentinel with the method name and a formatted detail,
// keeping the sentinel reachable through errors.Is.
func dagErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// Coord is the progress triple (i,j,k) into the three sequences.
type Coord struct {
	I, J, K int
}

// Sum returns i+j+k. Every edge strictly increases it.
func (c Coord) Sum() int {
	return c.I + c.J + c.K
}

// String renders the coordinate as "i,j,k".
func (c Coord) String() string {
	return strconv.Itoa(c.I) + "," + strconv.Itoa(c.J) + "," + strconv.Itoa(c.K)
}

// Label is the alignment column an edge represents: one symbol (or the gap)
// per sequence.
type Label [3]byte

// ParseLabel converts a three-byte string into a Label.
func ParseLabel(s string) (Label, error) {
	var l Label
	if len(s) != len(l) {
		return l, fmt.Errorf("label %q: want 3 symbols: %w", s, ErrMalformedInput)
	}
	copy(l[:], s)

	return l, nil
}

// String returns the three symbols as text.
func (l Label) String() string {
	return string(l[:])
}

// VertexID is a dense vertex index; ids follow the topological iteration order.
type VertexID int32

// EdgeID is a dense edge index into Graph.Edges.
type EdgeID int32

// NoVertex marks an absent vertex (no constraint, no path).
const NoVertex VertexID = -1

// noEdge marks a vertex without a recorded back-pointer.
const noEdge EdgeID = -1

// maxArena is the largest vertex or edge count addressable by int32 ids.
const maxArena = math.MaxInt32

// Edge is one alignment column step From→To.
type Edge struct {
	Label  Label
	From   VertexID
	To     VertexID
	Weight float64
}

// Layout maps dense vertex ids to coordinates.
//
// Implementations must be pure: Coord(id) always returns the same value.
// The builder supplies a closed-form layout over the product box; parsers
// supply a CoordList.
type Layout interface {
	// Len returns the number of vertices.
	Len() int
	// Coord returns the coordinate of vertex id, 0 ≤ id < Len().
	Coord(id VertexID) Coord
}

// CoordList is a Layout backed by an explicit slice.
type CoordList []Coord

// Len implements Layout.
func (l CoordList) Len() int { return len(l) }

// Coord implements Layout.
func (l CoordList) Coord(id VertexID) Coord { return l[id] }

// checkStep verifies the edge step invariant between from and to under label l.
func checkStep(from, to Coord, l Label) error {
	deltas := [3]int{to.I - from.I, to.J - from.J, to.K - from.K}
	moved := 0
	for x, d := range deltas {
		switch d {
		case 0:
			if l[x] != scoring.Gap {
				return fmt.Errorf("symbol %d of %q is not a gap but coordinate is unchanged", x, l.String())
			}
		case 1:
			if l[x] == scoring.Gap {
				return fmt.Errorf("symbol %d of %q is a gap but coordinate advances", x, l.String())
			}
			moved++
		default:
			return fmt.Errorf("coordinate %d moves by %d", x, d)
		}
	}
	if moved == 0 {
		return fmt.Errorf("zero-length edge %s→%s", from, to)
	}

	return nil
}
