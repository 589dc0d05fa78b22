// Package builder defines shared constants used by the product DAG builder,
// ensuring consistent defaults and validation across entry points.
package builder

import (
	"github.com/katalvlaran/align3/scoring"
)

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the entry point name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build entry point.
	MethodBuild = "Build"
	// MethodBuildSet is the canonical name for the BuildSet entry point.
	MethodBuildSet = "BuildSet"
)

//-----------------------------------------------------------------------------
// Shape Constants
//-----------------------------------------------------------------------------

const (
	// SequenceCount is the number of sequences a product DAG aligns.
	SequenceCount = 3

	// maxOutDegree is the number of non-empty subsets of three sequences.
	maxOutDegree = 1<<SequenceCount - 1

	// gap fills the column slot of a sequence that does not advance.
	gap = scoring.Gap
)

//-----------------------------------------------------------------------------
// Resource Ceilings
//-----------------------------------------------------------------------------

const (
	// DefaultMaxVertices bounds (n1+1)(n2+1)(n3+1); about 125³.
	DefaultMaxVertices = 2_000_000

	// DefaultMaxEdges bounds the closed-form edge count; 7 × DefaultMaxVertices.
	DefaultMaxEdges = 14_000_000
)
