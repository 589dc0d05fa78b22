// SPDX-License-Identifier: MIT
// Package: align3/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • scorer      = scoring.Default()   (BLOSUM62, gap cost -6)
//   • startAtOrigin = false             (path may start anywhere)
//   • endAtTerminal = false             (path may end anywhere)
//   • maxVertices = DefaultMaxVertices
//   • maxEdges    = DefaultMaxEdges

package builder

import (
	"github.com/katalvlaran/align3/scoring"
)

// builderConfig aggregates all knobs used by Build.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// Column weight: sum-of-pairs over the three symbols.
	scorer scoring.Scorer

	// Constraint flags, mapped to dag.WithStart / dag.WithEnd.
	startAtOrigin bool // designate (0,0,0)
	endAtTerminal bool // designate (n1,n2,n3)

	// Resource ceilings on the closed-form counts.
	maxVertices uint64
	maxEdges    uint64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		scorer:        scoring.Default(),  // BLOSUM62 with the default gap cost
		startAtOrigin: false,              // unconstrained start
		endAtTerminal: false,              // unconstrained end
		maxVertices:   DefaultMaxVertices, // 2,000,000
		maxEdges:      DefaultMaxEdges,    // 14,000,000
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
