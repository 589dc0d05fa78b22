// SPDX-License-Identifier: MIT
// Package: align3/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"github.com/katalvlaran/align3/scoring"
)

// BuilderOption customizes Build by mutating a builderConfig instance before
// expansion begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithScorer sets the column weight function.
// Panics on nil to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithScorer(s scoring.Scorer) BuilderOption {
	if s == nil {
		panic("builder: WithScorer(nil)")
	}
	return func(c *builderConfig) {
		c.scorer = s
	}
}

// WithStartAtOrigin designates (0,0,0) as the start constraint, so every
// solution aligns the sequences from their first residues (global start).
// Complexity: O(1) time, O(1) space.
func WithStartAtOrigin() BuilderOption {
	return func(c *builderConfig) {
		c.startAtOrigin = true
	}
}

// WithEndAtTerminal designates (n1,n2,n3) as the end constraint, so every
// solution consumes all residues (global end).
// Complexity: O(1) time, O(1) space.
func WithEndAtTerminal() BuilderOption {
	return func(c *builderConfig) {
		c.endAtTerminal = true
	}
}

// WithGlobal is WithStartAtOrigin plus WithEndAtTerminal.
func WithGlobal() BuilderOption {
	return func(c *builderConfig) {
		c.startAtOrigin = true
		c.endAtTerminal = true
	}
}

// WithMaxVertices sets the vertex ceiling (>0).
// Panics if n == 0.
// Complexity: O(1) time, O(1) space.
func WithMaxVertices(n uint64) BuilderOption {
	if n == 0 {
		panic("builder: WithMaxVertices(0)")
	}
	return func(c *builderConfig) {
		c.maxVertices = n
	}
}

// WithMaxEdges sets the edge ceiling (>0).
// Panics if n == 0.
// Complexity: O(1) time, O(1) space.
func WithMaxEdges(n uint64) BuilderOption {
	if n == 0 {
		panic("builder: WithMaxEdges(0)")
	}
	return func(c *builderConfig) {
		c.maxEdges = n
	}
}
