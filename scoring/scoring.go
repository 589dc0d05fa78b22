package scoring

import "errors"

// Gap is the alignment gap symbol. It is never part of a matrix alphabet.
const Gap byte = '-'

// DefaultGapCost is the score of aligning a residue against a gap.
const DefaultGapCost = -6

// ErrBadMatrix indicates a substitution table that is not a symmetric square
// table over a gap-free alphabet.
var ErrBadMatrix = errors.New("scoring: invalid substitution matrix")

// Scorer weighs a three-symbol alignment column.
type Scorer interface {
	SumOfPairs(a, b, c byte) int
}

// Model combines a substitution Matrix with a linear gap cost.
// The zero value is not usable; construct with NewModel.
type Model struct {
	matrix  *Matrix
	gapCost int
}

// Option customizes a Model.
type Option func(*Model)

// WithGapCost sets the residue-versus-gap score. Any integer is accepted.
func WithGapCost(cost int) Option {
	return func(m *Model) { m.gapCost = cost }
}

// WithMatrix replaces the substitution table. Panics on nil.
func WithMatrix(mx *Matrix) Option {
	if mx == nil {
		panic("scoring: WithMatrix(nil)")
	}
	return func(m *Model) { m.matrix = mx }
}

// NewModel returns a BLOSUM62 model with DefaultGapCost, modified by opts.
func NewModel(opts ...Option) *Model {
	m := &Model{matrix: Blosum62, gapCost: DefaultGapCost}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// defaultModel backs the package-level helpers.
var defaultModel = NewModel()

// Default returns the read-only BLOSUM62 model with DefaultGapCost.
func Default() *Model {
	return defaultModel
}

// GapCost returns the residue-versus-gap score of m.
func (m *Model) GapCost() int {
	return m.gapCost
}

// Matrix returns the substitution table of m.
func (m *Model) Matrix() *Matrix {
	return m.matrix
}

// Pairwise scores one pair of column symbols:
//   - both residues: matrix lookup
//   - exactly one Gap: the gap cost
//   - both Gap: 0
//
// Symmetric: Pairwise(a,b) == Pairwise(b,a).
func (m *Model) Pairwise(a, b byte) int {
	switch {
	case a != Gap && b != Gap:
		return m.matrix.Score(a, b)
	case a != Gap || b != Gap:
		return m.gapCost
	default:
		return 0
	}
}

// SumOfPairs returns Pairwise(a,b) + Pairwise(b,c) + Pairwise(a,c).
// The result is invariant under any permutation of (a,b,c).
func (m *Model) SumOfPairs(a, b, c byte) int {
	return m.Pairwise(a, b) + m.Pairwise(b, c) + m.Pairwise(a, c)
}

// PairwiseScore scores a pair of column symbols with the default model.
func PairwiseScore(a, b byte) int {
	return defaultModel.Pairwise(a, b)
}

// SumOfPairs scores a three-symbol column with the default model.
func SumOfPairs(a, b, c byte) int {
	return defaultModel.SumOfPairs(a, b, c)
}
