package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/align3/scoring"
)

// symbols covers every residue, a lowercase residue, an unknown symbol and the gap.
var symbols = []byte("ARNDCQEGHILKMFPSTWYVaX*-")

// TestPairwiseScore_Symmetric checks PairwiseScore(a,b) == PairwiseScore(b,a) over all pairs.
func TestPairwiseScore_Symmetric(t *testing.T) {
	for _, a := range symbols {
		for _, b := range symbols {
			assert.Equal(t, scoring.PairwiseScore(a, b), scoring.PairwiseScore(b, a), "%c/%c", a, b)
		}
	}
}

// TestPairwiseScore_Gaps verifies the gap rules: gap/gap is 0, residue/gap is the gap cost.
func TestPairwiseScore_Gaps(t *testing.T) {
	assert.Equal(t, 0, scoring.PairwiseScore(scoring.Gap, scoring.Gap))
	for _, x := range symbols {
		if x == scoring.Gap {
			continue
		}
		assert.Equal(t, scoring.DefaultGapCost, scoring.PairwiseScore(x, scoring.Gap), "%c/-", x)
		assert.Equal(t, scoring.DefaultGapCost, scoring.PairwiseScore(scoring.Gap, x), "-/%c", x)
	}
}

// TestPairwiseScore_Blosum62Entries spot-checks a few known BLOSUM62 cells.
func TestPairwiseScore_Blosum62Entries(t *testing.T) {
	cases := []struct {
		a, b byte
		want int
	}{
		{'A', 'A', 4},
		{'W', 'W', 11},
		{'C', 'E', -4},
		{'I', 'V', 3},
		{'Y', 'F', 3},
		{'a', 'A', 4}, // case folded
		{'X', 'A', scoring.UnknownScore},
		{'X', 'X', scoring.UnknownScore},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, scoring.PairwiseScore(c.a, c.b), "%c/%c", c.a, c.b)
	}
}

// TestSumOfPairs_Definition checks the sum-of-pairs identity and permutation invariance
// for every symbol triple.
func TestSumOfPairs_Definition(t *testing.T) {
	for _, a := range symbols {
		for _, b := range symbols {
			for _, c := range symbols {
				want := scoring.PairwiseScore(a, b) + scoring.PairwiseScore(b, c) + scoring.PairwiseScore(a, c)
				got := scoring.SumOfPairs(a, b, c)
				require.Equal(t, want, got, "%c%c%c", a, b, c)
				require.Equal(t, got, scoring.SumOfPairs(a, c, b))
				require.Equal(t, got, scoring.SumOfPairs(b, a, c))
				require.Equal(t, got, scoring.SumOfPairs(b, c, a))
				require.Equal(t, got, scoring.SumOfPairs(c, a, b))
				require.Equal(t, got, scoring.SumOfPairs(c, b, a))
			}
		}
	}
}

// TestSumOfPairs_IdenticalColumn verifies AAA scores three times A/A.
func TestSumOfPairs_IdenticalColumn(t *testing.T) {
	assert.Equal(t, 3*scoring.PairwiseScore('A', 'A'), scoring.SumOfPairs('A', 'A', 'A'))
	assert.Equal(t, 12, scoring.SumOfPairs('A', 'A', 'A'))
	assert.Equal(t, 2*scoring.DefaultGapCost, scoring.SumOfPairs('A', '-', '-'))
	assert.Equal(t, 0, scoring.SumOfPairs('-', '-', '-'))
}

// TestModel_Options verifies a custom gap cost and matrix take effect.
func TestModel_Options(t *testing.T) {
	mx, err := scoring.NewMatrix("AC", [][]int{{1, -1}, {-1, 1}})
	require.NoError(t, err)

	m := scoring.NewModel(scoring.WithGapCost(-2), scoring.WithMatrix(mx))
	assert.Equal(t, -2, m.GapCost())
	assert.Equal(t, 1, m.Pairwise('a', 'A'))
	assert.Equal(t, -1, m.Pairwise('A', 'C'))
	assert.Equal(t, -2, m.Pairwise('A', scoring.Gap))
	assert.Equal(t, 1+(-2)+(-2), m.SumOfPairs('A', 'A', scoring.Gap))
	assert.Same(t, scoring.Blosum62, scoring.Default().Matrix())

	assert.Panics(t, func() { scoring.WithMatrix(nil) })
}

// TestNewMatrix_Invalid covers the ErrBadMatrix branches.
func TestNewMatrix_Invalid(t *testing.T) {
	cases := map[string]struct {
		alphabet string
		scores   [][]int
	}{
		"empty":      {"", nil},
		"short rows": {"AC", [][]int{{1}, {1}}},
		"row count":  {"AC", [][]int{{1, 0}}},
		"asymmetric": {"AC", [][]int{{1, 2}, {3, 1}}},
		"gap letter": {"A-", [][]int{{1, 0}, {0, 1}}},
		"duplicate":  {"Aa", [][]int{{1, 0}, {0, 1}}},
	}
	for name, c := range cases {
		_, err := scoring.NewMatrix(c.alphabet, c.scores)
		assert.ErrorIs(t, err, scoring.ErrBadMatrix, name)
	}
}
