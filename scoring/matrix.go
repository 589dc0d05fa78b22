package scoring

import "strings"

// UnknownScore is the substitution score of a residue that is not part of the
// matrix alphabet (BLOSUM62 scores its X column the same way).
const UnknownScore = -1

// blosum62Alphabet orders the rows and columns of blosum62Scores.
const blosum62Alphabet = "ARNDCQEGHILKMFPSTWYV"

// blosum62Scores is the BLOSUM62 substitution matrix.
var blosum62Scores = [][]int{
	{4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0},
	{-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3},
	{-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3},
	{-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3},
	{0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1},
	{-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2},
	{-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2},
	{0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3},
	{-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3},
	{-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3},
	{-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1},
	{-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2},
	{-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1},
	{-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1},
	{-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2},
	{1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2},
	{0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0},
	{-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3},
	{-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1},
	{0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4},
}

// Blosum62 is the read-only BLOSUM62 matrix used by the default model.
var Blosum62 = MustMatrix(blosum62Alphabet, blosum62Scores)

// Matrix is a symmetric residue substitution table.
//
// Residues are addressed through a 256-entry byte index, so a lookup is two
// array reads. Index entries of -1 mark symbols outside the alphabet.
type Matrix struct {
	alphabet string
	index    [256]int16
	scores   []int // row-major len(alphabet)×len(alphabet)
}

// NewMatrix builds a Matrix from an alphabet and a square score table whose
// rows and columns follow the alphabet order. Letters are registered in both
// ASCII cases.
//
// Errors:
//   - ErrBadMatrix if the table is not square over the alphabet, the
//     alphabet repeats a letter or contains Gap, or the table is asymmetric.
//
// Complexity: O(|alphabet|²).
func NewMatrix(alphabet string, scores [][]int) (*Matrix, error) {
	n := len(alphabet)
	if n == 0 || len(scores) != n {
		return nil, ErrBadMatrix
	}
	m := &Matrix{alphabet: alphabet, scores: make([]int, n*n)}
	for i := range m.index {
		m.index[i] = -1
	}
	for i := 0; i < n; i++ {
		r := alphabet[i]
		if r == Gap || m.index[r] >= 0 {
			return nil, ErrBadMatrix
		}
		m.index[r] = int16(i)
		m.index[strings.ToLower(string(r))[0]] = int16(i)
		m.index[strings.ToUpper(string(r))[0]] = int16(i)
	}
	for i, row := range scores {
		if len(row) != n {
			return nil, ErrBadMatrix
		}
		copy(m.scores[i*n:], row)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.scores[i*n+j] != m.scores[j*n+i] {
				return nil, ErrBadMatrix
			}
		}
	}

	return m, nil
}

// MustMatrix is NewMatrix for package-level tables; it panics on a bad table.
func MustMatrix(alphabet string, scores [][]int) *Matrix {
	m, err := NewMatrix(alphabet, scores)
	if err != nil {
		panic("scoring: " + err.Error())
	}

	return m
}

// Alphabet returns the residues of m in row order.
func (m *Matrix) Alphabet() string {
	return m.alphabet
}

// Contains reports whether r is a residue of m (in either case).
func (m *Matrix) Contains(r byte) bool {
	return m.index[r] >= 0
}

// Score returns the substitution score of residues a and b. Any symbol
// outside the alphabet scores UnknownScore.
// Complexity: O(1).
func (m *Matrix) Score(a, b byte) int {
	ia, ib := m.index[a], m.index[b]
	if ia < 0 || ib < 0 {
		return UnknownScore
	}

	return m.scores[int(ia)*len(m.alphabet)+int(ib)]
}
