// Package sequence holds the immutable residue sequences fed to the
// three-way aligner, together with FASTA loading.
//
// A Sequence is an ordered, 0-indexed run of residue bytes. Residues are kept
// verbatim: case and alphabet are not validated here.
package sequence

// Sequence is an immutable, 0-indexed residue sequence.
type Sequence struct {
	// ID is the first word of the FASTA header (or the caller's label).
	ID string

	// Description is the remainder of the FASTA header line.
	Description string

	residues []byte
}

// New returns a Sequence over a private copy of residues.
// Complexity: O(n).
func New(id string, residues []byte) *Sequence {
	buf := make([]byte, len(residues))
	copy(buf, residues)

	return &Sequence{ID: id, residues: buf}
}

// FromString is New for string literals.
func FromString(id, residues string) *Sequence {
	return &Sequence{ID: id, residues: []byte(residues)}
}

// Len returns the number of residues.
func (s *Sequence) Len() int {
	return len(s.residues)
}

// At returns residue i. It panics when i is out of range, like a slice index.
func (s *Sequence) At(i int) byte {
	return s.residues[i]
}

// String returns the residues as text.
func (s *Sequence) String() string {
	return string(s.residues)
}

// complement maps a nucleotide to its Watson-Crick partner; other bytes map to themselves.
func complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	case 'a':
		return 't'
	case 't':
		return 'a'
	case 'g':
		return 'c'
	case 'c':
		return 'g'
	}

	return b
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Non-ACGT bytes are carried through unchanged.
// Complexity: O(n).
func (s *Sequence) ReverseComplement() *Sequence {
	n := len(s.residues)
	out := make([]byte, n)
	for i, b := range s.residues {
		out[n-1-i] = complement(b)
	}

	return &Sequence{ID: s.ID, Description: s.Description, residues: out}
}

// BaseCounts is a nucleotide histogram.
type BaseCounts struct {
	A, C, G, T int
	// Other counts every byte that is not one of ACGT (case-insensitive).
	Other int
}

// BaseCounts tallies the nucleotides of s.
// Complexity: O(n).
func (s *Sequence) BaseCounts() BaseCounts {
	var c BaseCounts
	for _, b := range s.residues {
		switch b {
		case 'A', 'a':
			c.A++
		case 'C', 'c':
			c.C++
		case 'G', 'g':
			c.G++
		case 'T', 't':
			c.T++
		default:
			c.Other++
		}
	}

	return c
}
