package sequence

import (
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"
)

// ErrEmptyFASTA indicates a FASTA stream without any record.
var ErrEmptyFASTA = errors.New("sequence: no FASTA records")

// ReadFASTA reads every record from r. Letters are kept as written.
//
// Errors:
//   - ErrEmptyFASTA when r holds no record.
//   - the underlying reader error, wrapped with context.
func ReadFASTA(r io.Reader) ([]*Sequence, error) {
	// The protein alphabet only serves as a template; the reader does not validate letters.
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var out []*Sequence
	for sc.Next() {
		rec, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, errors.Errorf("sequence: unexpected FASTA record type %T", sc.Seq())
		}
		residues := make([]byte, len(rec.Seq))
		for i, l := range rec.Seq {
			residues[i] = byte(l)
		}
		out = append(out, &Sequence{ID: rec.ID, Description: rec.Desc, residues: residues})
	}
	if err := sc.Error(); err != nil {
		return nil, errors.Wrap(err, "sequence: read FASTA")
	}
	if len(out) == 0 {
		return nil, ErrEmptyFASTA
	}

	return out, nil
}

// LoadFASTA opens path and returns its first record.
func LoadFASTA(path string) (*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "sequence: open %s", path)
	}
	defer f.Close()

	recs, err := ReadFASTA(f)
	if err != nil {
		return nil, errors.Wrapf(err, "sequence: load %s", path)
	}

	return recs[0], nil
}
