// Package fasta reads FASTA-formatted DNA sequences: open the file
// (transparently gunzipping a .gz suffix), wrap it in
// github.com/TuftsBCB/io/fasta.NewReader, and read until io.EOF.
//
// Unlike a protein-oriented reader that tolerates any amino-acid
// residue and maps ignored ones to 'X', this reader is DNA-only: every
// residue must be in {A, C, G, T} (case-insensitive), the alphabet the
// aligner core requires. A non-ACGT byte is an input error.
package fasta

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	tuftsfasta "github.com/TuftsBCB/io/fasta"

	"github.com/ndaniels/astarpa"
)

// Sequence is one FASTA record, normalized to uppercase ACGT.
type Sequence struct {
	Name     string
	Residues []byte
}

// ReadFile reads every record in fileName, transparently gunzipping a
// .gz suffix.
func ReadFile(fileName string) ([]Sequence, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(fileName, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return Read(r)
}

// Read reads every record from r until io.EOF.
func Read(r io.Reader) ([]Sequence, error) {
	reader := tuftsfasta.NewReader(r)
	var out []Sequence
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		residues, err := normalize(rec.Residues)
		if err != nil {
			return nil, err
		}
		out = append(out, Sequence{Name: rec.Name, Residues: residues})
	}
}

// normalize upper-cases every residue and rejects non-ACGT bytes.
func normalize(residues []byte) ([]byte, error) {
	out := make([]byte, len(residues))
	for i, c := range residues {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != 'A' && c != 'C' && c != 'G' && c != 'T' {
			return nil, astarpa.BadSymbolError(c, i)
		}
		out[i] = c
	}
	return out, nil
}
