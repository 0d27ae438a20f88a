package popgen

import "fmt"

// codeBases orders the nucleotides the way NCBI translation tables do.
const codeBases = "TCAG"

// standardAAs is the NCBI standard code (transl_table=1): amino acids for
// the 64 codons in TCAG order, '*' marking stops.
const standardAAs = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

// Stop is the amino-acid symbol for a stop codon.
const Stop = '*'

// GeneticCode maps codons to amino acids.
type GeneticCode struct {
	aa [64]byte
}

// NewGeneticCode builds a genetic code from a 64-character amino-acid
// string in NCBI TCAG codon order ('*' for stops), so any of the NCBI
// translation tables can be plugged in.
func NewGeneticCode(aas string) (*GeneticCode, error) {
	if len(aas) != 64 {
		return nil, fmt.Errorf("%w: genetic code needs 64 amino acids, got %d", ErrBadCodon, len(aas))
	}
	gc := &GeneticCode{}
	copy(gc.aa[:], aas)
	return gc, nil
}

// StandardCode returns the standard genetic code.
func StandardCode() *GeneticCode {
	gc, _ := NewGeneticCode(standardAAs)
	return gc
}

func baseIndex(b byte) int {
	switch b {
	case 'T', 'U':
		return 0
	case 'C':
		return 1
	case 'A':
		return 2
	case 'G':
		return 3
	}
	return -1
}

// codonIndex returns the TCAG-order index of a 3-nucleotide codon, or an
// error when the codon holds a gap or ambiguous symbol.
func codonIndex(codon []byte) (int, error) {
	idx := 0
	for _, b := range codon {
		i := baseIndex(b)
		if i < 0 {
			return 0, fmt.Errorf("%w: %q", ErrBadCodon, codon)
		}
		idx = idx*4 + i
	}
	return idx, nil
}

// Translate returns the amino acid encoded by a codon (Stop for stop
// codons).
func (gc *GeneticCode) Translate(codon []byte) (byte, error) {
	i, err := codonIndex(codon)
	if err != nil {
		return 0, err
	}
	return gc.aa[i], nil
}

// IsStop reports whether the codon is a stop codon. Untranslatable codons
// are not stops.
func (gc *GeneticCode) IsStop(codon []byte) bool {
	i, err := codonIndex(codon)
	if err != nil {
		return false
	}
	return gc.aa[i] == Stop
}
