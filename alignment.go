package popgen

import (
	"bytes"
	"fmt"
)

// GapPolicy controls how gap symbols enter the multiset-based site counts.
type GapPolicy int

const (
	// ExcludeGaps removes gap symbols from a site before counting states.
	// This is the default for every statistic.
	ExcludeGaps GapPolicy = iota
	// CountGapsAsState keeps gaps in the multiset, so a gap is one more
	// allelic state. This inflates apparent polymorphism; use only when
	// indels are deliberately modelled as mutations.
	CountGapsAsState
)

// IsGap reports whether b is a gap symbol ('-' or '*').
func IsGap(b byte) bool {
	return b == '-' || b == '*'
}

// Sequence is one aligned sequence with its group tag.
type Sequence struct {
	Name     string
	Seq      []byte
	Outgroup bool
}

// Alignment is an ordered set of equal-length aligned sequences, each
// tagged as ingroup or outgroup. Diversity and LD statistics use the
// ingroup only; the outgroup roots the Fu and Li tests.
type Alignment struct {
	ingroup  []Sequence
	outgroup []Sequence
	length   int
}

// New builds an alignment from tagged sequences. Sequence data is copied,
// upper-cased and DNA-normalized (U becomes T), so the caller keeps
// ownership of its slices. All sequences must have the same length.
func New(seqs []Sequence) (*Alignment, error) {
	a := &Alignment{length: -1}
	for _, s := range seqs {
		if a.length < 0 {
			a.length = len(s.Seq)
		} else if len(s.Seq) != a.length {
			return nil, fmt.Errorf("%w: %q has %d sites, want %d", ErrSeqLength, s.Name, len(s.Seq), a.length)
		}
		up := bytes.ToUpper(s.Seq)
		for i, b := range up {
			if b == 'U' {
				up[i] = 'T'
			}
		}
		c := Sequence{Name: s.Name, Seq: up, Outgroup: s.Outgroup}
		if s.Outgroup {
			a.outgroup = append(a.outgroup, c)
		} else {
			a.ingroup = append(a.ingroup, c)
		}
	}
	if a.length < 0 {
		a.length = 0
	}
	return a, nil
}

// Len returns the number of sites (columns).
func (a *Alignment) Len() int { return a.length }

// NumIngroup returns the number of ingroup sequences.
func (a *Alignment) NumIngroup() int { return len(a.ingroup) }

// NumOutgroup returns the number of outgroup sequences.
func (a *Alignment) NumOutgroup() int { return len(a.outgroup) }

// Ingroup returns the ingroup sequences.
func (a *Alignment) Ingroup() []Sequence { return a.ingroup }

// Site returns the ingroup column at position i.
func (a *Alignment) Site(i int) Site {
	s := make(Site, 0, len(a.ingroup))
	for _, sq := range a.ingroup {
		s = append(s, sq.Seq[i])
	}
	return s
}

// OutgroupSite returns the outgroup column at position i.
func (a *Alignment) OutgroupSite(i int) Site {
	s := make(Site, 0, len(a.outgroup))
	for _, sq := range a.outgroup {
		s = append(s, sq.Seq[i])
	}
	return s
}
