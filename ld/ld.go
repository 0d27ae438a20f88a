// Package ld measures pairwise linkage disequilibrium (D, D', r-squared)
// over the bi-allelic polymorphic sites of an alignment, with decay
// summaries against physical distance.
package ld

import (
	"errors"
	"fmt"

	popgen "github.com/altingia/bpp-popgen"
)

var (
	// ErrTooFewSites is returned by the aggregate statistics when fewer
	// than two sites survive the filters, so there is no site pair.
	ErrTooFewSites = errors.New("ld: fewer than two sites retained")

	// ErrUndefined is returned when a pairwise or aggregate statistic is
	// mathematically undefined for the retained data.
	ErrUndefined = errors.New("ld: statistic undefined for this data")
)

// Site is one retained bi-allelic column, recoded to 0/1 with 1 for the
// more frequent allele.
type Site struct {
	Pos     int    // column index in the source alignment
	Alleles []byte // one 0/1 code per ingroup sequence
}

// Container holds the recoded sites kept for LD analysis, plus copies of
// the ingroup rows so the gap-aware distance can look between sites. It
// is independent of the source alignment once built.
type Container struct {
	sites []Site
	rows  [][]byte
}

// Generate filters the alignment down to an LD container. A column is
// kept when it is gap-free across the ingroup, carries exactly two
// states, its minor allele frequency is at least freqMin, and, unless
// keepSingleton is set, its minor allele is observed more than once.
// The result only depends on the inputs, so repeated calls agree
// bit-for-bit.
func Generate(a *popgen.Alignment, keepSingleton bool, freqMin float64) *Container {
	c := &Container{}
	for _, s := range a.Ingroup() {
		row := make([]byte, len(s.Seq))
		copy(row, s.Seq)
		c.rows = append(c.rows, row)
	}
	n := a.NumIngroup()
	for i := 0; i < a.Len(); i++ {
		site := a.Site(i)
		if site.NonGapNumber() != n {
			continue
		}
		counts, order := site.Counts(popgen.ExcludeGaps)
		if len(order) != 2 {
			continue
		}
		major, minor := order[0], order[1]
		if counts[minor] > counts[major] {
			major, minor = minor, major
		}
		if float64(counts[minor]) < freqMin*float64(n) {
			continue
		}
		if !keepSingleton && counts[minor] == 1 {
			continue
		}
		alleles := make([]byte, len(site))
		for j, b := range site {
			if b == major {
				alleles[j] = 1
			}
		}
		c.sites = append(c.sites, Site{Pos: i, Alleles: alleles})
	}
	return c
}

// NumSites returns the number of retained sites.
func (c *Container) NumSites() int { return len(c.sites) }

// NumPairs returns the number of unordered site pairs.
func (c *Container) NumPairs() int { return len(c.sites) * (len(c.sites) - 1) / 2 }

// Sites returns the retained sites in alignment order.
func (c *Container) Sites() []Site { return c.sites }

// eachPair visits the unordered site pairs in (i, j) order.
func (c *Container) eachPair(f func(si, sj Site) error) error {
	for i := 0; i < len(c.sites); i++ {
		for j := i + 1; j < len(c.sites); j++ {
			if err := f(c.sites[i], c.sites[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Container) requirePairs() error {
	if c.NumSites() < 2 {
		return fmt.Errorf("%w: %d", ErrTooFewSites, c.NumSites())
	}
	return nil
}
