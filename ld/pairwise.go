package ld

import (
	"fmt"

	popgen "github.com/altingia/bpp-popgen"
	"github.com/mingzhi/gomath/stat/correlation"
)

// pairStats returns D and the two "1"-allele frequencies of a site pair.
// D is exactly the (biased) covariance of the two 0/1 columns:
// p_ij - p_i p_j.
func pairStats(si, sj Site) (d, pi, pj float64) {
	cov := correlation.NewBivariateCovariance(false)
	for k := range si.Alleles {
		cov.Increment(float64(si.Alleles[k]), float64(sj.Alleles[k]))
	}
	return cov.GetResult(), cov.MeanX(), cov.MeanY()
}

// Distances1 returns the pairwise distance of every site pair as the
// absolute difference of alignment positions.
func (c *Container) Distances1() []float64 {
	ds := make([]float64, 0, c.NumPairs())
	c.eachPair(func(si, sj Site) error {
		ds = append(ds, float64(sj.Pos-si.Pos))
		return nil
	})
	return ds
}

// Distances2 returns the pairwise distances with gaps excluded per
// sequence: for each sequence the distance is the number of non-gap
// positions between the two sites, and the mean over sequences is taken.
func (c *Container) Distances2() []float64 {
	ds := make([]float64, 0, c.NumPairs())
	c.eachPair(func(si, sj Site) error {
		sum := 0.0
		for _, row := range c.rows {
			d := 0
			for k := si.Pos; k < sj.Pos; k++ {
				if !popgen.IsGap(row[k]) {
					d++
				}
			}
			sum += float64(d)
		}
		ds = append(ds, sum/float64(len(c.rows)))
		return nil
	})
	return ds
}

// D returns the pairwise D of Lewontin and Kojima (1964) for every site
// pair.
func (c *Container) D() []float64 {
	ds := make([]float64, 0, c.NumPairs())
	c.eachPair(func(si, sj Site) error {
		d, _, _ := pairStats(si, sj)
		ds = append(ds, d)
		return nil
	})
	return ds
}

// DPrime returns the pairwise D' of Lewontin (1964): D divided by its
// maximum given the allele frequencies.
func (c *Container) DPrime() ([]float64, error) {
	ds := make([]float64, 0, c.NumPairs())
	err := c.eachPair(func(si, sj Site) error {
		d, pi, pj := pairStats(si, sj)
		var dmax float64
		if d > 0 {
			dmax = minFloat(pi*(1.0-pj), (1.0-pi)*pj)
		} else {
			dmax = minFloat(pi*pj, (1.0-pi)*(1.0-pj))
		}
		if dmax == 0 {
			return fmt.Errorf("%w: monomorphic site pair at %d,%d", ErrUndefined, si.Pos, sj.Pos)
		}
		ds = append(ds, d/dmax)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// R2 returns the pairwise r-squared of Hill and Robertson (1968).
func (c *Container) R2() ([]float64, error) {
	ds := make([]float64, 0, c.NumPairs())
	err := c.eachPair(func(si, sj Site) error {
		d, pi, pj := pairStats(si, sj)
		v := pi * (1.0 - pi) * pj * (1.0 - pj)
		if v == 0 {
			return fmt.Errorf("%w: monomorphic site pair at %d,%d", ErrUndefined, si.Pos, sj.Pos)
		}
		ds = append(ds, d*d/v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
