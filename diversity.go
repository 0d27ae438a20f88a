package popgen

import "fmt"

// PolymorphicSiteNumber returns the number of segregating sites.
func PolymorphicSiteNumber(a *Alignment, gap GapPolicy) int {
	n := 0
	for i := 0; i < a.Len(); i++ {
		if a.Site(i).IsPolymorphic(gap) {
			n++
		}
	}
	return n
}

// ParsimonyInformativeSiteNumber returns the number of sites informative
// under maximum parsimony.
func ParsimonyInformativeSiteNumber(a *Alignment, gap GapPolicy) int {
	n := 0
	for i := 0; i < a.Len(); i++ {
		if a.Site(i).IsParsimonyInformative(gap) {
			n++
		}
	}
	return n
}

// CountSingleton returns the total number of singleton states over all
// sites.
func CountSingleton(a *Alignment, gap GapPolicy) int {
	n := 0
	for i := 0; i < a.Len(); i++ {
		n += a.Site(i).SingletonNumber(gap)
	}
	return n
}

// TotNumberMutations returns the total number of mutations eta under an
// infinite-site model: each observed state beyond the first at a site
// costs one mutation.
func TotNumberMutations(a *Alignment, gap GapPolicy) int {
	n := 0
	for i := 0; i < a.Len(); i++ {
		if m := a.Site(i).MutationNumber(gap); m > 1 {
			n += m - 1
		}
	}
	return n
}

// TripletNumber returns the number of sites carrying at least three
// distinct states.
func TripletNumber(a *Alignment, gap GapPolicy) int {
	n := 0
	for i := 0; i < a.Len(); i++ {
		if a.Site(i).MutationNumber(gap) >= 3 {
			n++
		}
	}
	return n
}

// GCContent returns the fraction of G and C among the non-gap ingroup
// symbols. It fails when the alignment holds no non-gap symbol.
func GCContent(a *Alignment) (float64, error) {
	gc, tot := 0, 0
	for _, s := range a.Ingroup() {
		for _, b := range s.Seq {
			if IsGap(b) {
				continue
			}
			tot++
			if b == 'G' || b == 'C' {
				gc++
			}
		}
	}
	if tot == 0 {
		return 0, fmt.Errorf("%w: no non-gap symbol in alignment", ErrUndefined)
	}
	return float64(gc) / float64(tot), nil
}

// Watterson75 returns the diversity estimator theta-S of Watterson (1975):
// the number of segregating sites divided by a1. Zero segregating sites
// gives theta = 0.
func Watterson75(a *Alignment, gap GapPolicy) (float64, error) {
	p, err := NewThetaParams(a.NumIngroup())
	if err != nil {
		return 0, err
	}
	s := PolymorphicSiteNumber(a, gap)
	return float64(s) / p.A1, nil
}

// Tajima83 returns the diversity estimator theta-pi of Tajima (1983): the
// sum over polymorphic sites of one minus the homozygosity
// sum k(k-1) / n(n-1). Sites with fewer than two countable symbols are
// skipped.
func Tajima83(a *Alignment, gap GapPolicy) float64 {
	theta := 0.0
	for i := 0; i < a.Len(); i++ {
		site := a.Site(i)
		if !site.IsPolymorphic(gap) {
			continue
		}
		counts, _ := site.Counts(gap)
		ni := 0
		for _, c := range counts {
			ni += c
		}
		if ni < 2 {
			continue
		}
		hom := 0.0
		for _, c := range counts {
			hom += float64(c*(c-1)) / float64(ni*(ni-1))
		}
		theta += 1.0 - hom
	}
	return theta
}
