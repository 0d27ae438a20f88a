package popgen

import "fmt"

// haplotypes partitions the ingroup into identical-sequence classes.
// Under ExcludeGaps, columns where any ingroup sequence carries a gap are
// left out of the comparison, so the policy applies uniformly to every
// sequence.
func haplotypes(a *Alignment, gap GapPolicy) map[string]int {
	keep := make([]int, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		if gap == ExcludeGaps {
			gapped := false
			for _, b := range a.Site(i) {
				if IsGap(b) {
					gapped = true
					break
				}
			}
			if gapped {
				continue
			}
		}
		keep = append(keep, i)
	}
	classes := make(map[string]int)
	for _, s := range a.Ingroup() {
		key := make([]byte, 0, len(keep))
		for _, i := range keep {
			key = append(key, s.Seq[i])
		}
		classes[string(key)]++
	}
	return classes
}

// DVK returns the number of distinct haplotypes in the ingroup (Depaulis
// and Veuille 1998).
func DVK(a *Alignment, gap GapPolicy) int {
	return len(haplotypes(a, gap))
}

// DVH returns the haplotype diversity of the ingroup (Depaulis and
// Veuille 1998) with the unbiased n/(n-1) sample-size correction.
func DVH(a *Alignment, gap GapPolicy) (float64, error) {
	n := a.NumIngroup()
	if n < 2 {
		return 0, fmt.Errorf("%w: haplotype diversity needs at least 2 sequences, got %d", ErrSampleSize, n)
	}
	hom := 0.0
	for _, c := range haplotypes(a, gap) {
		f := float64(c) / float64(n)
		hom += f * f
	}
	return (1.0 - hom) * float64(n) / float64(n-1), nil
}
