package popgen

import "fmt"

// Codon statistics reinterpret the alignment as codon columns. Codons
// containing a gap are excluded from a column's multiset; codons with any
// other untranslatable symbol are excluded too, except where noted.

// codonSiteNumber checks the reading frame and returns the number of
// codon columns.
func codonSiteNumber(a *Alignment) (int, error) {
	if a.Len()%3 != 0 {
		return 0, fmt.Errorf("%w: %d sites", ErrCodonAlignment, a.Len())
	}
	return a.Len() / 3, nil
}

// codonColumn returns the translatable ingroup codons of column c.
// strict makes an untranslatable non-gap codon an error instead of being
// skipped.
func codonColumn(a *Alignment, c int, strict bool) ([][]byte, error) {
	var codons [][]byte
	for _, s := range a.Ingroup() {
		codon := s.Seq[3*c : 3*c+3]
		gapped := false
		for _, b := range codon {
			if IsGap(b) {
				gapped = true
				break
			}
		}
		if gapped {
			continue
		}
		if _, err := codonIndex(codon); err != nil {
			if strict {
				return nil, err
			}
			continue
		}
		codons = append(codons, codon)
	}
	return codons, nil
}

func containsStop(codons [][]byte, gc *GeneticCode) bool {
	for _, c := range codons {
		if gc.IsStop(c) {
			return true
		}
	}
	return false
}

// codonTypes collapses a column to its distinct codons with counts,
// keeping first-appearance order.
func codonTypes(codons [][]byte) (counts []int, types [][]byte) {
	for _, c := range codons {
		found := false
		for i, t := range types {
			if t[0] == c[0] && t[1] == c[1] && t[2] == c[2] {
				counts[i]++
				found = true
				break
			}
		}
		if !found {
			types = append(types, c)
			counts = append(counts, 1)
		}
	}
	return
}

// variablePositions returns the codon positions (0..2) that vary among
// the distinct codons.
func variablePositions(types [][]byte) []int {
	var pos []int
	for p := 0; p < 3; p++ {
		for _, t := range types[1:] {
			if t[p] != types[0][p] {
				pos = append(pos, p)
				break
			}
		}
	}
	return pos
}

// StopCodonSiteNumber returns the number of codon columns containing at
// least one stop codon.
func StopCodonSiteNumber(a *Alignment, gc *GeneticCode) (int, error) {
	nc, err := codonSiteNumber(a)
	if err != nil {
		return 0, err
	}
	n := 0
	for c := 0; c < nc; c++ {
		codons, _ := codonColumn(a, c, false)
		if containsStop(codons, gc) {
			n++
		}
	}
	return n, nil
}

// MonoSitePolymorphicCodonNumber returns the number of polymorphic codon
// columns where exactly one of the three nucleotide positions varies.
func MonoSitePolymorphicCodonNumber(a *Alignment, gc *GeneticCode, excludeStop bool) (int, error) {
	nc, err := codonSiteNumber(a)
	if err != nil {
		return 0, err
	}
	n := 0
	for c := 0; c < nc; c++ {
		codons, _ := codonColumn(a, c, false)
		if len(codons) < 2 || (excludeStop && containsStop(codons, gc)) {
			continue
		}
		_, types := codonTypes(codons)
		if len(types) > 1 && len(variablePositions(types)) == 1 {
			n++
		}
	}
	return n, nil
}

// SynonymousPolymorphicCodonNumber returns the number of mono-site
// polymorphic codon columns whose codons all encode the same amino acid.
func SynonymousPolymorphicCodonNumber(a *Alignment, gc *GeneticCode, excludeStop bool) (int, error) {
	syn, _, err := classifyMonoSiteColumns(a, gc, excludeStop)
	return syn, err
}

// NonSynonymousPolymorphicCodonNumber returns the number of mono-site
// polymorphic codon columns whose single nucleotide change alters the
// encoded amino acid.
func NonSynonymousPolymorphicCodonNumber(a *Alignment, gc *GeneticCode, excludeStop bool) (int, error) {
	_, nonsyn, err := classifyMonoSiteColumns(a, gc, excludeStop)
	return nonsyn, err
}

func classifyMonoSiteColumns(a *Alignment, gc *GeneticCode, excludeStop bool) (syn, nonsyn int, err error) {
	nc, err := codonSiteNumber(a)
	if err != nil {
		return 0, 0, err
	}
	for c := 0; c < nc; c++ {
		codons, _ := codonColumn(a, c, false)
		if len(codons) < 2 || (excludeStop && containsStop(codons, gc)) {
			continue
		}
		_, types := codonTypes(codons)
		if len(types) < 2 || len(variablePositions(types)) != 1 {
			continue
		}
		same := true
		aa0, _ := gc.Translate(types[0])
		for _, t := range types[1:] {
			aa, _ := gc.Translate(t)
			if aa != aa0 {
				same = false
				break
			}
		}
		if same {
			syn++
		} else {
			nonsyn++
		}
	}
	return syn, nonsyn, nil
}

// PiSynonymous returns the synonymous nucleotide diversity: the
// theta-pi analogue restricted to synonymous changes, summed over codon
// columns. minChange scores multi-step codon comparisons by the path with
// the fewest non-synonymous steps instead of the path average.
func PiSynonymous(a *Alignment, gc *GeneticCode, minChange, excludeStop bool) (float64, error) {
	s, _, err := piCodon(a, gc, minChange, excludeStop)
	return s, err
}

// PiNonSynonymous returns the non-synonymous nucleotide diversity.
func PiNonSynonymous(a *Alignment, gc *GeneticCode, minChange, excludeStop bool) (float64, error) {
	_, ns, err := piCodon(a, gc, minChange, excludeStop)
	return ns, err
}

func piCodon(a *Alignment, gc *GeneticCode, minChange, excludeStop bool) (piSyn, piNonSyn float64, err error) {
	nc, err := codonSiteNumber(a)
	if err != nil {
		return 0, 0, err
	}
	for c := 0; c < nc; c++ {
		codons, _ := codonColumn(a, c, false)
		n := len(codons)
		if n < 2 || (excludeStop && containsStop(codons, gc)) {
			continue
		}
		counts, types := codonTypes(codons)
		norm := 2.0 / float64(n*(n-1))
		for i := 0; i < len(types); i++ {
			for j := i + 1; j < len(types); j++ {
				s, ns := codonDifferences(types[i], types[j], gc, minChange)
				w := float64(counts[i]*counts[j]) * norm
				piSyn += w * s
				piNonSyn += w * ns
			}
		}
	}
	return piSyn, piNonSyn, nil
}

// codonDifferences splits the nucleotide differences between two codons
// into synonymous and non-synonymous counts by walking every ordering of
// the differing positions one substitution at a time.
func codonDifferences(c1, c2 []byte, gc *GeneticCode, minChange bool) (syn, nonSyn float64) {
	var diffs []int
	for p := 0; p < 3; p++ {
		if c1[p] != c2[p] {
			diffs = append(diffs, p)
		}
	}
	if len(diffs) == 0 {
		return 0, 0
	}
	var synPerPath []float64
	for _, path := range permutations(diffs) {
		cur := []byte{c1[0], c1[1], c1[2]}
		s := 0.0
		for _, p := range path {
			before, _ := gc.Translate(cur)
			cur[p] = c2[p]
			after, _ := gc.Translate(cur)
			if before == after {
				s++
			}
		}
		synPerPath = append(synPerPath, s)
	}
	if minChange {
		for _, s := range synPerPath {
			if s > syn {
				syn = s
			}
		}
	} else {
		for _, s := range synPerPath {
			syn += s
		}
		syn /= float64(len(synPerPath))
	}
	return syn, float64(len(diffs)) - syn
}

func permutations(xs []int) [][]int {
	if len(xs) <= 1 {
		return [][]int{append([]int(nil), xs...)}
	}
	var out [][]int
	for i := range xs {
		rest := make([]int, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]int{xs[i]}, p...))
		}
	}
	return out
}

// MeanSynonymousSitesNumber returns the expected fractional number of
// synonymous sites summed over codon columns. Each single-nucleotide
// neighbour of a codon is weighted by ratio when the change is a
// transition and by 1 when it is a transversion; ratio 1 treats both as
// equally likely. Untranslatable non-gap codons are an error.
func MeanSynonymousSitesNumber(a *Alignment, gc *GeneticCode, ratio float64, excludeStop bool) (float64, error) {
	syn, _, err := meanSitesNumbers(a, gc, ratio, excludeStop)
	return syn, err
}

// MeanNonSynonymousSitesNumber returns the complement of
// MeanSynonymousSitesNumber: three sites per used codon column minus the
// synonymous mean.
func MeanNonSynonymousSitesNumber(a *Alignment, gc *GeneticCode, ratio float64, excludeStop bool) (float64, error) {
	_, nonSyn, err := meanSitesNumbers(a, gc, ratio, excludeStop)
	return nonSyn, err
}

func meanSitesNumbers(a *Alignment, gc *GeneticCode, ratio float64, excludeStop bool) (syn, nonSyn float64, err error) {
	nc, err := codonSiteNumber(a)
	if err != nil {
		return 0, 0, err
	}
	for c := 0; c < nc; c++ {
		codons, err := codonColumn(a, c, true)
		if err != nil {
			return 0, 0, err
		}
		if len(codons) == 0 || (excludeStop && containsStop(codons, gc)) {
			continue
		}
		mean := 0.0
		for _, codon := range codons {
			mean += synonymousPositions(codon, gc, ratio)
		}
		mean /= float64(len(codons))
		syn += mean
		nonSyn += 3.0 - mean
	}
	return syn, nonSyn, nil
}

// synonymousPositions returns the weighted fraction of single-nucleotide
// neighbours of codon that leave the amino acid unchanged, summed over
// the three positions. Each position contributes between 0 and 1.
func synonymousPositions(codon []byte, gc *GeneticCode, ratio float64) float64 {
	aa, _ := gc.Translate(codon)
	total := 0.0
	for p := 0; p < 3; p++ {
		for _, alt := range []byte{'T', 'C', 'A', 'G'} {
			if alt == codon[p] {
				continue
			}
			w := 1.0
			if isTransition(codon[p], alt) {
				w = ratio
			}
			neighbour := []byte{codon[0], codon[1], codon[2]}
			neighbour[p] = alt
			if naa, _ := gc.Translate(neighbour); naa == aa {
				total += w / (ratio + 2.0)
			}
		}
	}
	return total
}
