package popgen

import "fmt"

func isPurine(b byte) bool     { return b == 'A' || b == 'G' }
func isPyrimidine(b byte) bool { return b == 'C' || b == 'T' }

// isTransition reports whether x<->y is a transition (A<->G or C<->T).
// Pairs involving a symbol outside ACGT are neither transition nor
// transversion and are skipped by the counters.
func isTransition(x, y byte) bool {
	return (isPurine(x) && isPurine(y)) || (isPyrimidine(x) && isPyrimidine(y))
}

func countSubstitutions(a *Alignment) (ts, tv int) {
	for i := 0; i < a.Len(); i++ {
		site := a.Site(i)
		if !site.IsPolymorphic(ExcludeGaps) {
			continue
		}
		_, states := site.Counts(ExcludeGaps)
		for j := 0; j < len(states); j++ {
			for k := j + 1; k < len(states); k++ {
				x, y := states[j], states[k]
				if !isPurine(x) && !isPyrimidine(x) {
					continue
				}
				if !isPurine(y) && !isPyrimidine(y) {
					continue
				}
				if isTransition(x, y) {
					ts++
				} else {
					tv++
				}
			}
		}
	}
	return
}

// TransitionNumber returns the number of observed transitions over all
// pairs of distinct states at polymorphic sites.
func TransitionNumber(a *Alignment) int {
	ts, _ := countSubstitutions(a)
	return ts
}

// TransversionNumber returns the number of observed transversions over
// all pairs of distinct states at polymorphic sites.
func TransversionNumber(a *Alignment) int {
	_, tv := countSubstitutions(a)
	return tv
}

// TsTvRatio returns the transition/transversion ratio. It fails when no
// transversion is observed.
func TsTvRatio(a *Alignment) (float64, error) {
	ts, tv := countSubstitutions(a)
	if tv == 0 {
		return 0, fmt.Errorf("%w: no transversion observed", ErrUndefined)
	}
	return float64(ts) / float64(tv), nil
}
