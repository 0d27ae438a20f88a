package popgen

// Site is the multiset of symbols observed at one alignment column.
type Site []byte

// Counts returns the multiplicity of each state under the gap policy,
// together with the states in order of first appearance.
func (s Site) Counts(gap GapPolicy) (map[byte]int, []byte) {
	counts := make(map[byte]int)
	var order []byte
	for _, b := range s {
		if gap == ExcludeGaps && IsGap(b) {
			continue
		}
		if counts[b] == 0 {
			order = append(order, b)
		}
		counts[b]++
	}
	return counts, order
}

// NonGapNumber returns the number of non-gap symbols in the site.
func (s Site) NonGapNumber() int {
	n := 0
	for _, b := range s {
		if !IsGap(b) {
			n++
		}
	}
	return n
}

// MutationNumber returns the number of distinct allelic states under the
// gap policy. A site with no countable symbol yields 0.
func (s Site) MutationNumber(gap GapPolicy) int {
	counts, _ := s.Counts(gap)
	return len(counts)
}

// SingletonNumber returns the number of states observed exactly once.
func (s Site) SingletonNumber(gap GapPolicy) int {
	counts, _ := s.Counts(gap)
	n := 0
	for _, c := range counts {
		if c == 1 {
			n++
		}
	}
	return n
}

// IsPolymorphic reports whether the site carries more than one state.
func (s Site) IsPolymorphic(gap GapPolicy) bool {
	return s.MutationNumber(gap) > 1
}

// IsParsimonyInformative reports whether at least two distinct states each
// occur at least twice.
func (s Site) IsParsimonyInformative(gap GapPolicy) bool {
	counts, _ := s.Counts(gap)
	n := 0
	for _, c := range counts {
		if c >= 2 {
			n++
		}
	}
	return n >= 2
}
