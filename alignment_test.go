package popgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustAln builds an ingroup-only alignment from raw strings.
func mustAln(t *testing.T, seqs ...string) *Alignment {
	t.Helper()
	var ss []Sequence
	for i, s := range seqs {
		ss = append(ss, Sequence{Name: string(rune('a' + i)), Seq: []byte(s)})
	}
	a, err := New(ss)
	require.NoError(t, err)
	return a
}

func TestNewRejectsUnequalLengths(t *testing.T) {
	_, err := New([]Sequence{
		{Name: "a", Seq: []byte("ACGT")},
		{Name: "b", Seq: []byte("ACG")},
	})
	assert.True(t, errors.Is(err, ErrSeqLength))
}

func TestNewNormalizesAndCopies(t *testing.T) {
	raw := []byte("acgu")
	a, err := New([]Sequence{{Name: "a", Seq: raw}})
	require.NoError(t, err)
	assert.Equal(t, Site{'A'}, a.Site(0))
	assert.Equal(t, Site{'T'}, a.Site(3))

	raw[0] = 'G' // caller keeps ownership of its slice
	assert.Equal(t, Site{'A'}, a.Site(0))
}

func TestSiteSplitsGroups(t *testing.T) {
	a, err := New([]Sequence{
		{Name: "in1", Seq: []byte("AC")},
		{Name: "out", Seq: []byte("GT"), Outgroup: true},
		{Name: "in2", Seq: []byte("AC")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, a.NumIngroup())
	assert.Equal(t, 1, a.NumOutgroup())
	assert.Equal(t, Site{'A', 'A'}, a.Site(0))
	assert.Equal(t, Site{'G'}, a.OutgroupSite(0))
}

func TestSiteCounters(t *testing.T) {
	tests := []struct {
		site       Site
		gap        GapPolicy
		mutations  int
		singletons int
	}{
		{Site("AAAA"), ExcludeGaps, 1, 0},
		{Site("AACT"), ExcludeGaps, 3, 2},
		{Site("AA--"), ExcludeGaps, 1, 0},
		{Site("AA--"), CountGapsAsState, 2, 0},
		{Site("AAC-"), CountGapsAsState, 3, 2},
		{Site("----"), ExcludeGaps, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.mutations, tt.site.MutationNumber(tt.gap), "mutations of %q", tt.site)
		assert.Equal(t, tt.singletons, tt.site.SingletonNumber(tt.gap), "singletons of %q", tt.site)
		assert.Equal(t, tt.mutations > 1, tt.site.IsPolymorphic(tt.gap), "polymorphism of %q", tt.site)
	}
}

func TestIsParsimonyInformative(t *testing.T) {
	assert.True(t, Site("AACC").IsParsimonyInformative(ExcludeGaps))
	assert.False(t, Site("AAAC").IsParsimonyInformative(ExcludeGaps))
	assert.False(t, Site("AAAA").IsParsimonyInformative(ExcludeGaps))
	assert.False(t, Site("AA--").IsParsimonyInformative(ExcludeGaps))
	assert.True(t, Site("AA--").IsParsimonyInformative(CountGapsAsState))
}
