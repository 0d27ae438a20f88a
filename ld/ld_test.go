package ld

import (
	"errors"
	"math"
	"testing"

	popgen "github.com/altingia/bpp-popgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAln(t *testing.T, seqs ...string) *popgen.Alignment {
	t.Helper()
	var ss []popgen.Sequence
	for i, s := range seqs {
		ss = append(ss, popgen.Sequence{Name: string(rune('a' + i)), Seq: []byte(s)})
	}
	a, err := popgen.New(ss)
	require.NoError(t, err)
	return a
}

// filterAln columns: 0 bi-allelic (2,2), 1 monomorphic, 2 bi-allelic with
// a singleton, 3 gapped, 4 bi-allelic (2,2).
func filterAln(t *testing.T) *popgen.Alignment {
	return mustAln(t,
		"AGA-A",
		"AGC-A",
		"CGCCC",
		"CGC-C",
	)
}

func TestGenerateFilters(t *testing.T) {
	a := filterAln(t)

	c := Generate(a, true, 0)
	require.Equal(t, 3, c.NumSites())
	assert.Equal(t, []int{0, 2, 4}, positions(c))

	// Dropping singletons removes column 2.
	c = Generate(a, false, 0)
	assert.Equal(t, []int{0, 4}, positions(c))

	// A minimum minor allele frequency above 1/4 removes it too.
	c = Generate(a, true, 0.3)
	assert.Equal(t, []int{0, 4}, positions(c))
}

func positions(c *Container) []int {
	var ps []int
	for _, s := range c.Sites() {
		ps = append(ps, s.Pos)
	}
	return ps
}

func TestGenerateRecodesMajorityAsOne(t *testing.T) {
	c := Generate(filterAln(t), true, 0)
	require.Equal(t, 3, c.NumSites())

	// Column 2: C is the majority allele.
	assert.Equal(t, []byte{0, 1, 1, 1}, c.Sites()[1].Alleles)
	// Column 0 is a 2:2 tie; the first state in column order wins.
	assert.Equal(t, []byte{1, 1, 0, 0}, c.Sites()[0].Alleles)
}

func TestGenerateIdempotent(t *testing.T) {
	a := filterAln(t)
	c1 := Generate(a, true, 0)
	c2 := Generate(a, true, 0)
	assert.Equal(t, c1.Sites(), c2.Sites())
}

func TestPairwiseDWorked(t *testing.T) {
	c := Generate(filterAln(t), true, 0)
	require.Equal(t, 3, c.NumPairs())

	// pairs in order: (0,2), (0,4), (2,4)
	d := c.D()
	assert.InDelta(t, -0.125, d[0], 1e-12) // x=(1,1,0,0), y=(0,1,1,1)
	assert.InDelta(t, 0.25, d[1], 1e-12)   // identical columns
	dp, err := c.DPrime()
	require.NoError(t, err)
	assert.InDelta(t, -1.0, dp[0], 1e-12)
	assert.InDelta(t, 1.0, dp[1], 1e-12)
	r2, err := c.R2()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, r2[0], 1e-12)
	assert.InDelta(t, 1.0, r2[1], 1e-12)
}

func TestPairwiseBounds(t *testing.T) {
	c := Generate(filterAln(t), true, 0)
	dp, err := c.DPrime()
	require.NoError(t, err)
	for _, v := range dp {
		assert.LessOrEqual(t, math.Abs(v), 1.0+1e-12)
	}
	r2, err := c.R2()
	require.NoError(t, err)
	for _, v := range r2 {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0+1e-12)
	}
}

func TestDistances(t *testing.T) {
	c := Generate(filterAln(t), true, 0)

	assert.Equal(t, []float64{2, 4, 2}, c.Distances1())

	// Method 2 discounts the per-sequence gaps at column 3: between
	// columns 2 and 4 three of four sequences have one non-gap position.
	d2 := c.Distances2()
	assert.InDelta(t, 2.0, d2[0], 1e-12)
	assert.InDelta(t, 3.25, d2[1], 1e-12)
	assert.InDelta(t, 1.25, d2[2], 1e-12)
}

func TestEmptyContainerIsValid(t *testing.T) {
	c := Generate(mustAln(t, "ACGT", "ACGT"), true, 0)
	assert.Zero(t, c.NumSites())
	assert.Empty(t, c.D())

	_, err := c.MeanD()
	assert.True(t, errors.Is(err, ErrTooFewSites))
	_, err = c.LinearRegressionR2(true)
	assert.True(t, errors.Is(err, ErrTooFewSites))
}
