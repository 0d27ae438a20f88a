package ld

import (
	"testing"

	popgen "github.com/altingia/bpp-popgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeans(t *testing.T) {
	c := Generate(filterAln(t), true, 0)

	m, err := c.MeanD()
	require.NoError(t, err)
	assert.InDelta(t, (-0.125+0.25-0.125)/3.0, m, 1e-12)

	m, err = c.MeanDistance1()
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3.0, m, 1e-12)

	m, err = c.MeanDistance2()
	require.NoError(t, err)
	assert.InDelta(t, (2.0+3.25+1.25)/3.0, m, 1e-12)

	m, err = c.MeanR2()
	require.NoError(t, err)
	assert.InDelta(t, (1.0/3.0+1.0+1.0/3.0)/3.0, m, 1e-12)
}

func TestLinearFitRecoversKnownSlope(t *testing.T) {
	// Noise-free decay: y = 1 - 0.2 x.
	xs := []float64{0.5, 1, 2, 4, 4.5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 1.0 - 0.2*x
	}
	reg, err := linearFit(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, reg.Slope, 1e-12)
	assert.InDelta(t, 1.0, reg.Intercept, 1e-12)
}

func TestOriginFitRecoversKnownSlope(t *testing.T) {
	xs := []float64{0.5, 1, 2, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 1.0 - 0.3*x
	}
	slope, err := originFit(xs, ys)
	require.NoError(t, err)
	assert.InDelta(t, -0.3, slope, 1e-12)
}

func TestOriginFitZeroSpread(t *testing.T) {
	_, err := originFit([]float64{0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, ErrUndefined)
}

// perfectLDAln has identically-patterned bi-allelic columns, so every
// pair has r2 = 1 whatever its distance.
func perfectLDAln(t *testing.T) *popgen.Alignment {
	a := make([]byte, 3001)
	b := make([]byte, 3001)
	for i := range a {
		a[i], b[i] = 'A', 'A'
	}
	for _, p := range []int{0, 1000, 3000} {
		a[p], b[p] = 'C', 'G'
	}
	seqs := []popgen.Sequence{
		{Name: "a", Seq: a}, {Name: "b", Seq: a},
		{Name: "c", Seq: b}, {Name: "d", Seq: b},
	}
	aln, err := popgen.New(seqs)
	require.NoError(t, err)
	return aln
}

func TestFlatDecayEndToEnd(t *testing.T) {
	c := Generate(perfectLDAln(t), true, 0)
	require.Equal(t, 3, c.NumSites())

	reg, err := c.LinearRegressionR2(true)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, reg.Slope, 1e-12)
	assert.InDelta(t, 1.0, reg.Intercept, 1e-12)

	slope, err := c.OriginRegressionR2(true)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, slope, 1e-12)

	slope, err = c.InverseRegressionR2(true)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, slope, 1e-12)
}

func TestRegressionSlopesArePerKb(t *testing.T) {
	// Distances enter the fits in kilobases, so the same data at 10x
	// the distance gives a slope 10x smaller.
	xs := []float64{1, 2, 3}
	ys := []float64{0.9, 0.8, 0.7}
	reg1, err := linearFit(xs, ys)
	require.NoError(t, err)
	xs10 := []float64{10, 20, 30}
	reg10, err := linearFit(xs10, ys)
	require.NoError(t, err)
	assert.InDelta(t, reg1.Slope/10.0, reg10.Slope, 1e-12)
}
