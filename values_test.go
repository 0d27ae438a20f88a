package popgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThetaParamsHarmonicSums(t *testing.T) {
	for _, n := range []int{2, 3, 4, 10, 25} {
		p, err := NewThetaParams(n)
		require.NoError(t, err)

		a1, a2 := 0.0, 0.0
		for i := 1; i < n; i++ {
			a1 += 1.0 / float64(i)
			a2 += 1.0 / float64(i*i)
		}
		assert.InDelta(t, a1, p.A1, 1e-12)
		assert.InDelta(t, a2, p.A2, 1e-12)
		assert.InDelta(t, a1+1.0/float64(n), p.A1n, 1e-12)
	}
}

func TestNewThetaParamsWorkedN4(t *testing.T) {
	p, err := NewThetaParams(4)
	require.NoError(t, err)

	assert.InDelta(t, 11.0/6.0, p.A1, 1e-12)
	assert.InDelta(t, 49.0/36.0, p.A2, 1e-12)
	assert.InDelta(t, 25.0/12.0, p.A1n, 1e-12)
	assert.InDelta(t, 5.0/9.0, p.B1, 1e-12)
	assert.InDelta(t, 46.0/108.0, p.B2, 1e-12)
	assert.InDelta(t, 0.0101010101, p.C1, 1e-9)
	assert.InDelta(t, 0.0127027854, p.C2, 1e-9)
	assert.InDelta(t, 0.4444444444, p.Cn, 1e-9)
	assert.InDelta(t, 1.1111111111, p.Dn, 1e-9)
	assert.InDelta(t, 0.0055096419, p.E1, 1e-9)
	assert.InDelta(t, 0.0026900016, p.E2, 1e-9)
}

func TestNewThetaParamsSmallSamples(t *testing.T) {
	_, err := NewThetaParams(1)
	assert.True(t, errors.Is(err, ErrSampleSize))
	_, err = NewThetaParams(0)
	assert.True(t, errors.Is(err, ErrSampleSize))

	// n = 2 is fine for the Tajima coefficients but leaves Cn and Dn
	// unset (they divide by n-2).
	p, err := NewThetaParams(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.A1)
	assert.Zero(t, p.Cn)
	assert.Zero(t, p.Dn)
}
