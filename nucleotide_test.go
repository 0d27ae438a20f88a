package popgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionsAndTransversions(t *testing.T) {
	// column 0: A/G is a transition; column 1: C/A is a transversion.
	a := mustAln(t, "AC", "GC", "GA")
	assert.Equal(t, 1, TransitionNumber(a))
	assert.Equal(t, 1, TransversionNumber(a))

	r, err := TsTvRatio(a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func TestTsTvCountsAllStatePairs(t *testing.T) {
	// A, G, T at one site: A/G ts, A/T tv, G/T tv.
	a := mustAln(t, "A", "G", "T")
	assert.Equal(t, 1, TransitionNumber(a))
	assert.Equal(t, 2, TransversionNumber(a))
}

func TestTsTvRatioUndefined(t *testing.T) {
	a := mustAln(t, "AC", "GC", "GC")
	_, err := TsTvRatio(a)
	assert.True(t, errors.Is(err, ErrUndefined))
}

func TestTsTvSkipsAmbiguousStates(t *testing.T) {
	a := mustAln(t, "A", "G", "N")
	assert.Equal(t, 1, TransitionNumber(a))
	assert.Equal(t, 0, TransversionNumber(a))
}
