package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FixedSeedIsReproducible(t *testing.T) {
	a, seedA, err := New(42)
	require.NoError(t, err)
	b, seedB, err := New(42)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), seedA)
	assert.Equal(t, seedA, seedB)
	for range 10 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNew_ZeroSeedIsReplaced(t *testing.T) {
	_, seed, err := New(0)
	require.NoError(t, err)
	assert.NotZero(t, seed)
}
