package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicVectorReproducible(t *testing.T) {
	a := DeterministicVector(7, 64, 2)
	b := DeterministicVector(7, 64, 2)
	assert.Equal(t, a, b)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 2.0)
	}
	assert.NotEqual(t, a, DeterministicVector(8, 64, 2))
}

func TestAxis(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 0}, Axis(3, 1))
	assert.Equal(t, []float64{0, 0}, Axis(2, 5))
}

func TestFilled(t *testing.T) {
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, Filled(2.5, 3))
	assert.Empty(t, Filled(1, 0))
}
