package vector

import (
	"hash/maphash"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	a := New(1.0, 2.0, 3.0)
	var null *Vector[float64]

	tests := []struct {
		name string
		x, y *Vector[float64]
		want bool
	}{
		{"same pointer", a, a, true},
		{"structurally equal", a, New(1.0, 2.0, 3.0), true},
		{"different element", a, New(1.0, 2.0, 4.0), false},
		{"different dimension", a, New(1.0, 2.0), false},
		{"both nil", null, null, true},
		{"nil vs present", null, a, false},
		{"present vs nil", a, null, false},
		{"nil vs empty", null, New[float64](), false},
		{"both empty", New[float64](), New[float64](), true},
		{"signed zeros", New(0.0), New(math.Copysign(0, -1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.x, tt.y))
		})
	}
}

func TestEqualNaN(t *testing.T) {
	v := New(math.NaN())
	assert.True(t, Equal(v, v), "identity short-circuits")
	assert.False(t, Equal(v, New(math.NaN())))
}

func TestEqualWithin(t *testing.T) {
	a := New(1.0, 2.0)

	assert.True(t, EqualWithin(a, New(1.05, 1.95), 0.1))
	assert.False(t, EqualWithin(a, New(1.2, 2.0), 0.1))
	assert.False(t, EqualWithin(a, New(1.0), 0.1))
	assert.False(t, EqualWithin(a, nil, 0.1))
	assert.True(t, EqualWithin[float64](nil, nil, 0))
	assert.True(t, EqualWithin(New(10, 20), New(12, 18), 2))
}

func TestEqualWithoutProvider(t *testing.T) {
	a := New(complex(1, 2))
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, New(complex(1, 2))))
}

func TestHashConsistentWithEqual(t *testing.T) {
	seed := maphash.MakeSeed()

	a := New(1.0, 2.0, 3.0)
	b := New(1.0, 2.0, 3.0)
	assert.Equal(t, a.Hash(seed), b.Hash(seed))

	assert.Equal(t, New(0.0).Hash(seed), New(math.Copysign(0, -1)).Hash(seed))

	ints := New(1, 2, 3)
	assert.Equal(t, ints.Hash(seed), New(1, 2, 3).Hash(seed))
}

func TestHashOrderSensitive(t *testing.T) {
	seed := maphash.MakeSeed()
	assert.NotEqual(t, New(1, 2, 3).Hash(seed), New(3, 2, 1).Hash(seed))
	assert.NotEqual(t, New(1, 2).Hash(seed), New(1, 2, 0).Hash(seed))
}

func TestHashEmpty(t *testing.T) {
	seed := maphash.MakeSeed()
	var null *Vector[float64]
	assert.NotPanics(t, func() {
		_ = New[float64]().Hash(seed)
		_ = null.Hash(seed)
	})
	assert.Equal(t, New[float64]().Hash(seed), New[float64]().Hash(seed))
}

func TestHashFallbackWithoutHasher(t *testing.T) {
	seed := maphash.MakeSeed()
	a := New(complex(1, 2), complex(3, 4))
	assert.Equal(t, a.Hash(seed), New(complex(1, 2), complex(3, 4)).Hash(seed))
	assert.NotEqual(t, a.Hash(seed), New(complex(3, 4), complex(1, 2)).Hash(seed))
}
