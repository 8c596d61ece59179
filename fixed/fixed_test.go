package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		raw  int32
	}{
		{"zero", 0, 0},
		{"one", 1, 1 << 16},
		{"half", 0.5, 1 << 15},
		{"negative", -2.25, -(2<<16 + 1<<14)},
		{"epsilon", 1.0 / 65536, 1},
		{"rounds", 1.0 / 131072 * 3, 2},
		{"saturates high", 1e9, math.MaxInt32},
		{"saturates low", -1e9, math.MinInt32},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.raw, FromFloat(tt.in).Raw())
		})
	}

	assert.Equal(t, One, FromInt(1))
	assert.Equal(t, -3, FromInt(-3).Int())
	assert.Equal(t, -1, FromFloat(-0.5).Int())
	assert.Equal(t, 2.75, FromFloat(2.75).Float64())
}

func TestParseAndString(t *testing.T) {
	q, err := Parse("1.5")
	require.NoError(t, err)
	assert.Equal(t, FromFloat(1.5), q)
	assert.Equal(t, "1.5", q.String())
	assert.Equal(t, "-3", FromInt(-3).String())

	_, err = Parse("one")
	assert.ErrorContains(t, err, "fixed: parse")
}

func TestArithmetic(t *testing.T) {
	var p Arithmetic
	a, b := FromFloat(3.5), FromFloat(-1.25)

	assert.Equal(t, FromFloat(2.25), p.Add(a, b))
	assert.Equal(t, FromFloat(4.75), p.Subtract(a, b))
	assert.Equal(t, FromFloat(-4.375), p.Multiply(a, b))
	// Division truncates toward zero.
	assert.Equal(t, Q16(-183500), p.Divide(a, b))
	assert.Equal(t, FromFloat(-3.5), p.Negate(a))

	assert.True(t, p.LessThan(b, a))
	assert.True(t, p.GreaterThan(a, b))
	assert.True(t, p.Equal(a, FromFloat(3.5)))
	assert.True(t, p.EqualWithTolerance(a, a+3, 3))
	assert.False(t, p.EqualWithTolerance(a, a-4, 3))
	assert.True(t, p.EqualWithTolerance(Max, Max-1, Epsilon))

	assert.Equal(t, Q16(0), p.Zero())
	assert.Equal(t, One, p.One())
}

func TestDivideByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Arithmetic{}.Divide(One, 0) })
}

func TestSquareRoot(t *testing.T) {
	var p Arithmetic
	assert.Equal(t, FromInt(5), p.SquareRoot(FromInt(25)))
	assert.Equal(t, FromFloat(0.5), p.SquareRoot(FromFloat(0.25)))
	assert.Equal(t, Q16(0), p.SquareRoot(FromInt(-4)))
	assert.InDelta(t, math.Sqrt2, p.SquareRoot(FromInt(2)).Float64(), 2.0/65536)
}
