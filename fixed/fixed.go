// Package fixed provides Q16.16 fixed-point numbers usable as vector
// elements.
//
// A Q16 stores a real number x as the int32 round(x·65536). Its zero value is
// the number 0, but its multiplicative identity is the bit pattern 1<<16, so
// it is the canonical element type whose One differs from the default value.
//
// Importing the package registers its provider with arith.Global.
package fixed

import (
	"fmt"
	"math"
	"strconv"
)

// Q16 is a signed Q16.16 fixed-point number.
type Q16 int32

const (
	fracBits = 16

	// One is 1.0 in Q16.16.
	One Q16 = 1 << fracBits
	// Max and Min are the largest and smallest representable values.
	Max Q16 = math.MaxInt32
	Min Q16 = math.MinInt32
	// Epsilon is the smallest positive value, 2^-16.
	Epsilon Q16 = 1
)

// FromInt returns i as a Q16. Values outside [-32768, 32767] wrap.
func FromInt(i int) Q16 {
	return Q16(int32(i) << fracBits)
}

// FromFloat returns f rounded to the nearest Q16, saturating at Min and Max.
// NaN maps to 0.
func FromFloat(f float64) Q16 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= Max.Float64():
		return Max
	case f <= Min.Float64():
		return Min
	}
	return Q16(math.Round(f * (1 << fracBits)))
}

// Parse reads a decimal number such as "1.5" or "-3".
func Parse(s string) (Q16, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("fixed: parse %q: %w", s, err)
	}
	return FromFloat(f), nil
}

// Float64 returns q as a float64. The conversion is exact.
func (q Q16) Float64() float64 {
	return float64(q) / (1 << fracBits)
}

// Int returns the integer part of q, truncated toward negative infinity.
func (q Q16) Int() int {
	return int(q >> fracBits)
}

// Raw returns the underlying bit pattern.
func (q Q16) Raw() int32 {
	return int32(q)
}

func (q Q16) String() string {
	return strconv.FormatFloat(q.Float64(), 'g', -1, 64)
}
