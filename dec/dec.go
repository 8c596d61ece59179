// Package dec registers an arith provider for arbitrary-precision decimals
// from github.com/shopspring/decimal, so vectors of decimal.Decimal work with
// every operation in package vector.
//
// Division rounds to decimal.DivisionPrecision places. SquareRoot is computed
// in float64 and converted back, so it carries float64 precision only.
package dec

import (
	"hash/maphash"
	"math"

	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-vector/arith"
)

// Arithmetic is the arith.Provider for decimal.Decimal.
type Arithmetic struct{}

var (
	_ arith.Provider[decimal.Decimal] = Arithmetic{}
	_ arith.Hasher[decimal.Decimal]   = Arithmetic{}

	one = decimal.NewFromInt(1)
)

func (Arithmetic) Add(a, b decimal.Decimal) decimal.Decimal      { return a.Add(b) }
func (Arithmetic) Subtract(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Arithmetic) Multiply(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// Divide panics when b is zero.
func (Arithmetic) Divide(a, b decimal.Decimal) decimal.Decimal { return a.Div(b) }

func (Arithmetic) Negate(a decimal.Decimal) decimal.Decimal { return a.Neg() }

// SquareRoot returns 0 for non-positive input.
func (Arithmetic) SquareRoot(a decimal.Decimal) decimal.Decimal {
	if a.Sign() <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Sqrt(a.InexactFloat64()))
}

func (Arithmetic) LessThan(a, b decimal.Decimal) bool    { return a.LessThan(b) }
func (Arithmetic) GreaterThan(a, b decimal.Decimal) bool { return a.GreaterThan(b) }

// Equal compares numerically, so 1.0 and 1.00 are equal.
func (Arithmetic) Equal(a, b decimal.Decimal) bool { return a.Equal(b) }

func (Arithmetic) EqualWithTolerance(a, b, tolerance decimal.Decimal) bool {
	return a.Sub(b).Abs().Cmp(tolerance) <= 0
}

func (Arithmetic) Zero() decimal.Decimal { return decimal.Zero }
func (Arithmetic) One() decimal.Decimal  { return one }

// Hash writes the canonical string form, which drops trailing zeros and so
// agrees with Equal.
func (Arithmetic) Hash(h *maphash.Hash, v decimal.Decimal) {
	_, _ = h.WriteString(v.String())
}

func init() {
	arith.Register(arith.Entry[decimal.Decimal]{
		Name:      "shopspring",
		SIMDLevel: arith.SIMDNone,
		Provider:  Arithmetic{},
	})
}
