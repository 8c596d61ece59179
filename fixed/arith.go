package fixed

import (
	"hash/maphash"
	"math"

	"github.com/cwbudde/algo-vector/arith"
)

// Arithmetic is the arith.Provider for Q16. Addition and subtraction wrap on
// overflow like int32. Multiply and Divide compute in 64 bits and truncate.
type Arithmetic struct{}

var (
	_ arith.Provider[Q16] = Arithmetic{}
	_ arith.Hasher[Q16]   = Arithmetic{}
)

func (Arithmetic) Add(a, b Q16) Q16      { return a + b }
func (Arithmetic) Subtract(a, b Q16) Q16 { return a - b }
func (Arithmetic) Negate(a Q16) Q16      { return -a }

func (Arithmetic) Multiply(a, b Q16) Q16 {
	return Q16((int64(a) * int64(b)) >> fracBits)
}

// Divide panics when b is zero, like integer division.
func (Arithmetic) Divide(a, b Q16) Q16 {
	return Q16((int64(a) << fracBits) / int64(b))
}

// SquareRoot returns the truncated root. Non-positive inputs yield 0.
func (Arithmetic) SquareRoot(a Q16) Q16 {
	if a <= 0 {
		return 0
	}
	// a<<16 fits in 47 bits, so the float64 root is exact before truncation.
	return Q16(math.Sqrt(float64(int64(a) << fracBits)))
}

func (Arithmetic) LessThan(a, b Q16) bool    { return a < b }
func (Arithmetic) GreaterThan(a, b Q16) bool { return a > b }
func (Arithmetic) Equal(a, b Q16) bool       { return a == b }

func (Arithmetic) EqualWithTolerance(a, b, tolerance Q16) bool {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return d <= int64(tolerance)
}

func (Arithmetic) Zero() Q16 { return 0 }
func (Arithmetic) One() Q16  { return One }

func (Arithmetic) Hash(h *maphash.Hash, v Q16) {
	maphash.WriteComparable(h, v)
}

func init() {
	arith.Register(arith.Entry[Q16]{
		Name:      "q16.16",
		SIMDLevel: arith.SIMDNone,
		Provider:  Arithmetic{},
	})
}
