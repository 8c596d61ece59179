package arith

import (
	"hash/maphash"
	"math"
)

// Integer is the set of Go integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of Go floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the constraint served by the built-in provider.
type Number interface {
	Integer | Float
}

// Builtin implements Provider with Go's native operators.
//
// SquareRoot goes through math.Sqrt and converts back, so integer kinds get
// the truncated root. Negate on unsigned kinds wraps like the - operator.
type Builtin[T Number] struct{}

var (
	_ Provider[float64] = Builtin[float64]{}
	_ Hasher[int]       = Builtin[int]{}
)

func (Builtin[T]) Add(a, b T) T      { return a + b }
func (Builtin[T]) Subtract(a, b T) T { return a - b }
func (Builtin[T]) Multiply(a, b T) T { return a * b }
func (Builtin[T]) Divide(a, b T) T   { return a / b }
func (Builtin[T]) Negate(a T) T      { return -a }

func (Builtin[T]) SquareRoot(a T) T {
	return T(math.Sqrt(float64(a)))
}

func (Builtin[T]) LessThan(a, b T) bool    { return a < b }
func (Builtin[T]) GreaterThan(a, b T) bool { return a > b }
func (Builtin[T]) Equal(a, b T) bool       { return a == b }

func (Builtin[T]) EqualWithTolerance(a, b, tolerance T) bool {
	// Subtract the smaller from the larger so unsigned kinds don't wrap.
	if a > b {
		return a-b <= tolerance
	}
	return b-a <= tolerance
}

func (Builtin[T]) Zero() T { return 0 }
func (Builtin[T]) One() T  { return 1 }

// Hash writes v so that values equal under == hash identically, including
// +0 and -0.
func (Builtin[T]) Hash(h *maphash.Hash, v T) {
	maphash.WriteComparable(h, v)
}
