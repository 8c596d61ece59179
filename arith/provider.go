package arith

import "hash/maphash"

// Arithmetic is the set of elementary operations on T.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Subtract(a, b T) T
	Multiply(a, b T) T
	// Divide follows T's own behavior for a zero divisor.
	Divide(a, b T) T
	Negate(a T) T
	SquareRoot(a T) T
	LessThan(a, b T) bool
	GreaterThan(a, b T) bool
	Equal(a, b T) bool
	// EqualWithTolerance reports whether |a-b| <= tolerance.
	EqualWithTolerance(a, b, tolerance T) bool
}

// Constants supplies the additive and multiplicative identities of T.
type Constants[T any] interface {
	Zero() T
	One() T
}

// Provider is the complete capability set consumed by the vector package.
type Provider[T any] interface {
	Arithmetic[T]
	Constants[T]
}

// Block is an optional capability for providers that can process whole
// slices at once. All slices passed to a Block method have equal length and
// dst may be the same slice as any source.
type Block[T any] interface {
	// AddBlock computes dst[i] = a[i] + b[i].
	AddBlock(dst, a, b []T)

	// SubtractBlock computes dst[i] = a[i] - b[i].
	SubtractBlock(dst, a, b []T)

	// MulBlock computes dst[i] = a[i] * b[i].
	MulBlock(dst, a, b []T)

	// ScaleBlock computes dst[i] = src[i] * scalar.
	ScaleBlock(dst, src []T, scalar T)
}

// Hasher is an optional capability for providers whose Equal differs from
// Go's == on T, or whose T is not comparable. Values that are Equal must
// write identical bytes.
type Hasher[T any] interface {
	Hash(h *maphash.Hash, v T)
}
