package vector

import (
	"fmt"
	"hash/maphash"

	"github.com/cwbudde/algo-vector/arith"
)

// Equal reports whether a and b are the same vector, are both nil, or have
// the same dimension and pairwise elements equal under the provider's Equal.
// A nil and a non-nil vector are never equal. Without a provider for T only
// identical pointers compare equal.
func Equal[T any](a, b *Vector[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.elems) != len(b.elems) {
		return false
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return false
	}
	for i := range a.elems {
		if !p.Equal(a.elems[i], b.elems[i]) {
			return false
		}
	}
	return true
}

// EqualWithin is like Equal but compares elements with the provider's
// EqualWithTolerance and the given tolerance.
func EqualWithin[T any](a, b *Vector[T], tolerance T) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.elems) != len(b.elems) {
		return false
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return false
	}
	for i := range a.elems {
		if !p.EqualWithTolerance(a.elems[i], b.elems[i], tolerance) {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive hash of v's elements consistent with Equal:
// vectors that are Equal hash identically under the same seed. Elements are
// written through the provider's arith.Hasher when it has one and through
// their %v form otherwise.
func (v *Vector[T]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	n := v.Dimension()
	maphash.WriteComparable(&h, n)
	if n == 0 {
		return h.Sum64()
	}

	var hasher arith.Hasher[T]
	if p, err := arith.Lookup[T](); err == nil {
		hasher, _ = p.(arith.Hasher[T])
	}
	for _, x := range v.elems {
		if hasher != nil {
			hasher.Hash(&h, x)
		} else {
			fmt.Fprint(&h, x)
		}
		// Separator keeps variable-length encodings from running together.
		_ = h.WriteByte(0)
	}
	return h.Sum64()
}
