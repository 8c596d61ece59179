// Package arith defines the arithmetic capability set that generic vector code
// delegates to, and the registry that resolves one implementation per element
// type.
//
// A Provider[T] supplies the elementary operations (add, subtract, multiply,
// divide, negate, square root, ordering, equality and tolerant equality) and
// the identities Zero and One. Providers may also implement Block[T] to offer
// whole-slice kernels, and Hasher[T] to hash elements consistently with Equal.
//
// # Registration
//
// Implementations register themselves from init functions. Several entries may
// exist for the same element type; Lookup selects the highest-priority entry
// whose SIMD requirement is satisfied by the running CPU and caches the result,
// so the decision is made once per type rather than once per call:
//
//	func init() {
//		arith.Register(arith.Entry[fixed.Q16]{
//			Name:     "q16",
//			Provider: fixed.Arithmetic{},
//		})
//	}
//
// Built-in entries cover every Go integer and floating-point kind. float64 has
// an additional, higher-priority entry whose block kernels come from
// github.com/cwbudde/algo-vecmath.
//
// All registrations should complete before the first Lookup for the same type.
package arith
