// Package vector implements a fixed-length n-dimensional vector over any
// element type that has an arith.Provider.
//
// Every elementary operation on elements goes through the provider selected
// for T by the arith registry. The provider is looked up once per call, never
// per element, and providers that implement arith.Block process whole slices
// at once.
//
// # Pure and output forms
//
// Each operation that produces a vector comes in two shapes:
//
//	sum, err := vector.Add(a, b)        // allocates the result
//	sum, err = vector.AddTo(sum, a, b)  // reuses sum's storage
//
// The To form writes into dst when its dimension already matches the result,
// replaces dst's storage when it does not, and allocates when dst is nil. dst
// may be one of the operands.
//
// # Errors
//
// Shape checks happen before any element is touched. Failures wrap one of
// ErrNilArgument, ErrOutOfRange, ErrDomain or ErrNotImplemented; RangeError,
// DimensionError and ComponentError carry the offending values.
package vector
