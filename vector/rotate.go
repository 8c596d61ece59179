package vector

import "fmt"

// Rotator rotates vectors by quaternions of type Q. It is implemented by
// quaternion types living outside this package (see package interop).
type Rotator[T, Q any] interface {
	// RotateTo writes v rotated by q into dst, following the same reuse
	// rules as the To functions of this package, and returns it.
	RotateTo(dst *Vector[T], q Q, v *Vector[T]) (*Vector[T], error)
}

// Rotate returns v rotated by q using r.
func Rotate[T, Q any](r Rotator[T, Q], q Q, v *Vector[T]) (*Vector[T], error) {
	return RotateTo(r, nil, q, v)
}

// RotateTo writes v rotated by q into dst using r.
func RotateTo[T, Q any](r Rotator[T, Q], dst *Vector[T], q Q, v *Vector[T]) (*Vector[T], error) {
	if r == nil {
		return nil, nilArg("rotate", "rotator")
	}
	if v == nil {
		return nil, nilArg("rotate", "v")
	}
	return r.RotateTo(dst, q, v)
}

// RotateAxisAngle would rotate v about axis by angle.
//
// Not implemented: always returns ErrNotImplemented.
func RotateAxisAngle[T any](v, axis *Vector[T], angle T) (*Vector[T], error) {
	return nil, fmt.Errorf("%w: axis-angle rotation", ErrNotImplemented)
}
