package interop

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/cwbudde/algo-vector/vector"
)

// QuatRotator rotates 3-D float64 vectors by quaternions: v' = q·v·q⁻¹,
// with v taken as the pure quaternion (0, x, y, z). q need not be a unit
// quaternion; the inverse cancels its scale.
type QuatRotator struct{}

var _ vector.Rotator[float64, quat.Number] = QuatRotator{}

// RotateTo writes v rotated by q into dst. v must be 3-dimensional and q
// must be non-zero.
func (QuatRotator) RotateTo(dst *vector.Vector[float64], q quat.Number, v *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if v == nil {
		return nil, fmt.Errorf("%w: rotate v", vector.ErrNilArgument)
	}
	if v.Dimension() != 3 {
		return nil, &vector.DimensionError{Op: "rotate", Dims: []int{v.Dimension()}, Want: 3}
	}
	if q == (quat.Number{}) {
		return nil, fmt.Errorf("%w: cannot rotate by a zero quaternion", vector.ErrDomain)
	}

	var p [3]float64
	v.CopyTo(p[:])
	r := quat.Mul(quat.Mul(q, quat.Number{Imag: p[0], Jmag: p[1], Kmag: p[2]}), quat.Inv(q))

	dst, err := vector.Reuse(dst, 3)
	if err != nil {
		return nil, err
	}
	for i, x := range [3]float64{r.Imag, r.Jmag, r.Kmag} {
		if err := dst.Set(i, x); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// AxisAngle returns the unit quaternion rotating by angle radians about axis.
// axis must be 3-dimensional and non-zero.
func AxisAngle(axis *vector.Vector[float64], angle float64) (quat.Number, error) {
	if axis == nil {
		return quat.Number{}, fmt.Errorf("%w: axis-angle axis", vector.ErrNilArgument)
	}
	if axis.Dimension() != 3 {
		return quat.Number{}, &vector.DimensionError{Op: "axis-angle", Dims: []int{axis.Dimension()}, Want: 3}
	}
	u, err := vector.Normalize(axis)
	if err != nil {
		return quat.Number{}, err
	}
	s, c := math.Sincos(angle / 2)
	e := u.Slice()
	return quat.Number{Real: c, Imag: s * e[0], Jmag: s * e[1], Kmag: s * e[2]}, nil
}
