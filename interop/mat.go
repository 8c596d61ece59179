package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-vector/vector"
)

// gonum refuses zero-sized matrices, so empty vectors cannot be narrowed.
func narrowable(op string, v *vector.Vector[float64]) error {
	if v == nil {
		return fmt.Errorf("%w: %s v", vector.ErrNilArgument, op)
	}
	if v.Dimension() == 0 {
		return fmt.Errorf("%w: %s needs a non-empty vector", vector.ErrDomain, op)
	}
	return nil
}

// Column returns v as an n×1 matrix backed by a copy of its elements.
func Column(v *vector.Vector[float64]) (*mat.Dense, error) {
	if err := narrowable("column", v); err != nil {
		return nil, err
	}
	return mat.NewDense(v.Dimension(), 1, v.Slice()), nil
}

// Row returns v as a 1×n matrix backed by a copy of its elements.
func Row(v *vector.Vector[float64]) (*mat.Dense, error) {
	if err := narrowable("row", v); err != nil {
		return nil, err
	}
	return mat.NewDense(1, v.Dimension(), v.Slice()), nil
}

// VecDense returns v as a gonum column vector backed by a copy of its
// elements.
func VecDense(v *vector.Vector[float64]) (*mat.VecDense, error) {
	if err := narrowable("vecdense", v); err != nil {
		return nil, err
	}
	return mat.NewVecDense(v.Dimension(), v.Slice()), nil
}

// FromVector copies m into a new vector. A nil m yields nil.
func FromVector(m mat.Vector) *vector.Vector[float64] {
	if m == nil {
		return nil
	}
	elems := make([]float64, m.Len())
	for i := range elems {
		elems[i] = m.AtVec(i)
	}
	return vector.New(elems...)
}

// Transform returns m·v. m must have as many columns as v has elements.
func Transform(m mat.Matrix, v *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: transform m", vector.ErrNilArgument)
	}
	src, err := VecDense(v)
	if err != nil {
		return nil, err
	}
	_, c := m.Dims()
	if c != v.Dimension() {
		return nil, &vector.DimensionError{Op: "transform", Dims: []int{c, v.Dimension()}}
	}
	var out mat.VecDense
	out.MulVec(m, src)
	return FromVector(&out), nil
}
