package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vector/arith"
)

// Dot returns the sum of a[i]*b[i], accumulated from index 0 upward starting
// at the provider's Zero.
func Dot[T any](a, b *Vector[T]) (T, error) {
	var zero T
	if err := checkSameDimension("dot", a, b); err != nil {
		return zero, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return zero, err
	}
	return dot(p, a.elems, b.elems), nil
}

func dot[T any](p arith.Provider[T], a, b []T) T {
	acc := p.Zero()
	for i := range a {
		acc = p.Add(acc, p.Multiply(a[i], b[i]))
	}
	return acc
}

// Cross returns the cross product a × b of two 3-dimensional vectors.
func Cross[T any](a, b *Vector[T]) (*Vector[T], error) {
	return CrossTo(nil, a, b)
}

// CrossTo writes a × b into dst. dst may be a or b.
func CrossTo[T any](dst, a, b *Vector[T]) (*Vector[T], error) {
	if a == nil {
		return nil, nilArg("cross", "a")
	}
	if b == nil {
		return nil, nilArg("cross", "b")
	}
	if len(a.elems) != 3 || len(b.elems) != 3 {
		return nil, &DimensionError{Op: "cross", Dims: []int{len(a.elems), len(b.elems)}, Want: 3}
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	a0, a1, a2 := a.elems[0], a.elems[1], a.elems[2]
	b0, b1, b2 := b.elems[0], b.elems[1], b.elems[2]
	x := p.Subtract(p.Multiply(a1, b2), p.Multiply(a2, b1))
	y := p.Subtract(p.Multiply(a2, b0), p.Multiply(a0, b2))
	z := p.Subtract(p.Multiply(a0, b1), p.Multiply(a1, b0))

	dst = into(dst, 3)
	dst.elems[0], dst.elems[1], dst.elems[2] = x, y, z
	return dst, nil
}

// MagnitudeSquared returns the sum of squared elements.
func MagnitudeSquared[T any](a *Vector[T]) (T, error) {
	var zero T
	if a == nil {
		return zero, nilArg("magnitude squared", "a")
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return zero, err
	}
	return dot(p, a.elems, a.elems), nil
}

// Magnitude returns the Euclidean length of a. An empty vector has magnitude
// Zero.
func Magnitude[T any](a *Vector[T]) (T, error) {
	var zero T
	if a == nil {
		return zero, nilArg("magnitude", "a")
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return zero, err
	}
	return magnitude(p, a.elems), nil
}

func magnitude[T any](p arith.Provider[T], a []T) T {
	if len(a) == 0 {
		return p.Zero()
	}
	return p.SquareRoot(dot(p, a, a))
}

// Normalize returns a divided by its magnitude.
func Normalize[T any](a *Vector[T]) (*Vector[T], error) {
	return NormalizeTo(nil, a)
}

// NormalizeTo writes a divided by its magnitude into dst. Empty and
// zero-magnitude vectors have no direction and fail with ErrDomain.
func NormalizeTo[T any](dst, a *Vector[T]) (*Vector[T], error) {
	if a == nil {
		return nil, nilArg("normalize", "a")
	}
	if len(a.elems) == 0 {
		return nil, fmt.Errorf("%w: cannot normalize a vector of dimension 0", ErrDomain)
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	m := magnitude(p, a.elems)
	if p.Equal(m, p.Zero()) {
		return nil, fmt.Errorf("%w: cannot normalize a zero-magnitude vector", ErrDomain)
	}
	dst = into(dst, len(a.elems))
	for i, x := range a.elems {
		dst.elems[i] = p.Divide(x, m)
	}
	return dst, nil
}

// DistanceSquared returns |a - b|² without allocating.
func DistanceSquared[T any](a, b *Vector[T]) (T, error) {
	var zero T
	if err := checkSameDimension("distance", a, b); err != nil {
		return zero, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return zero, err
	}
	return distanceSquared(p, a.elems, b.elems), nil
}

func distanceSquared[T any](p arith.Provider[T], a, b []T) T {
	acc := p.Zero()
	for i := range a {
		d := p.Subtract(a[i], b[i])
		acc = p.Add(acc, p.Multiply(d, d))
	}
	return acc
}

// Distance returns the Euclidean distance |a - b|.
func Distance[T any](a, b *Vector[T]) (T, error) {
	var zero T
	if err := checkSameDimension("distance", a, b); err != nil {
		return zero, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return zero, err
	}
	if len(a.elems) == 0 {
		return p.Zero(), nil
	}
	return p.SquareRoot(distanceSquared(p, a.elems, b.elems)), nil
}

// Angle would return the angle between a and b.
//
// Not implemented: always returns ErrNotImplemented.
func Angle[T any](a, b *Vector[T]) (T, error) {
	var zero T
	return zero, fmt.Errorf("%w: angle between vectors", ErrNotImplemented)
}
