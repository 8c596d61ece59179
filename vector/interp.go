package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vector/arith"
)

// Lerp returns a + t·(b − a). t must lie in [Zero, One].
func Lerp[T any](a, b *Vector[T], t T) (*Vector[T], error) {
	return LerpTo(nil, a, b, t)
}

// LerpTo writes a + t·(b − a) into dst.
func LerpTo[T any](dst, a, b *Vector[T], t T) (*Vector[T], error) {
	if err := checkSameDimension("lerp", a, b); err != nil {
		return nil, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	if !inUnitRange(p, t) {
		return nil, &RangeError{Name: "blend", Value: t, Bound: fmt.Sprintf("[%v, %v]", p.Zero(), p.One())}
	}
	dst = into(dst, len(a.elems))
	for i := range dst.elems {
		x := a.elems[i]
		dst.elems[i] = p.Add(x, p.Multiply(t, p.Subtract(b.elems[i], x)))
	}
	return dst, nil
}

// inUnitRange reports whether Zero <= t <= One. Values that compare false
// against both bounds, such as NaN, are outside.
func inUnitRange[T any](p arith.Provider[T], t T) bool {
	lo := p.GreaterThan(t, p.Zero()) || p.Equal(t, p.Zero())
	hi := p.LessThan(t, p.One()) || p.Equal(t, p.One())
	return lo && hi
}

// Barycentric returns a + u·(b − a) + v·(c − a).
func Barycentric[T any](a, b, c *Vector[T], u, v T) (*Vector[T], error) {
	return BarycentricTo(nil, a, b, c, u, v)
}

// BarycentricTo writes a + u·(b − a) + v·(c − a) into dst. The weights are
// not range checked.
func BarycentricTo[T any](dst, a, b, c *Vector[T], u, v T) (*Vector[T], error) {
	switch {
	case a == nil:
		return nil, nilArg("barycentric", "a")
	case b == nil:
		return nil, nilArg("barycentric", "b")
	case c == nil:
		return nil, nilArg("barycentric", "c")
	}
	if len(a.elems) != len(b.elems) || len(a.elems) != len(c.elems) {
		return nil, &DimensionError{Op: "barycentric", Dims: []int{len(a.elems), len(b.elems), len(c.elems)}}
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	for i := range dst.elems {
		x := a.elems[i]
		du := p.Multiply(u, p.Subtract(b.elems[i], x))
		dv := p.Multiply(v, p.Subtract(c.elems[i], x))
		dst.elems[i] = p.Add(p.Add(x, du), dv)
	}
	return dst, nil
}

// Slerp would interpolate along the great arc between a and b.
//
// Not implemented: always returns ErrNotImplemented.
func Slerp[T any](a, b *Vector[T], t T) (*Vector[T], error) {
	return nil, fmt.Errorf("%w: spherical interpolation", ErrNotImplemented)
}
