package vector

import (
	"github.com/cwbudde/algo-vector/arith"
)

func checkSameDimension[T any](op string, a, b *Vector[T]) error {
	if a == nil {
		return nilArg(op, "a")
	}
	if b == nil {
		return nilArg(op, "b")
	}
	if len(a.elems) != len(b.elems) {
		return &DimensionError{Op: op, Dims: []int{len(a.elems), len(b.elems)}}
	}
	return nil
}

// Negate returns -a.
func Negate[T any](a *Vector[T]) (*Vector[T], error) {
	return NegateTo(nil, a)
}

// NegateTo writes -a into dst.
func NegateTo[T any](dst, a *Vector[T]) (*Vector[T], error) {
	if a == nil {
		return nil, nilArg("negate", "a")
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	for i, x := range a.elems {
		dst.elems[i] = p.Negate(x)
	}
	return dst, nil
}

// Add returns a + b.
func Add[T any](a, b *Vector[T]) (*Vector[T], error) {
	return AddTo(nil, a, b)
}

// AddTo writes a + b into dst.
func AddTo[T any](dst, a, b *Vector[T]) (*Vector[T], error) {
	if err := checkSameDimension("add", a, b); err != nil {
		return nil, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	if blk, ok := p.(arith.Block[T]); ok {
		blk.AddBlock(dst.elems, a.elems, b.elems)
		return dst, nil
	}
	for i := range dst.elems {
		dst.elems[i] = p.Add(a.elems[i], b.elems[i])
	}
	return dst, nil
}

// Subtract returns a - b.
func Subtract[T any](a, b *Vector[T]) (*Vector[T], error) {
	return SubtractTo(nil, a, b)
}

// SubtractTo writes a - b into dst.
func SubtractTo[T any](dst, a, b *Vector[T]) (*Vector[T], error) {
	if err := checkSameDimension("subtract", a, b); err != nil {
		return nil, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	if blk, ok := p.(arith.Block[T]); ok {
		blk.SubtractBlock(dst.elems, a.elems, b.elems)
		return dst, nil
	}
	for i := range dst.elems {
		dst.elems[i] = p.Subtract(a.elems[i], b.elems[i])
	}
	return dst, nil
}

// Multiply returns a scaled by s.
func Multiply[T any](a *Vector[T], s T) (*Vector[T], error) {
	return MultiplyTo(nil, a, s)
}

// MultiplyTo writes a scaled by s into dst.
func MultiplyTo[T any](dst, a *Vector[T], s T) (*Vector[T], error) {
	if a == nil {
		return nil, nilArg("multiply", "a")
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	if blk, ok := p.(arith.Block[T]); ok {
		blk.ScaleBlock(dst.elems, a.elems, s)
		return dst, nil
	}
	for i, x := range a.elems {
		dst.elems[i] = p.Multiply(x, s)
	}
	return dst, nil
}

// Divide returns a with every element divided by s. A zero s behaves as T's
// own division does.
func Divide[T any](a *Vector[T], s T) (*Vector[T], error) {
	return DivideTo(nil, a, s)
}

// DivideTo writes a divided by s into dst.
func DivideTo[T any](dst, a *Vector[T], s T) (*Vector[T], error) {
	if a == nil {
		return nil, nilArg("divide", "a")
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	for i, x := range a.elems {
		dst.elems[i] = p.Divide(x, s)
	}
	return dst, nil
}

// MultiplyElements returns the element-wise (Hadamard) product of a and b.
func MultiplyElements[T any](a, b *Vector[T]) (*Vector[T], error) {
	return MultiplyElementsTo(nil, a, b)
}

// MultiplyElementsTo writes the element-wise product of a and b into dst.
func MultiplyElementsTo[T any](dst, a, b *Vector[T]) (*Vector[T], error) {
	if err := checkSameDimension("multiply elements", a, b); err != nil {
		return nil, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	if blk, ok := p.(arith.Block[T]); ok {
		blk.MulBlock(dst.elems, a.elems, b.elems)
		return dst, nil
	}
	for i := range dst.elems {
		dst.elems[i] = p.Multiply(a.elems[i], b.elems[i])
	}
	return dst, nil
}

// Min returns the element-wise minimum of a and b.
func Min[T any](a, b *Vector[T]) (*Vector[T], error) {
	return MinTo(nil, a, b)
}

// MinTo writes the element-wise minimum of a and b into dst.
func MinTo[T any](dst, a, b *Vector[T]) (*Vector[T], error) {
	if err := checkSameDimension("min", a, b); err != nil {
		return nil, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	for i := range dst.elems {
		x, y := a.elems[i], b.elems[i]
		if p.LessThan(y, x) {
			x = y
		}
		dst.elems[i] = x
	}
	return dst, nil
}

// Max returns the element-wise maximum of a and b.
func Max[T any](a, b *Vector[T]) (*Vector[T], error) {
	return MaxTo(nil, a, b)
}

// MaxTo writes the element-wise maximum of a and b into dst.
func MaxTo[T any](dst, a, b *Vector[T]) (*Vector[T], error) {
	if err := checkSameDimension("max", a, b); err != nil {
		return nil, err
	}
	p, err := arith.Lookup[T]()
	if err != nil {
		return nil, err
	}
	dst = into(dst, len(a.elems))
	for i := range dst.elems {
		x, y := a.elems[i], b.elems[i]
		if p.GreaterThan(y, x) {
			x = y
		}
		dst.elems[i] = x
	}
	return dst, nil
}
