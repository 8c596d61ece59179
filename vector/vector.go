package vector

import (
	"fmt"
	"slices"
	"strconv"
)

// Vector is a fixed-length sequence of T. Its length never changes after
// construction. The zero value and a nil *Vector both have dimension 0.
type Vector[T any] struct {
	elems []T
}

// Make returns a vector of dim default-valued elements.
func Make[T any](dim int) (*Vector[T], error) {
	if dim < 0 {
		return nil, &RangeError{Name: "dimension", Value: dim, Bound: "[0, +inf)"}
	}
	return &Vector[T]{elems: make([]T, dim)}, nil
}

// New returns a vector holding a copy of elems. The vector never aliases the
// caller's slice.
func New[T any](elems ...T) *Vector[T] {
	return &Vector[T]{elems: slices.Clone(elems)}
}

// FromScalar returns the one-dimensional vector [s].
func FromScalar[T any](s T) *Vector[T] {
	return &Vector[T]{elems: []T{s}}
}

// Generate returns a vector of dimension dim whose element i is fn(i). fn is
// called once per index in ascending order.
func Generate[T any](dim int, fn func(i int) T) (*Vector[T], error) {
	if fn == nil {
		return nil, nilArg("generate", "generator")
	}
	v, err := Make[T](dim)
	if err != nil {
		return nil, err
	}
	for i := range v.elems {
		v.elems[i] = fn(i)
	}
	return v, nil
}

// Dimension returns the number of elements.
func (v *Vector[T]) Dimension() int {
	if v == nil {
		return 0
	}
	return len(v.elems)
}

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.elems[i], nil
}

// Set stores x at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.elems[i] = x
	return nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if v == nil {
		return nilArg("index", "receiver")
	}
	if i < 0 || i >= len(v.elems) {
		return &RangeError{Name: "index", Value: i, Bound: "[0, " + strconv.Itoa(len(v.elems)) + ")"}
	}
	return nil
}

var componentNames = [...]string{"X", "Y", "Z"}

func (v *Vector[T]) component(i int) (T, error) {
	if v.Dimension() <= i {
		var zero T
		return zero, &ComponentError{Component: componentNames[i], Dimension: v.Dimension()}
	}
	return v.elems[i], nil
}

func (v *Vector[T]) setComponent(i int, x T) error {
	if v.Dimension() <= i {
		return &ComponentError{Component: componentNames[i], Dimension: v.Dimension()}
	}
	v.elems[i] = x
	return nil
}

// X returns element 0.
func (v *Vector[T]) X() (T, error) { return v.component(0) }

// Y returns element 1.
func (v *Vector[T]) Y() (T, error) { return v.component(1) }

// Z returns element 2.
func (v *Vector[T]) Z() (T, error) { return v.component(2) }

// SetX stores x at element 0.
func (v *Vector[T]) SetX(x T) error { return v.setComponent(0, x) }

// SetY stores y at element 1.
func (v *Vector[T]) SetY(y T) error { return v.setComponent(1, y) }

// SetZ stores z at element 2.
func (v *Vector[T]) SetZ(z T) error { return v.setComponent(2, z) }

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return slices.Clone(v.elems)
}

// CopyTo copies the elements into dst and returns the number copied, which is
// the smaller of len(dst) and the dimension.
func (v *Vector[T]) CopyTo(dst []T) int {
	if v == nil {
		return 0
	}
	return copy(dst, v.elems)
}

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	return &Vector[T]{elems: slices.Clone(v.elems)}
}

// String formats v as "[e0 e1 ...]".
func (v *Vector[T]) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprint(v.elems)
}

// into returns dst ready to hold n elements: reused when its dimension is
// already n, given new storage when it is not, and allocated when nil.
func into[T any](dst *Vector[T], n int) *Vector[T] {
	if dst == nil {
		return &Vector[T]{elems: make([]T, n)}
	}
	if len(dst.elems) != n {
		dst.elems = make([]T, n)
	}
	return dst
}

// Reuse returns dst prepared to receive dim elements under the same rules the
// To functions follow. Collaborators outside this package, such as Rotator
// implementations, use it to honour the output-parameter contract. Reused
// storage keeps its previous contents.
func Reuse[T any](dst *Vector[T], dim int) (*Vector[T], error) {
	if dim < 0 {
		return nil, &RangeError{Name: "dimension", Value: dim, Bound: "[0, +inf)"}
	}
	return into(dst, dim), nil
}
