package vector

import "iter"

// Step tells a walk whether to go on.
type Step int

const (
	// Continue proceeds to the next element.
	Continue Step = iota
	// Stop ends the walk after the current element.
	Stop
)

func (s Step) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// Walk calls fn for every element in index order.
func (v *Vector[T]) Walk(fn func(i int, x T)) {
	if v == nil {
		return
	}
	for i, x := range v.elems {
		fn(i, x)
	}
}

// WalkMut calls fn with a pointer to every element in index order; fn may
// modify the element in place.
func (v *Vector[T]) WalkMut(fn func(i int, x *T)) {
	if v == nil {
		return
	}
	for i := range v.elems {
		fn(i, &v.elems[i])
	}
}

// WalkUntil calls fn for elements in index order until fn returns Stop, and
// returns the last Step: Stop if the walk ended early, Continue otherwise.
func (v *Vector[T]) WalkUntil(fn func(i int, x T) Step) Step {
	if v == nil {
		return Continue
	}
	for i, x := range v.elems {
		if fn(i, x) == Stop {
			return Stop
		}
	}
	return Continue
}

// WalkMutUntil is WalkUntil with in-place access to each element.
func (v *Vector[T]) WalkMutUntil(fn func(i int, x *T) Step) Step {
	if v == nil {
		return Continue
	}
	for i := range v.elems {
		if fn(i, &v.elems[i]) == Stop {
			return Stop
		}
	}
	return Continue
}

// All returns an iterator over index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v == nil {
			return
		}
		for i, x := range v.elems {
			if !yield(i, x) {
				return
			}
		}
	}
}
