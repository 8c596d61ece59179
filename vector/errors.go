package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("vector: nil argument")

	// ErrOutOfRange is returned when a dimension, index or blend factor lies
	// outside its valid bound.
	ErrOutOfRange = errors.New("vector: out of range")

	// ErrDomain is returned when an operation's structural precondition
	// fails: mismatched dimensions, wrong arity, a missing component or a
	// zero-length vector where a direction is needed.
	ErrDomain = errors.New("vector: domain error")

	// ErrNotImplemented is returned by operations without an algorithm.
	ErrNotImplemented = errors.New("vector: not implemented")
)

// RangeError reports a numeric argument outside its bound.
type RangeError struct {
	// Name is the argument, e.g. "index", "dimension" or "blend".
	Name  string
	Value any
	// Bound describes the valid range, e.g. "[0, 3)".
	Bound string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: %s %v out of range %s", e.Name, e.Value, e.Bound)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// DimensionError reports operands whose dimensions do not fit an operation.
type DimensionError struct {
	Op   string
	Dims []int
	// Want is the required dimension, or 0 when operands only have to agree.
	Want int
}

func (e *DimensionError) Error() string {
	parts := make([]string, len(e.Dims))
	for i, d := range e.Dims {
		parts[i] = strconv.Itoa(d)
	}
	if e.Want > 0 {
		return fmt.Sprintf("vector: %s requires dimension %d, got %s", e.Op, e.Want, strings.Join(parts, " and "))
	}
	return fmt.Sprintf("vector: %s dimension mismatch: %s", e.Op, strings.Join(parts, " vs "))
}

func (e *DimensionError) Unwrap() error { return ErrDomain }

// ComponentError reports access to a named component the vector lacks.
type ComponentError struct {
	Component string
	Dimension int
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("vector: component %s not present in vector of dimension %d", e.Component, e.Dimension)
}

func (e *ComponentError) Unwrap() error { return ErrDomain }

func nilArg(op, name string) error {
	return fmt.Errorf("%w: %s %s", ErrNilArgument, op, name)
}
