// Package interop connects float64 vectors to gonum.
//
// Column, Row and VecDense narrow a vector into gonum matrix types and
// FromVector widens any mat.Vector back. Transform applies a matrix to a
// vector. QuatRotator is the vector.Rotator for gonum quaternions.
package interop
