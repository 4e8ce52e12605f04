// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/ndmatrix/internal/matrix"
)

// Type aliases for public API

// Dims holds the size of each dimension of a matrix.
// Example: Dims{2, 3, 4} describes a 3D matrix with dimensions 2×3×4.
type Dims = matrix.Dims

// Matrix is an immutable n-dimensional dense matrix with elements of type T.
type Matrix[T any] = matrix.Matrix[T]

// ShapeError reports an operation on matrices with different shapes.
type ShapeError = matrix.ShapeError

// ErrShapeMismatch is matched by every ShapeError.
var ErrShapeMismatch = matrix.ErrShapeMismatch

// Creation functions

// Fill creates a matrix with the given dimensions where every element is item.
//
// Example:
//
//	m := matrix.Fill(matrix.Dims{2, 3}, "x")
func Fill[T any](dims Dims, item T) *Matrix[T] {
	return matrix.Fill(dims, item)
}

// FromDefault creates a matrix filled with the zero value of T.
//
// Example:
//
//	m := matrix.FromDefault[int32](matrix.Dims{4, 4})
func FromDefault[T any](dims Dims) *Matrix[T] {
	return matrix.FromDefault[T](dims)
}

// Zeros creates a float64 matrix filled with zeros.
func Zeros(dims Dims) *Matrix[float64] {
	return matrix.Zeros(dims)
}

// Ones creates a float64 matrix filled with ones.
func Ones(dims Dims) *Matrix[float64] {
	return matrix.Ones(dims)
}

// Arithmetic

// Add returns the element-wise sum of two float64 matrices with identical shapes.
// On mismatch it returns a *ShapeError wrapping ErrShapeMismatch.
//
// Example:
//
//	c, err := matrix.Add(matrix.Ones(matrix.Dims{2, 2}), matrix.Ones(matrix.Dims{2, 2}))
func Add(a, b *Matrix[float64]) (*Matrix[float64], error) {
	return matrix.Add(a, b)
}
