// Package matrix provides the core n-dimensional dense matrix container.
package matrix

import (
	"fmt"
	"reflect"
)

// Matrix is an n-dimensional dense matrix holding elements of type T.
//
// Elements are stored in a single flat buffer in row-major order (the last
// dimension varies fastest). The dimensions are always kept in canonical form,
// see Dims.Canonical. A Matrix is never mutated after construction.
type Matrix[T any] struct {
	data []T
	dims Dims
}

// Fill creates a matrix with the given dimensions where every element is a
// copy of item. Copies are made by assignment, so pointer, slice and map
// elements share what they refer to.
//
// The matrix is empty (no dimensions, no elements) if dims is empty or if any
// dimension is zero. Fill panics if the number of elements overflows int.
//
// Example:
//
//	m := matrix.Fill(matrix.Dims{2, 2, 1}, "x") // dims [2 2], 4 elements
func Fill[T any](dims Dims, item T) *Matrix[T] {
	// Zero or negative dimensions anywhere make the whole matrix empty.
	size := dims.NumElements()
	if size == 0 {
		return &Matrix[T]{
			data: []T{},
			dims: Dims{},
		}
	}

	data := make([]T, size)
	for i := range data {
		data[i] = item
	}

	return &Matrix[T]{
		data: data,
		dims: dims.Canonical(),
	}
}

// FromDefault creates a matrix with the given dimensions filled with the zero
// value of T.
func FromDefault[T any](dims Dims) *Matrix[T] {
	var zero T
	return Fill(dims, zero)
}

// Dims returns a copy of the matrix's canonical dimensions.
func (m *Matrix[T]) Dims() Dims {
	return m.dims.Clone()
}

// Rank returns the number of dimensions. The empty matrix has rank 0.
func (m *Matrix[T]) Rank() int {
	return len(m.dims)
}

// Len returns the total number of elements.
func (m *Matrix[T]) Len() int {
	return len(m.data)
}

// IsEmpty reports whether the matrix holds no elements.
func (m *Matrix[T]) IsEmpty() bool {
	return len(m.data) == 0
}

// Data returns a copy of the flat row-major element buffer.
func (m *Matrix[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// At returns the element at the given indices, one per dimension.
// Panics if the number of indices does not match the rank or any index is out of bounds.
//
// Example:
//
//	m := matrix.Zeros(matrix.Dims{3, 4})
//	value := m.At(1, 2) // Row 1, column 2
func (m *Matrix[T]) At(indices ...int) T {
	if len(indices) != len(m.dims) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(m.dims), len(indices)))
	}

	offset := 0
	strides := m.dims.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= m.dims[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, m.dims[i]))
		}
		offset += idx * strides[i]
	}

	return m.data[offset]
}

// String returns a human-readable description of the matrix, e.g. Matrix[float64][2 3].
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix[%s]%v", reflect.TypeFor[T](), m.dims)
}
