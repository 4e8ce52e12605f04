// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a minimal n-dimensional dense matrix container.
//
// # Overview
//
// A Matrix[T] stores its elements in one flat buffer in row-major order (the
// last dimension varies fastest) together with the size of each dimension.
// Matrices are immutable values: constructors allocate and fill the buffer,
// accessors return copies, and arithmetic produces new matrices.
//
// # Canonical Dimensions
//
// Trailing dimensions of size one are dropped at construction, except that
// the first dimension is always kept:
//
//	matrix.Fill(matrix.Dims{2, 2, 1, 1}, v) // dims [2 2]
//	matrix.Fill(matrix.Dims{1, 1, 1}, v)    // dims [1]
//
// An empty dimension list, or any dimension of size zero, produces the empty
// matrix with no dimensions and no elements.
//
// # Float64 Arithmetic
//
// Zeros, Ones and Add work on Matrix[float64] only; using them with another
// element type does not compile.
//
//	a := matrix.Ones(matrix.Dims{2, 3})
//	b := matrix.Fill(matrix.Dims{2, 3}, 2.0)
//	c, err := matrix.Add(a, b)
//	if errors.Is(err, matrix.ErrShapeMismatch) {
//	    // operands had different shapes
//	}
package matrix
