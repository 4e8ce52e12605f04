package matrix

// Zeros creates a float64 matrix filled with zeros.
//
// Example:
//
//	m := matrix.Zeros(matrix.Dims{3, 4})
func Zeros(dims Dims) *Matrix[float64] {
	return Fill(dims, 0.0)
}

// Ones creates a float64 matrix filled with ones.
func Ones(dims Dims) *Matrix[float64] {
	return Fill(dims, 1.0)
}

// Add performs element-wise addition of two float64 matrices and returns a new matrix.
// Neither operand is modified.
//
// The operands must have identical canonical dimensions; there is no
// broadcasting. On mismatch Add returns a *ShapeError wrapping ErrShapeMismatch.
//
// Example:
//
//	a := matrix.Ones(matrix.Dims{2, 2})
//	b := matrix.Fill(matrix.Dims{2, 2}, 2.0)
//	c, err := matrix.Add(a, b) // every element is 3
func Add(a, b *Matrix[float64]) (*Matrix[float64], error) {
	if !a.dims.Equal(b.dims) {
		return nil, &ShapeError{Op: "add", Left: a.Dims(), Right: b.Dims()}
	}

	// Equal canonical dims imply equal buffer lengths.
	data := make([]float64, len(a.data))
	for i := range data {
		data[i] = a.data[i] + b.data[i]
	}

	return &Matrix[float64]{
		data: data,
		dims: a.Dims(),
	}, nil
}
