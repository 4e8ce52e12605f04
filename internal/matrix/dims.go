package matrix

import (
	"fmt"
	"math"
	"slices"
)

// Dims holds the size of each dimension of a matrix.
// The number of entries is the matrix rank.
type Dims []int

// NumElements returns the number of elements a matrix with these dimensions holds.
// Unlike a scalar shape, an empty Dims describes an empty matrix and holds nothing.
// Any zero or negative dimension makes the count 0.
// Panics if the product of the dimensions overflows int.
func (d Dims) NumElements() int {
	if len(d) == 0 || slices.ContainsFunc(d, func(dim int) bool { return dim <= 0 }) {
		return 0
	}
	n := 1
	for _, dim := range d {
		if n > math.MaxInt/dim {
			panic(fmt.Sprintf("matrix: dimensions %v overflow int", d))
		}
		n *= dim
	}
	return n
}

// Canonical returns a copy of d with trailing size-one dimensions removed.
//
// The first dimension is never removed, so a non-empty Dims keeps at least
// one entry:
//
//	[2, 2, 1, 1] → [2, 2]
//	[2, 1, 1]    → [2]
//	[1, 1, 1]    → [1]
//	[]           → []
func (d Dims) Canonical() Dims {
	out := d.Clone()
	if len(out) == 0 {
		return out
	}

	cutoff := 0
	for i := len(out) - 1; i > 0 && out[i] == 1; i-- {
		cutoff++
	}
	return out[:len(out)-cutoff]
}

// Equal checks if two dimension sequences are equal.
func (d Dims) Equal(other Dims) bool {
	return slices.Equal(d, other)
}

// Clone returns a copy of the dimensions. The copy is never nil.
func (d Dims) Clone() Dims {
	return append(Dims{}, d...)
}

// Strides calculates row-major strides: the last dimension varies fastest and
// stride[i] is the product of all dimensions after i.
func (d Dims) Strides() []int {
	strides := make([]int, len(d))
	step := 1
	for i, dim := range slices.Backward(d) {
		strides[i] = step
		step *= dim
	}
	return strides
}

// String renders the dimensions as [2 3 4].
func (d Dims) String() string {
	return fmt.Sprint([]int(d))
}
