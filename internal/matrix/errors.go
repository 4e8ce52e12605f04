package matrix

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when an operation requires operands of identical shape.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError describes which operation failed and the shapes involved.
// It matches ErrShapeMismatch with errors.Is.
type ShapeError struct {
	Op    string // Operation name (e.g., "add")
	Left  Dims   // Canonical dimensions of the left operand
	Right Dims   // Canonical dimensions of the right operand
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: cannot combine matrices with different shapes %v and %v", e.Op, e.Left, e.Right)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
