package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when two operands of an elementwise
	// operation do not have identical rows and cols.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIncompatibleProduct is returned by MatrixProduct when a.Cols() != b.Rows().
	ErrIncompatibleProduct = errors.New("matrix: incompatible shapes for matrix product")

	// ErrInvalidSerializedState is returned when a serialized matrix is missing
	// structural fields, is ragged, or carries non-numeric entries.
	ErrInvalidSerializedState = errors.New("matrix: invalid serialized state")
)

// shapeErrorf decorates err with the operation name and both operand shapes.
func shapeErrorf(op string, a, b *Matrix, err error) error {
	return fmt.Errorf("%s(%dx%d, %dx%d): %w", op, a.rows, a.cols, b.rows, b.cols, err)
}

func sameShape(a, b *Matrix) bool {
	return a.rows == b.rows && a.cols == b.cols
}
