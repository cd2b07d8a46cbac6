package utils

import "errors"

// Sentinel errors for the numeric containers and solvers in this package.
// Callers match them with errors.Is; context is added with %w at the call site.
var (
	// ErrInvalidSize is returned when a matrix is requested with a negative
	// dimension or with backing data of the wrong length.
	ErrInvalidSize = errors.New("utils: invalid matrix size")

	// ErrDimensionMismatch indicates incompatible operand shapes, including
	// empty operands in a product.
	ErrDimensionMismatch = errors.New("utils: dimension mismatch")

	// ErrSingularSystem is returned when LU factorization meets a pivot below
	// PivotTol. There is no row pivoting to recover from it.
	ErrSingularSystem = errors.New("utils: pivot is zero")

	// ErrEmptyVector is returned by norms that are undefined for no values.
	ErrEmptyVector = errors.New("utils: empty vector")
)
