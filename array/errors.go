// SPDX-License-Identifier: MIT
// Package array: sentinel error set shared by array, validator and snumpy.
// All operations MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package array

import (
	"errors"
	"fmt"
)

// ERROR TAXONOMY
// --------------
// Three category sentinels classify every failure:
//
//	ErrType       wrong container kind (not a sequence, nil array, malformed rows)
//	ErrValue      right container, invalid content or shape
//	ErrOutOfRange well-formed index beyond the container's extent
//
// Every specific sentinel below wraps exactly one category, so a caller can
// match either the precise condition or its category:
//
//	errors.Is(err, array.ErrSingular) // precise
//	errors.Is(err, array.ErrValue)    // category
var (
	// ErrType signals an input of the wrong container kind.
	ErrType = errors.New("snumpy: type error")

	// ErrValue signals an input of the right kind with invalid content or shape.
	ErrValue = errors.New("snumpy: value error")

	// ErrOutOfRange signals an index component at or beyond the extent of its axis.
	ErrOutOfRange = errors.New("snumpy: index out of range")
)

// Type errors.
var (
	// ErrNilArray indicates a nil Array (or nil *Vector / *Matrix) argument.
	ErrNilArray = kindError(ErrType, "nil array")

	// ErrNotSequence indicates a scalar, string, map or other non-sequence input.
	ErrNotSequence = kindError(ErrType, "not a sequence")

	// ErrNotRows indicates a matrix whose rows are not themselves sequences.
	ErrNotRows = kindError(ErrType, "matrix rows must be sequences")

	// ErrNotFlat indicates a vector whose elements are all sequences, i.e. a
	// nested (matrix-like) input where a one-dimensional sequence is required.
	ErrNotFlat = kindError(ErrType, "vector must be one-dimensional")
)

// Value errors.
var (
	// ErrEmpty indicates a vector of length 0, a matrix with no rows, or an empty row.
	ErrEmpty = kindError(ErrValue, "empty array")

	// ErrNonNumeric indicates an element that is not an integer or floating-point scalar.
	ErrNonNumeric = kindError(ErrValue, "non-numeric element")

	// ErrRagged indicates rows of unequal length, or scalars mixed with rows.
	ErrRagged = kindError(ErrValue, "rows are not rectangular")

	// ErrNaNInf indicates a NaN or ±Inf element or scalar argument.
	ErrNaNInf = kindError(ErrValue, "NaN or Inf encountered")

	// ErrBadShape indicates a shape of the wrong rank or with non-positive extents.
	ErrBadShape = kindError(ErrValue, "invalid shape")

	// ErrBadIndex indicates an index of the wrong arity, type or sign.
	ErrBadIndex = kindError(ErrValue, "invalid index")

	// ErrBadAxis indicates an axis outside {0, 1}, or axis 1 on vectors.
	ErrBadAxis = kindError(ErrValue, "invalid axis")

	// ErrRankMismatch indicates a vector where a matrix is required (or the reverse).
	ErrRankMismatch = kindError(ErrValue, "rank mismatch")

	// ErrDimensionMismatch indicates incompatible extents between operands.
	ErrDimensionMismatch = kindError(ErrValue, "dimension mismatch")

	// ErrNonSquare indicates that a square matrix was required.
	ErrNonSquare = kindError(ErrValue, "matrix is not square")

	// ErrSingular indicates a linear system without a unique solution,
	// detected as a pivot that is zero within tolerance.
	ErrSingular = kindError(ErrValue, "singular system")
)

// kindError builds a specific sentinel that wraps its category.
func kindError(kind error, msg string) error {
	return fmt.Errorf("%w: %s", kind, msg)
}
