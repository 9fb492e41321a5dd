// SPDX-License-Identifier: MIT

// Package array - the tagged Array sum type and its shape-directed constructor.
//
// Purpose:
//   - Represent the only two containers the library knows: *Vector (rank 1)
//     and *Matrix (rank 2).
//   - Guarantee well-formedness at construction: non-empty, rectangular,
//     finite. Downstream operations never re-check element content.
//
// Complexity quicksheet:
//   - Rank/Shape/Size: O(1); Values: O(n) copy; At: O(1); New: O(n).

package array

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxNew       = "New"
	ctxNewVector = "NewVector"
	ctxNewMatrix = "NewMatrix"
	ctxFromRows  = "NewMatrixFromRows"
	ctxRow       = "Row"
	ctxColumn    = "Column"
)

// Array is the sealed sum type over *Vector and *Matrix.
// Every implementation is immutable through this interface.
type Array interface {
	// Rank returns 1 for a vector and 2 for a matrix.
	Rank() int

	// Shape returns (n,) or (r, c). The returned slice is a fresh copy.
	Shape() Shape

	// Size returns the total number of elements.
	Size() int

	// Values returns all elements in row-major order as a fresh slice.
	Values() []float64

	// At returns the element at index; the arity must equal Rank().
	// Returns ErrBadIndex on wrong arity or negative components, and
	// ErrOutOfRange on components beyond the extent.
	At(index ...int) (float64, error)

	// String renders the array as nested brackets.
	String() string

	isArray()
}

// Compile-time assertions for interface conformance.
var (
	_ Array        = (*Vector)(nil)
	_ Array        = (*Matrix)(nil)
	_ fmt.Stringer = (*Vector)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// arrayErrorf wraps a sentinel with the constructor or accessor tag.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New builds an Array of the given shape from row-major data.
// Implementation:
//   - Stage 1: validate shape rank (1 or 2), positive extents and an
//     element count that fits in an int.
//   - Stage 2: validate len(data) == shape.Size().
//   - Stage 3: delegate to NewVector or newMatrixFlat (copies data).
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(shape Shape, data []float64) (Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	if len(data) != shape.Size() {
		return nil, arrayErrorf(ctxNew, ErrDimensionMismatch)
	}
	if shape.Rank() == RankVector {
		return NewVector(data)
	}

	return newMatrixFlat(ctxNew, shape[0], shape[1], data)
}

// checkFinite rejects NaN and ±Inf anywhere in xs.
func checkFinite(xs []float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// formatRow writes one bracketed row of values.
func formatRow(xs []float64) string {
	s := "["
	for i, x := range xs {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%g", x)
	}

	return s + "]"
}

// IsNil reports whether a is a nil interface or wraps a nil *Vector / *Matrix.
func IsNil(a Array) bool {
	switch x := a.(type) {
	case nil:
		return true
	case *Vector:
		return x == nil
	case *Matrix:
		return x == nil
	default:
		return false
	}
}
