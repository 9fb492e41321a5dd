// SPDX-License-Identifier: MIT
// Package: validator
//
// Purpose:
//   - Provide a single, canonical source of truth for operation preconditions.
//   - Keep snumpy kernels minimal by delegating nil/rank/shape checks here.
//   - Return sentinels from package array wrapped with a validator tag, so call
//     sites can match them with errors.Is and wrap again uniformly.
//
// Determinism & Performance:
//   - All checks are pure, allocate nothing beyond the error value and run in O(1)
//     (element content was already validated when the arrays were constructed).
//
// Note:
//   - Each composite validator follows a fixed sequence:
//     NotNil → Rank → Axis → Extents. The first failing stage wins.

package validator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/snumpy/array"
)

// Append axes.
const (
	AxisRows = 0 // stack rows (or concatenate vectors)
	AxisCols = 1 // join each row pairwise
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil (including typed nil pointers).
// Complexity: O(1).
func ValidateNotNil(a array.Array) error {
	if array.IsNil(a) {
		return validatorErrorf("ValidateNotNil", array.ErrNilArray)
	}

	return nil
}

// ValidateVector ensures a is a non-nil vector.
func ValidateVector(a array.Array) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	if a.Rank() != array.RankVector {
		return validatorErrorf("ValidateVector", array.ErrRankMismatch)
	}

	return nil
}

// ValidateMatrix ensures a is a non-nil matrix.
func ValidateMatrix(a array.Array) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMatrix", err)
	}
	if a.Rank() != array.RankMatrix {
		return validatorErrorf("ValidateMatrix", array.ErrRankMismatch)
	}

	return nil
}

// ValidateBinaryNotNil – Composite: NotNil(a) → NotNil(b) → same rank.
func ValidateBinaryNotNil(a, b array.Array) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rank() != b.Rank() {
		return validatorErrorf("ValidateBinaryNotNil", array.ErrRankMismatch)
	}

	return nil
}

// ValidateShapeForAppend checks that b can be appended to a along axis.
//
// Rules:
//   - axis must be AxisRows or AxisCols (ErrBadAxis).
//   - a and b must have the same rank; a vector never joins a matrix (ErrRankMismatch).
//   - vectors: only AxisRows, any lengths (ErrBadAxis on AxisCols).
//   - matrices: AxisRows needs equal column counts, AxisCols equal row counts
//     (ErrDimensionMismatch).
//
// Complexity: O(1).
func ValidateShapeForAppend(a, b array.Array, axis int) error {
	const tag = "ValidateShapeForAppend"
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return validatorErrorf(tag, err)
	}
	if axis != AxisRows && axis != AxisCols {
		return validatorErrorf(tag, array.ErrBadAxis)
	}
	if a.Rank() == array.RankVector {
		if axis != AxisRows {
			return validatorErrorf(tag, array.ErrBadAxis)
		}
		return nil
	}

	sa, sb := a.Shape(), b.Shape()
	if axis == AxisRows && sa[1] != sb[1] {
		return validatorErrorf(tag+": Columns", array.ErrDimensionMismatch)
	}
	if axis == AxisCols && sa[0] != sb[0] {
		return validatorErrorf(tag+": Rows", array.ErrDimensionMismatch)
	}

	return nil
}

// ValidateShapeForAddSubtract ensures a and b have identical shapes.
// Errors: ErrNilArray, ErrRankMismatch, ErrDimensionMismatch.
func ValidateShapeForAddSubtract(a, b array.Array) error {
	const tag = "ValidateShapeForAddSubtract"
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return validatorErrorf(tag, err)
	}
	if !a.Shape().Equal(b.Shape()) {
		return validatorErrorf(tag, array.ErrDimensionMismatch)
	}

	return nil
}

// ValidateShapeForDotProduct checks inner-dimension compatibility:
// equal lengths for two vectors, a.Cols == b.Rows for two matrices.
// Errors: ErrNilArray, ErrRankMismatch (vector with matrix), ErrDimensionMismatch.
func ValidateShapeForDotProduct(a, b array.Array) error {
	const tag = "ValidateShapeForDotProduct"
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return validatorErrorf(tag, err)
	}
	sa, sb := a.Shape(), b.Shape()
	if a.Rank() == array.RankVector {
		if sa[0] != sb[0] {
			return validatorErrorf(tag, array.ErrDimensionMismatch)
		}
		return nil
	}
	if sa[1] != sb[0] {
		return validatorErrorf(tag, array.ErrDimensionMismatch)
	}

	return nil
}

// ValidateShapeForGaussianElimination ensures coeffs is a square matrix and
// consts a vector whose length equals the row count.
//
// Errors (first failing stage wins):
//   - ErrNilArray       either argument is nil.
//   - ErrRankMismatch   coeffs is not a matrix or consts is not a vector.
//   - ErrNonSquare      rows != cols (e.g. fewer equations than unknowns).
//   - ErrDimensionMismatch len(consts) != rows.
//
// Complexity: O(1).
func ValidateShapeForGaussianElimination(coeffs, consts array.Array) error {
	const tag = "ValidateShapeForGaussianElimination"
	if err := ValidateMatrix(coeffs); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateVector(consts); err != nil {
		return validatorErrorf(tag, err)
	}
	sc := coeffs.Shape()
	if sc[0] != sc[1] {
		return validatorErrorf(tag, array.ErrNonSquare)
	}
	if consts.Size() != sc[0] {
		return validatorErrorf(tag, array.ErrDimensionMismatch)
	}

	return nil
}

// ValidateShapeForAugment ensures m is a matrix and v a vector with one
// element per row of m.
func ValidateShapeForAugment(m, v array.Array) error {
	const tag = "ValidateShapeForAugment"
	if err := ValidateMatrix(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateVector(v); err != nil {
		return validatorErrorf(tag, err)
	}
	if v.Size() != m.Shape()[0] {
		return validatorErrorf(tag, array.ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndexForGet checks that index addresses an element of container.
//
// Errors:
//   - ErrNilArray    container is nil.
//   - ErrBadIndex    arity differs from the container rank, or a component is negative.
//   - ErrOutOfRange  a component is >= the extent of its axis.
func ValidateIndexForGet(container array.Array, index array.Index) error {
	const tag = "ValidateIndexForGet"
	if err := ValidateNotNil(container); err != nil {
		return validatorErrorf(tag, err)
	}
	if len(index) != container.Rank() {
		return validatorErrorf(tag, array.ErrBadIndex)
	}
	for _, i := range index {
		if i < 0 {
			return validatorErrorf(tag, array.ErrBadIndex)
		}
	}
	shape := container.Shape()
	for axis, i := range index {
		if i >= shape[axis] {
			return validatorErrorf(fmt.Sprintf("%s: axis %d", tag, axis), array.ErrOutOfRange)
		}
	}

	return nil
}

// ValidateShapeForReshape checks that a vector can be partitioned into newShape.
//
// Errors:
//   - ErrNilArray, ErrRankMismatch (x is not a vector).
//   - ErrBadShape (newShape rank not 1 or 2, or a non-positive extent).
//   - ErrDimensionMismatch (product of extents != len(x)).
func ValidateShapeForReshape(x array.Array, newShape array.Shape) error {
	const tag = "ValidateShapeForReshape"
	if err := ValidateVector(x); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := validateShapeTuple(newShape); err != nil {
		return validatorErrorf(tag, err)
	}
	if newShape.Size() != x.Size() {
		return validatorErrorf(tag, array.ErrDimensionMismatch)
	}

	return nil
}

// ValidateShapeForCreate checks construction extents: one (vector) or two
// (matrix) positive integers.
func ValidateShapeForCreate(dims ...int) error {
	if err := validateShapeTuple(array.Shape(dims)); err != nil {
		return validatorErrorf("ValidateShapeForCreate", err)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf scalar arguments.
func ValidateFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return validatorErrorf("ValidateFinite", array.ErrNaNInf)
	}

	return nil
}

// validateShapeTuple accepts rank 1 or 2 with strictly positive extents whose
// product fits in an int.
func validateShapeTuple(s array.Shape) error {
	return s.Validate()
}
