// SPDX-License-Identifier: MIT

package snumpy

import (
	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/validator"
)

// Append axes, re-exported for callers that only import snumpy.
const (
	AxisRows = validator.AxisRows
	AxisCols = validator.AxisCols
)

// Append concatenates b onto a along axis.
// Implementation:
//   - Stage 1: ValidateShapeForAppend (same rank, legal axis, matching extent
//     on the non-append axis).
//   - Stage 2: vectors concatenate element-wise; matrices stack rows
//     (AxisRows) or join each row of a with the same row of b (AxisCols).
//
// Behavior highlights:
//   - Inputs are never mutated; the result is freshly allocated.
//   - Shapes add along the append axis: (r1, c) + (r2, c) → (r1+r2, c),
//     (r, c1) + (r, c2) → (r, c1+c2), (n1,) + (n2,) → (n1+n2,).
//
// Errors:
//   - ErrNilArray, ErrRankMismatch, ErrBadAxis, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(|a|+|b|), Space O(|a|+|b|).
func Append(a, b array.Array, axis int) (array.Array, error) {
	if err := validator.ValidateShapeForAppend(a, b, axis); err != nil {
		return nil, snumpyErrorf(opAppend, err)
	}
	av, bv := a.Values(), b.Values()

	var (
		shape array.Shape
		data  []float64
	)
	switch {
	case a.Rank() == array.RankVector:
		shape = array.Shape{len(av) + len(bv)}
		data = append(av, bv...)
	case axis == AxisRows:
		sa, sb := a.Shape(), b.Shape()
		shape = array.Shape{sa[0] + sb[0], sa[1]}
		data = append(av, bv...)
	default:
		sa, sb := a.Shape(), b.Shape()
		rows, ca, cb := sa[0], sa[1], sb[1]
		shape = array.Shape{rows, ca + cb}
		data = make([]float64, 0, rows*(ca+cb))
		for i := 0; i < rows; i++ {
			data = append(data, av[i*ca:(i+1)*ca]...)
			data = append(data, bv[i*cb:(i+1)*cb]...)
		}
	}

	out, err := array.New(shape, data)
	if err != nil {
		return nil, snumpyErrorf(opAppend, err)
	}

	return out, nil
}

// AugMatrix returns [m | v]: m with v appended as a trailing column.
// Equivalent to Append(m, column(v), AxisCols).
//
// Errors: ErrNilArray, ErrDimensionMismatch (len(v) != m.Rows()).
// Complexity: O(r*c).
func AugMatrix(m *array.Matrix, v *array.Vector) (*array.Matrix, error) {
	if err := validator.ValidateShapeForAugment(m, v); err != nil {
		return nil, snumpyErrorf(opAugMatrix, err)
	}
	column, err := array.NewMatrix(v.Len(), 1, v.Values())
	if err != nil {
		return nil, snumpyErrorf(opAugMatrix, err)
	}
	out, err := Append(m, column, AxisCols)
	if err != nil {
		return nil, snumpyErrorf(opAugMatrix, err)
	}

	return out.(*array.Matrix), nil
}
