// SPDX-License-Identifier: MIT

package snumpy

import (
	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/validator"
)

// addSub computes out = a + sign*b elementwise for sign ∈ {+1, -1}.
// Shared by Add and Subtract: one validation, one flat loop, one allocation.
//
// Determinism:
//   - Single flat walk 0..n-1 over row-major values.
//
// Complexity:
//   - Time O(n), Space O(n).
func addSub(a, b array.Array, sign float64, opTag string) (array.Array, error) {
	if err := validator.ValidateShapeForAddSubtract(a, b); err != nil {
		return nil, snumpyErrorf(opTag, err)
	}
	av, bv := a.Values(), b.Values()
	for i := range av {
		av[i] += sign * bv[i]
	}
	out, err := array.New(a.Shape(), av)
	if err != nil {
		return nil, snumpyErrorf(opTag, err)
	}

	return out, nil
}

// Add returns a + b elementwise. a and b must have identical shapes.
// Errors: ErrNilArray, ErrRankMismatch, ErrDimensionMismatch, ErrNaNInf (overflow).
func Add(a, b array.Array) (array.Array, error) { return addSub(a, b, +1, opAdd) }

// Subtract returns a - b elementwise. a and b must have identical shapes.
// Subtract(Add(a, b), b) equals a for exactly representable values.
func Subtract(a, b array.Array) (array.Array, error) { return addSub(a, b, -1, opSubtract) }

// ScalarMultiply returns k·x with the same shape as x.
// Errors: ErrNilArray, ErrNaNInf (k not finite, or overflow).
// Complexity: O(n).
func ScalarMultiply(x array.Array, k float64) (array.Array, error) {
	if err := validator.ValidateNotNil(x); err != nil {
		return nil, snumpyErrorf(opScalarMul, err)
	}
	if err := validator.ValidateFinite(k); err != nil {
		return nil, snumpyErrorf(opScalarMul, err)
	}
	values := x.Values()
	for i := range values {
		values[i] *= k
	}
	out, err := array.New(x.Shape(), values)
	if err != nil {
		return nil, snumpyErrorf(opScalarMul, err)
	}

	return out, nil
}
