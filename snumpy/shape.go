// SPDX-License-Identifier: MIT

package snumpy

import (
	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/validator"
)

// Shape returns (n,) for a vector and (r, c) for a matrix.
// Errors: ErrNilArray.
func Shape(x array.Array) (array.Shape, error) {
	if err := validator.ValidateNotNil(x); err != nil {
		return nil, snumpyErrorf(opShape, err)
	}

	return x.Shape(), nil
}

// Reshape partitions the vector x into newShape, preserving row-major order.
// Implementation:
//   - Stage 1: ValidateShapeForReshape (x is a vector, newShape is (n,) or
//     (r, c) with r*c == len(x)).
//   - Stage 2: build the result from the flat values; (r, c) yields r rows of
//     c consecutive elements, (n,) yields a vector copy.
//
// Errors:
//   - ErrNilArray, ErrRankMismatch, ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// Notes:
//   - Flatten(Reshape(v, s)) reproduces v exactly.
func Reshape(x array.Array, newShape array.Shape) (array.Array, error) {
	if err := validator.ValidateShapeForReshape(x, newShape); err != nil {
		return nil, snumpyErrorf(opReshape, err)
	}
	out, err := array.New(newShape, x.Values())
	if err != nil {
		return nil, snumpyErrorf(opReshape, err)
	}

	return out, nil
}

// Flatten returns the elements of x as a vector in row-major order.
func Flatten(x array.Array) (*array.Vector, error) {
	if err := validator.ValidateNotNil(x); err != nil {
		return nil, snumpyErrorf(opFlatten, err)
	}
	v, err := array.NewVector(x.Values())
	if err != nil {
		return nil, snumpyErrorf(opFlatten, err)
	}

	return v, nil
}

// Get returns the element of container at index: (i,) for a vector, (i, j)
// for a matrix.
// Errors: ErrNilArray, ErrBadIndex (arity/sign), ErrOutOfRange (bounds).
func Get(container array.Array, index array.Index) (float64, error) {
	if err := validator.ValidateIndexForGet(container, index); err != nil {
		return 0, snumpyErrorf(opGet, err)
	}
	x, err := container.At(index...)
	if err != nil {
		return 0, snumpyErrorf(opGet, err)
	}

	return x, nil
}

// Transpose returns mᵀ as a new c×r matrix.
// Complexity: O(r*c).
func Transpose(m *array.Matrix) (*array.Matrix, error) {
	if err := validator.ValidateNotNil(m); err != nil {
		return nil, snumpyErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	src := m.Values()
	dst := make([]float64, len(src))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst[j*r+i] = src[i*c+j]
		}
	}
	out, err := array.NewMatrix(c, r, dst)
	if err != nil {
		return nil, snumpyErrorf(opTranspose, err)
	}

	return out, nil
}
