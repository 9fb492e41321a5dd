// SPDX-License-Identifier: MIT

package snumpy

import (
	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/validator"
)

// createArray builds a vector of length dims[0] (one extent) or a
// dims[0]×dims[1] matrix (two extents) with every element set to fill.
// Shared by Full, Ones and Zeros.
func createArray(fill float64, dims []int) (array.Array, error) {
	if err := validator.ValidateShapeForCreate(dims...); err != nil {
		return nil, err
	}
	if err := validator.ValidateFinite(fill); err != nil {
		return nil, err
	}
	shape := array.Shape(dims)
	data := make([]float64, shape.Size())
	for i := range data {
		data[i] = fill
	}

	return array.New(shape, data)
}

// Full returns a vector (Full(f, n)) or matrix (Full(f, r, c)) filled with fill.
// Errors: ErrBadShape on zero, three or more extents, non-positive extents or
// an element count beyond math.MaxInt;
// ErrNaNInf on a non-finite fill.
// Complexity: O(n).
func Full(fill float64, dims ...int) (array.Array, error) {
	a, err := createArray(fill, dims)
	if err != nil {
		return nil, snumpyErrorf(opFull, err)
	}

	return a, nil
}

// Ones returns a vector or matrix of ones; see Full.
func Ones(dims ...int) (array.Array, error) {
	a, err := createArray(1, dims)
	if err != nil {
		return nil, snumpyErrorf("Ones", err)
	}

	return a, nil
}

// Zeros returns a vector or matrix of zeros; see Full.
func Zeros(dims ...int) (array.Array, error) {
	a, err := createArray(0, dims)
	if err != nil {
		return nil, snumpyErrorf("Zeros", err)
	}

	return a, nil
}
