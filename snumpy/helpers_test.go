// SPDX-License-Identifier: MIT
// Package snumpy_test contains test helpers
//
// Purpose:
//   - Build typed fixtures from literals with a single call.
//   - Keep all data finite and well-formed so failures point at the code under test.

package snumpy_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/validator"
)

// vec ingests a vector literal or fails the test.
func vec(t *testing.T, x any) *array.Vector {
	t.Helper()
	v, err := validator.AsVector(x)
	require.NoError(t, err)

	return v
}

// mtx ingests a matrix literal or fails the test.
func mtx(t *testing.T, x any) *array.Matrix {
	t.Helper()
	m, err := validator.AsMatrix(x)
	require.NoError(t, err)

	return m
}

// rowsOf returns the nested rows of a, which must be a matrix.
func rowsOf(t *testing.T, a array.Array) [][]float64 {
	t.Helper()
	m, ok := a.(*array.Matrix)
	require.Truef(t, ok, "expected *array.Matrix, got %T", a)

	return m.ToRows()
}

// randomMatrix fills an r×c matrix with values in [-10, 10) from a seeded source.
func randomMatrix(t *testing.T, rng *rand.Rand, r, c int) *array.Matrix {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*20 - 10
	}
	m, err := array.NewMatrix(r, c, data)
	require.NoError(t, err)

	return m
}

// diagonallyDominant returns a random n×n matrix with |a_ii| > Σ_{j≠i} |a_ij|,
// which is always non-singular.
func diagonallyDominant(t *testing.T, rng *rand.Rand, n int) *array.Matrix {
	t.Helper()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		var off float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			data[i*n+j] = v
			if v < 0 {
				off -= v
			} else {
				off += v
			}
		}
		data[i*n+i] = off + 1 + rng.Float64()
		if rng.Intn(2) == 0 {
			data[i*n+i] = -data[i*n+i]
		}
	}
	m, err := array.NewMatrix(n, n, data)
	require.NoError(t, err)

	return m
}

// randomVector returns n values in [-10, 10).
func randomVector(t *testing.T, rng *rand.Rand, n int) *array.Vector {
	t.Helper()
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64()*20 - 10
	}
	v, err := array.NewVector(data)
	require.NoError(t, err)

	return v
}
