// SPDX-License-Identifier: MIT

package snumpy

import (
	"math"
	"strconv"

	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/validator"
)

// zeroSum is the initial accumulator of inner products.
const zeroSum = 0.0

// Product is the result of DotProduct: a scalar for two vectors, a matrix
// for two matrices. Exactly one of the two is set.
type Product struct {
	scalar float64
	matrix *array.Matrix
}

// Scalar returns the inner product and true when both operands were vectors.
func (p Product) Scalar() (float64, bool) { return p.scalar, p.matrix == nil }

// Matrix returns the matrix product and true when both operands were matrices.
func (p Product) Matrix() (*array.Matrix, bool) { return p.matrix, p.matrix != nil }

// String renders the scalar or the matrix.
func (p Product) String() string {
	if p.matrix != nil {
		return p.matrix.String()
	}
	return formatScalar(p.scalar)
}

// Dot returns Σ a[i]·b[i] for two vectors of equal length.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrNaNInf (overflow).
// Complexity: O(n).
func Dot(a, b *array.Vector) (float64, error) {
	if err := validator.ValidateShapeForDotProduct(a, b); err != nil {
		return 0, snumpyErrorf(opDot, err)
	}
	sum := innerProduct(a.Values(), b.Values())
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		return 0, snumpyErrorf(opDot, array.ErrNaNInf)
	}

	return sum, nil
}

// MatMul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateShapeForDotProduct (A.Cols == B.Rows).
//   - Stage 2: i→k→j loops over row-major buffers, skipping zero A[i,k].
//
// Returns:
//   - *array.Matrix of shape (A.Rows, B.Cols).
//
// Determinism:
//   - Fixed loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MatMul(a, b *array.Matrix) (*array.Matrix, error) {
	if err := validator.ValidateShapeForDotProduct(a, b); err != nil {
		return nil, snumpyErrorf(opMatMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	ad, bd := a.Values(), b.Values()
	res := make([]float64, aRows*bCols)

	var (
		i, j, k    int
		av         float64
		rowA, rowB int
		rowR       int
	)
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = ad[rowA+k]
			if av == 0 {
				continue // no contribution
			}
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res[rowR+j] += av * bd[rowB+j]
			}
		}
	}

	out, err := array.NewMatrix(aRows, bCols, res)
	if err != nil {
		return nil, snumpyErrorf(opMatMul, err)
	}

	return out, nil
}

// DotProduct dispatches on operand rank: Dot for two vectors, MatMul for two
// matrices. Mixed ranks fail with ErrRankMismatch.
func DotProduct(a, b array.Array) (Product, error) {
	if err := validator.ValidateShapeForDotProduct(a, b); err != nil {
		return Product{}, snumpyErrorf(opDotProduct, err)
	}
	switch av := a.(type) {
	case *array.Vector:
		s, err := Dot(av, b.(*array.Vector))
		if err != nil {
			return Product{}, snumpyErrorf(opDotProduct, err)
		}
		return Product{scalar: s}, nil
	case *array.Matrix:
		m, err := MatMul(av, b.(*array.Matrix))
		if err != nil {
			return Product{}, snumpyErrorf(opDotProduct, err)
		}
		return Product{matrix: m}, nil
	default:
		return Product{}, snumpyErrorf(opDotProduct, array.ErrType)
	}
}

// innerProduct sums x[i]*y[i] in index order; callers guarantee equal lengths.
func innerProduct(x, y []float64) float64 {
	sum := zeroSum
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum
}

// formatScalar renders x in the shortest form that round-trips.
func formatScalar(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
