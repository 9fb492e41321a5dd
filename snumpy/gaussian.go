// SPDX-License-Identifier: MIT

package snumpy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/snumpy/array"
	"github.com/katalvlaran/snumpy/validator"
)

// GaussianElimination solves the square linear system coeffs · x = consts.
// Implementation:
//   - Stage 1: ValidateShapeForGaussianElimination (square coeffs, one
//     constant per equation). Nothing is computed on failure.
//   - Stage 2: build the augmented matrix [coeffs | consts].
//   - Stage 3: forward elimination column by column. With PartialPivoting the
//     row holding the largest |entry| of the column is swapped into the pivot
//     position; entries below the pivot are cleared by subtracting the pivot
//     row scaled by entry/pivot.
//   - Stage 4: back-substitution from the last row upward, dividing by the
//     diagonal pivot.
//   - Stage 5: optional rounding (WithRoundTo).
//
// Behavior highlights:
//   - A pivot with |p| <= eps·max|coeffs| means the system has no
//     unique solution: dependent rows (one row a multiple of another) and
//     inconsistent systems both fail with ErrSingular.
//   - Inputs are never mutated; elimination runs on a private copy.
//
// Inputs:
//   - coeffs: n×n coefficient matrix.
//   - consts: right-hand side, length n.
//   - opts:   WithEpsilon, WithPivoting, WithRoundTo.
//
// Returns:
//   - *array.Vector: the n solution components.
//
// Errors:
//   - ErrNilArray, ErrNonSquare, ErrDimensionMismatch (validation).
//   - ErrSingular (elimination), wrapped with the failing pivot column.
//
// Determinism:
//   - Fixed column order; ties in partial pivoting keep the upper row.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func GaussianElimination(coeffs *array.Matrix, consts *array.Vector, opts ...Option) (*array.Vector, error) {
	if err := validator.ValidateShapeForGaussianElimination(coeffs, consts); err != nil {
		return nil, snumpyErrorf(opGaussian, err)
	}
	o := gatherOptions(opts...)

	aug, err := AugMatrix(coeffs, consts)
	if err != nil {
		return nil, snumpyErrorf(opGaussian, err)
	}
	n := coeffs.Rows()
	rows := aug.ToRows()
	tol := pivotTolerance(coeffs.Values(), o.eps)

	if err = forwardEliminate(rows, n, tol, o.pivoting); err != nil {
		return nil, snumpyErrorf(opGaussian, err)
	}
	x := backSubstitute(rows, n)
	if o.roundTo >= 0 {
		roundAll(x, o.roundTo)
	}

	solution, err := array.NewVector(x)
	if err != nil {
		return nil, snumpyErrorf(opGaussian, err)
	}

	return solution, nil
}

// pivotTolerance scales eps by the largest coefficient magnitude, so the
// singularity test is invariant to uniform scaling of the system. An all-zero
// matrix gets a zero tolerance and still fails on its exactly-zero pivot.
func pivotTolerance(coeffs []float64, eps float64) float64 {
	var scale float64
	for _, c := range coeffs {
		if a := math.Abs(c); a > scale {
			scale = a
		}
	}

	return eps * scale
}

// forwardEliminate reduces the n×(n+1) augmented rows to upper-triangular form in place.
func forwardEliminate(rows [][]float64, n int, tol float64, pivoting Pivoting) error {
	var (
		col, r, k, p int
		factor       float64
	)
	for col = 0; col < n; col++ {
		p = col
		if pivoting == PartialPivoting {
			for r = col + 1; r < n; r++ {
				if math.Abs(rows[r][col]) > math.Abs(rows[p][col]) {
					p = r
				}
			}
		}
		if math.Abs(rows[p][col]) <= tol {
			return fmt.Errorf("pivot column %d: %w", col, array.ErrSingular)
		}
		if p != col {
			rows[p], rows[col] = rows[col], rows[p]
		}

		for r = col + 1; r < n; r++ {
			factor = rows[r][col] / rows[col][col]
			if factor == 0 {
				continue
			}
			rows[r][col] = 0
			for k = col + 1; k <= n; k++ {
				rows[r][k] -= factor * rows[col][k]
			}
		}
	}

	return nil
}

// backSubstitute solves the upper-triangular system left by forwardEliminate.
// Every diagonal entry is known to be non-zero.
func backSubstitute(rows [][]float64, n int) []float64 {
	x := make([]float64, n)
	var (
		i, j int
		sum  float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = rows[i][n]
		for j = i + 1; j < n; j++ {
			sum -= rows[i][j] * x[j]
		}
		x[i] = sum / rows[i][i]
	}

	return x
}

// roundAll rounds each component to places decimals, half away from zero.
func roundAll(x []float64, places int) {
	p := math.Pow(10, float64(places))
	for i := range x {
		x[i] = math.Round(x[i]*p) / p
		if x[i] == 0 {
			x[i] = 0 // drop negative zero
		}
	}
}
