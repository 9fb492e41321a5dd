// SPDX-License-Identifier: MIT

// Package snumpy offers a small NumPy-like set of operations over the
// vectors and matrices of package array.
//
// The package provides:
//
//   - Construction: Full, Ones, Zeros (one extent → vector, two → matrix).
//   - Shape handling: Shape, Reshape, Flatten, Transpose, Get.
//   - Joins: Append (along AxisRows or AxisCols) and AugMatrix.
//   - Arithmetic: Add, Subtract, ScalarMultiply, Dot, MatMul, DotProduct.
//   - Solving: GaussianElimination with partial pivoting, back-substitution
//     and a scaled singularity test.
//
// Every operation first runs the matching check from package validator and
// computes nothing if it fails. Results are always freshly allocated; inputs
// are never modified. Errors wrap the sentinels of package array with the
// operation name, e.g. "GaussianElimination: pivot column 1: ... singular
// system"; match them with errors.Is.
//
// Typical use:
//
//	a, _ := validator.AsMatrix([][]int{{2, 1}, {5, 7}})
//	b, _ := validator.AsVector([]int{11, 13})
//	x, err := snumpy.GaussianElimination(a, b)
//	// x ≈ [7.111, -3.222]
package snumpy
