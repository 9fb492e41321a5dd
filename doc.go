// SPDX-License-Identifier: MIT

// Package snumpy is a small, validated linear-algebra toolkit for dense
// vectors and matrices, with a Gaussian-elimination solver on top.
//
// What is in the module?
//
//	A pure-Go library plus a command-line front end:
//		• Value types: Vector, Matrix, Shape, Index (package array)
//		• Ingestion & checks: untyped input → typed arrays, shape rules (package validator)
//		• Operations: Full/Ones/Zeros, Reshape, Append, Add, Dot, MatMul, ... (package snumpy)
//		• Solving: GaussianElimination with partial pivoting and a scaled singular test
//		• CLI: snumpy solve | dot | shape | version (cmd/snumpy)
//
// Guarantees:
//
//   - Arrays are well-formed by construction: non-empty, rectangular, finite.
//   - Every operation validates first and computes nothing on failure.
//   - Inputs are never mutated; results are freshly allocated.
//   - Errors are sentinels in three categories (type, value, out-of-range),
//     matched with errors.Is.
//
// Layout:
//
//	array/        Vector, Matrix, Shape, Index & the error taxonomy
//	validator/    IsVector/IsMatrix/AsArray, ParseIndex/ParseShape, ValidateShapeFor*
//	snumpy/       creation, shape, join, arithmetic & elimination
//	internal/     TOML problem files, verbose logging, the cobra command tree
//	cmd/snumpy/   binary entry point
//
// Quick example:
//
//	2x +  y = 11
//	5x + 7y = 13   →   snumpy solve --coeffs '[[2, 1], [5, 7]]' --consts '[11, 13]' --round 1
//	                   [7.1, -3.2]
//
//	go get github.com/katalvlaran/snumpy
package snumpy
