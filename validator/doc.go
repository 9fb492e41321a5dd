// SPDX-License-Identifier: MIT

// Package validator enforces the preconditions of every snumpy operation.
//
// Two families of checks live here:
//
//   - Ingestion (IsVector, IsMatrix, IsVectorOrMatrix, AsVector, AsMatrix,
//     AsArray, ParseIndex, ParseShape) inspects untyped nested sequences and
//     either returns a well-formed value from package array or a type/value
//     error.
//   - Shape checks (ValidateShapeFor*, ValidateIndexForGet) compare the
//     extents of already-typed operands before an operation computes.
//
// Validators never mutate their inputs and never depend on package snumpy.
package validator
