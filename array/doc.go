// SPDX-License-Identifier: MIT

// Package array defines the value types of snumpy: Vector, Matrix, Shape and
// Index, plus the sentinel error taxonomy shared by every package.
//
// A Vector is a non-empty sequence of finite float64 values. A Matrix is a
// non-empty rectangular grid stored row-major. Both implement the sealed Array
// interface and are validated once, at construction:
//
//	v, _ := array.NewVector([]float64{1, 2, 3})             // (3,)
//	m, _ := array.NewMatrixFromRows([][]float64{{1, 2}, {3, 4}}) // (2, 2)
//
// Constructors copy their inputs and accessors return copies, so values never
// change after creation. Errors are sentinels grouped into three categories
// (ErrType, ErrValue, ErrOutOfRange); match them with errors.Is.
package array
