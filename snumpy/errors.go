// SPDX-License-Identifier: MIT

package snumpy

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opFull       = "Full"
	opReshape    = "Reshape"
	opFlatten    = "Flatten"
	opShape      = "Shape"
	opAppend     = "Append"
	opGet        = "Get"
	opAdd        = "Add"
	opSubtract   = "Subtract"
	opDot        = "Dot"
	opMatMul     = "MatMul"
	opDotProduct = "DotProduct"
	opScalarMul  = "ScalarMultiply"
	opTranspose  = "Transpose"
	opAugMatrix  = "AugMatrix"
	opGaussian   = "GaussianElimination"
)

// snumpyErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Only call with a non-nil err.
func snumpyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
