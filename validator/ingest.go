// SPDX-License-Identifier: MIT
// Package: validator
//
// Purpose:
//   - Turn untyped nested sequences (decoded TOML/JSON, []int, [][]float64,
//     []any) into well-formed *array.Vector / *array.Matrix values.
//   - Classify every rejection into the type/value taxonomy of package array.
//
// Accepted scalars: all signed and unsigned integer kinds, float32, float64.
// Everything else (bool, string, nil, structs, nested sequences where a scalar
// is expected) is non-numeric. Strings are never treated as sequences.

package validator

import (
	"reflect"

	"github.com/katalvlaran/snumpy/array"
)

// ---------- validator tags ----------

const (
	tagIsVector         = "IsVector"
	tagIsMatrix         = "IsMatrix"
	tagIsVectorOrMatrix = "IsVectorOrMatrix"
	tagParseIndex       = "ParseIndex"
	tagParseShape       = "ParseShape"
)

// IsVector fails unless x is a one-dimensional, non-empty sequence of numbers.
//
// Errors:
//   - ErrNotSequence (type) when x is not a slice or array.
//   - ErrNotFlat (type) when every element is itself a sequence, e.g. [[1, 2]].
//   - ErrEmpty, ErrNonNumeric, ErrNaNInf (value) on bad content, including a
//     scalar sequence with some nested elements such as [1, [2]].
func IsVector(x any) error {
	_, err := AsVector(x)

	return err
}

// IsMatrix fails unless x is a non-empty rectangular sequence of numeric rows.
//
// Errors:
//   - ErrNotSequence, ErrNotRows (type) when x or one of its rows is not a sequence.
//   - ErrEmpty, ErrRagged, ErrNonNumeric, ErrNaNInf (value) on bad content.
func IsMatrix(x any) error {
	_, err := AsMatrix(x)

	return err
}

// IsVectorOrMatrix fails unless x is a well-formed vector or matrix.
// Scalars mixed with rows are reported as ErrRagged.
func IsVectorOrMatrix(x any) error {
	_, err := AsArray(x)

	return err
}

// AsVector validates x and returns it as a *array.Vector.
// A *array.Vector is returned unchanged; a *array.Matrix is rejected with
// ErrNotFlat because its elements are rows.
// Complexity: O(n).
func AsVector(x any) (*array.Vector, error) {
	switch typed := x.(type) {
	case *array.Vector:
		if typed == nil {
			return nil, validatorErrorf(tagIsVector, array.ErrNilArray)
		}
		return typed, nil
	case *array.Matrix:
		return nil, validatorErrorf(tagIsVector, array.ErrNotFlat)
	}

	seq, ok := sequence(x)
	if !ok {
		return nil, validatorErrorf(tagIsVector, array.ErrNotSequence)
	}
	values, err := scalars(seq)
	if err != nil {
		if allSequences(seq) {
			err = array.ErrNotFlat
		}
		return nil, validatorErrorf(tagIsVector, err)
	}
	v, err := array.NewVector(values)
	if err != nil {
		return nil, validatorErrorf(tagIsVector, err)
	}

	return v, nil
}

// AsMatrix validates x and returns it as a *array.Matrix.
// Implementation:
//   - Stage 1: x must be a non-empty sequence.
//   - Stage 2: single pass over rows, checking row kind, row length against
//     the first row and element kind, in that order.
//   - Stage 3: build the Matrix from the flattened values.
//
// Complexity: O(r*c).
func AsMatrix(x any) (*array.Matrix, error) {
	switch typed := x.(type) {
	case *array.Matrix:
		if typed == nil {
			return nil, validatorErrorf(tagIsMatrix, array.ErrNilArray)
		}
		return typed, nil
	case *array.Vector:
		return nil, validatorErrorf(tagIsMatrix, array.ErrNotRows)
	}

	seq, ok := sequence(x)
	if !ok {
		return nil, validatorErrorf(tagIsMatrix, array.ErrNotSequence)
	}
	rows := seq.Len()
	if rows == 0 {
		return nil, validatorErrorf(tagIsMatrix, array.ErrEmpty)
	}

	var (
		cols int
		data []float64
	)
	for i := 0; i < rows; i++ {
		row, ok := sequence(element(seq, i))
		if !ok {
			return nil, validatorErrorf(tagIsMatrix, array.ErrNotRows)
		}
		if i == 0 {
			cols = row.Len()
			if cols == 0 {
				return nil, validatorErrorf(tagIsMatrix, array.ErrEmpty)
			}
			data = make([]float64, 0, rows*cols)
		} else if row.Len() != cols {
			return nil, validatorErrorf(tagIsMatrix, array.ErrRagged)
		}
		values, err := scalars(row)
		if err != nil {
			return nil, validatorErrorf(tagIsMatrix, err)
		}
		data = append(data, values...)
	}

	m, err := array.NewMatrix(rows, cols, data)
	if err != nil {
		return nil, validatorErrorf(tagIsMatrix, err)
	}

	return m, nil
}

// AsArray validates x as either a vector or a matrix and returns the typed value.
// Classification scans every element once: all scalars → vector, all
// sequences → matrix, a mix → ErrRagged, anything else → ErrNonNumeric.
func AsArray(x any) (array.Array, error) {
	switch typed := x.(type) {
	case *array.Vector:
		if typed == nil {
			return nil, validatorErrorf(tagIsVectorOrMatrix, array.ErrNilArray)
		}
		return typed, nil
	case *array.Matrix:
		if typed == nil {
			return nil, validatorErrorf(tagIsVectorOrMatrix, array.ErrNilArray)
		}
		return typed, nil
	}

	seq, ok := sequence(x)
	if !ok {
		return nil, validatorErrorf(tagIsVectorOrMatrix, array.ErrNotSequence)
	}
	if seq.Len() == 0 {
		return nil, validatorErrorf(tagIsVectorOrMatrix, array.ErrEmpty)
	}

	var nScalar, nSeq int
	for i := 0; i < seq.Len(); i++ {
		e := element(seq, i)
		if _, ok := scalar(e); ok {
			nScalar++
			continue
		}
		if _, ok := sequence(e); ok {
			nSeq++
			continue
		}
		return nil, validatorErrorf(tagIsVectorOrMatrix, array.ErrNonNumeric)
	}
	if nScalar > 0 && nSeq > 0 {
		return nil, validatorErrorf(tagIsVectorOrMatrix, array.ErrRagged)
	}
	if nSeq > 0 {
		m, err := AsMatrix(x)
		if err != nil {
			return nil, validatorErrorf(tagIsVectorOrMatrix, err)
		}
		return m, nil
	}
	v, err := AsVector(x)
	if err != nil {
		return nil, validatorErrorf(tagIsVectorOrMatrix, err)
	}

	return v, nil
}

// ParseIndex converts x into an array.Index of one or two non-negative
// integers. Anything else (strings such as "1,2", floats, wrong arity) is
// ErrBadIndex, a value error. Bounds are checked later by ValidateIndexForGet.
func ParseIndex(x any) (array.Index, error) {
	ints, ok := integers(x)
	if !ok || len(ints) < array.RankVector || len(ints) > array.RankMatrix {
		return nil, validatorErrorf(tagParseIndex, array.ErrBadIndex)
	}
	for _, i := range ints {
		if i < 0 {
			return nil, validatorErrorf(tagParseIndex, array.ErrBadIndex)
		}
	}

	return array.Index(ints), nil
}

// ParseShape converts x into an array.Shape of one or two positive integers.
func ParseShape(x any) (array.Shape, error) {
	ints, ok := integers(x)
	if !ok {
		return nil, validatorErrorf(tagParseShape, array.ErrBadShape)
	}
	shape := array.Shape(ints)
	if err := validateShapeTuple(shape); err != nil {
		return nil, validatorErrorf(tagParseShape, err)
	}

	return shape, nil
}

// ---------- reflection helpers ----------

// sequence reports whether x is a slice or array and returns its reflect.Value.
func sequence(x any) (reflect.Value, bool) {
	if x == nil {
		return reflect.Value{}, false
	}
	rv, ok := x.(reflect.Value)
	if !ok {
		rv = reflect.ValueOf(x)
	}
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// element returns seq[i] with one level of interface boxing removed.
// A nil interface element is returned as an invalid reflect.Value.
func element(seq reflect.Value, i int) reflect.Value {
	e := seq.Index(i)
	if e.Kind() == reflect.Interface {
		if e.IsNil() {
			return reflect.Value{}
		}
		e = e.Elem()
	}

	return e
}

// allSequences reports whether seq is non-empty and every element is a sequence.
func allSequences(seq reflect.Value) bool {
	if seq.Len() == 0 {
		return false
	}
	for i := 0; i < seq.Len(); i++ {
		if _, ok := sequence(element(seq, i)); !ok {
			return false
		}
	}

	return true
}

// scalar converts a numeric reflect.Value to float64.
func scalar(e reflect.Value) (float64, bool) {
	if !e.IsValid() {
		return 0, false
	}
	switch e.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(e.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(e.Uint()), true
	case reflect.Float32, reflect.Float64:
		return e.Float(), true
	default:
		return 0, false
	}
}

// scalars converts every element of seq, failing on the first non-numeric one.
func scalars(seq reflect.Value) ([]float64, error) {
	n := seq.Len()
	if n == 0 {
		return nil, array.ErrEmpty
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		x, ok := scalar(element(seq, i))
		if !ok {
			return nil, array.ErrNonNumeric
		}
		out[i] = x
	}

	return out, nil
}

// integers converts a sequence of integer-kind values to []int.
func integers(x any) ([]int, bool) {
	switch typed := x.(type) {
	case array.Index:
		return append([]int(nil), typed...), true
	case array.Shape:
		return append([]int(nil), typed...), true
	}
	seq, ok := sequence(x)
	if !ok {
		return nil, false
	}
	out := make([]int, seq.Len())
	for i := range out {
		e := element(seq, i)
		if !e.IsValid() {
			return nil, false
		}
		switch e.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out[i] = int(e.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out[i] = int(e.Uint())
		default:
			return nil, false
		}
	}

	return out, true
}
