// SPDX-License-Identifier: MIT
// Package array_test contains unit tests for the array value types.
package array_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snumpy/array"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"nil array", array.ErrNilArray, array.ErrType},
		{"not a sequence", array.ErrNotSequence, array.ErrType},
		{"rows not sequences", array.ErrNotRows, array.ErrType},
		{"nested vector", array.ErrNotFlat, array.ErrType},
		{"empty", array.ErrEmpty, array.ErrValue},
		{"non-numeric", array.ErrNonNumeric, array.ErrValue},
		{"ragged", array.ErrRagged, array.ErrValue},
		{"nan/inf", array.ErrNaNInf, array.ErrValue},
		{"bad shape", array.ErrBadShape, array.ErrValue},
		{"bad index", array.ErrBadIndex, array.ErrValue},
		{"bad axis", array.ErrBadAxis, array.ErrValue},
		{"rank mismatch", array.ErrRankMismatch, array.ErrValue},
		{"dimension mismatch", array.ErrDimensionMismatch, array.ErrValue},
		{"non-square", array.ErrNonSquare, array.ErrValue},
		{"singular", array.ErrSingular, array.ErrValue},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.kind)
			require.False(t, errors.Is(tc.err, array.ErrOutOfRange))
		})
	}
}

func TestNewVector(t *testing.T) {
	t.Parallel()

	v, err := array.NewVector([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, array.Shape{3}, v.Shape())
	require.Equal(t, array.RankVector, v.Rank())
	require.Equal(t, "[1, 2, 3]", v.String())

	_, err = array.NewVector(nil)
	require.ErrorIs(t, err, array.ErrEmpty)

	_, err = array.NewVector([]float64{1, math.NaN()})
	require.ErrorIs(t, err, array.ErrNaNInf)

	_, err = array.NewVector([]float64{math.Inf(-1)})
	require.ErrorIs(t, err, array.ErrValue)
}

func TestVector_CopiesInputAndOutput(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2}
	v, err := array.NewVector(src)
	require.NoError(t, err)

	src[0] = 100
	got := v.Values()
	require.Equal(t, []float64{1, 2}, got)

	got[1] = 200
	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, x)
}

func TestVector_At(t *testing.T) {
	t.Parallel()

	v, err := array.NewVector([]float64{4, 5, 6})
	require.NoError(t, err)

	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 6.0, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, array.ErrBadIndex)
	_, err = v.At(0, 0)
	require.ErrorIs(t, err, array.ErrBadIndex)
}

func TestNewMatrixFromRows(t *testing.T) {
	t.Parallel()

	m, err := array.NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, array.Shape{2, 3}, m.Shape())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Values())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
	require.Equal(t, "[[1, 2, 3], [4, 5, 6]]", m.String())

	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"no rows", nil, array.ErrEmpty},
		{"empty row", [][]float64{{}}, array.ErrEmpty},
		{"ragged", [][]float64{{1, 2}, {3}}, array.ErrRagged},
		{"nan", [][]float64{{1, math.NaN()}}, array.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := array.NewMatrixFromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMatrix_Accessors(t *testing.T) {
	t.Parallel()

	m, err := array.NewMatrix(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	x, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, x)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = m.At(0)
	require.ErrorIs(t, err, array.ErrBadIndex)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, array.ErrOutOfRange)

	_, err = array.NewMatrix(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, array.ErrDimensionMismatch)
	_, err = array.NewMatrix(0, 2, nil)
	require.ErrorIs(t, err, array.ErrEmpty)
}

func TestNew_ByShape(t *testing.T) {
	t.Parallel()

	a, err := array.New(array.Shape{3}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.IsType(t, &array.Vector{}, a)

	a, err = array.New(array.Shape{1, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.IsType(t, &array.Matrix{}, a)
	require.Equal(t, array.Shape{1, 3}, a.Shape())

	_, err = array.New(array.Shape{1, 1, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, array.ErrBadShape)
	_, err = array.New(array.Shape{0}, nil)
	require.ErrorIs(t, err, array.ErrBadShape)
	_, err = array.New(array.Shape{2, 2}, []float64{1})
	require.ErrorIs(t, err, array.ErrDimensionMismatch)
}

// 3 * 6148914691236517206 wraps to 2 in int64; the shape must be refused
// rather than paired with a two-element buffer.
const wrapsToTwo = 6148914691236517206

func TestNew_ExtentOverflow(t *testing.T) {
	t.Parallel()

	_, err := array.New(array.Shape{3, wrapsToTwo}, []float64{1, 2})
	require.ErrorIs(t, err, array.ErrBadShape)

	_, err = array.NewMatrix(3, wrapsToTwo, []float64{1, 2})
	require.ErrorIs(t, err, array.ErrBadShape)
	_, err = array.NewMatrix(math.MaxInt, 2, []float64{1, 2})
	require.ErrorIs(t, err, array.ErrBadShape)

	require.ErrorIs(t, array.Shape{3, wrapsToTwo}.Validate(), array.ErrBadShape)
	require.Equal(t, 0, array.Shape{3, wrapsToTwo}.Size())
	require.NoError(t, array.Shape{math.MaxInt, 1}.Validate())
}

func TestShape_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(3,)", array.Shape{3}.String())
	require.Equal(t, "(2, 2)", array.Shape{2, 2}.String())
	require.Equal(t, "()", array.Shape{}.String())
	require.Equal(t, "(0, 1)", array.Index{0, 1}.String())
	require.Equal(t, 6, array.Shape{2, 3}.Size())
	require.Equal(t, 0, array.Shape{}.Size())
	require.True(t, array.Shape{2, 3}.Equal(array.Shape{2, 3}))
	require.False(t, array.Shape{2, 3}.Equal(array.Shape{3, 2}))
	require.False(t, array.Shape{6}.Equal(array.Shape{6, 1}))
}

func TestIsNilAndEqual(t *testing.T) {
	t.Parallel()

	var v *array.Vector
	var m *array.Matrix
	require.True(t, array.IsNil(nil))
	require.True(t, array.IsNil(v))
	require.True(t, array.IsNil(m))

	a, err := array.NewVector([]float64{1})
	require.NoError(t, err)
	b, err := array.NewVector([]float64{1})
	require.NoError(t, err)
	require.False(t, array.IsNil(a))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	x, err := array.NewMatrixFromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	y, err := array.NewMatrixFromRows([][]float64{{1}, {2}})
	require.NoError(t, err)
	require.False(t, x.Equal(y))
	require.True(t, x.Equal(x))
}
