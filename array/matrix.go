// SPDX-License-Identifier: MIT

package array

import "strings"

// Matrix is a non-empty rectangular grid of finite float64 values.
// r,c hold dimensions; data is a flat row-major buffer (offset = i*c + j).
type Matrix struct {
	r, c int       // row and column counts, both >= 1
	data []float64 // len == r*c
}

// NewMatrix builds an r×c Matrix from row-major data. The slice is copied.
// Errors:
//   - ErrEmpty when rows or cols is not positive.
//   - ErrBadShape when rows*cols overflows int.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf on non-finite elements.
//
// Complexity: O(r*c).
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	return newMatrixFlat(ctxNewMatrix, rows, cols, data)
}

// NewMatrixFromRows builds a Matrix from nested rows, which must all have the
// same non-zero length.
// Errors: ErrEmpty, ErrRagged, ErrNaNInf.
// Complexity: O(r*c).
func NewMatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, arrayErrorf(ctxFromRows, ErrEmpty)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, arrayErrorf(ctxFromRows, ErrRagged)
		}
		data = append(data, row...)
	}
	if err := checkFinite(data); err != nil {
		return nil, arrayErrorf(ctxFromRows, err)
	}

	return &Matrix{r: r, c: c, data: data}, nil
}

// newMatrixFlat validates and copies a flat buffer under the caller's tag.
func newMatrixFlat(tag string, rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, arrayErrorf(tag, ErrEmpty)
	}
	size, ok := extentProduct(rows, cols)
	if !ok {
		return nil, arrayErrorf(tag, ErrBadShape)
	}
	if len(data) != size {
		return nil, arrayErrorf(tag, ErrDimensionMismatch)
	}
	if err := checkFinite(data); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Matrix{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Rank returns RankMatrix.
func (m *Matrix) Rank() int { return RankMatrix }

// Shape returns (r, c).
func (m *Matrix) Shape() Shape { return Shape{m.r, m.c} }

// Size returns r*c.
func (m *Matrix) Size() int { return len(m.data) }

// Values returns a row-major copy of all elements.
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// At returns m[i][j]. Exactly two index components are accepted.
func (m *Matrix) At(index ...int) (float64, error) {
	if len(index) != RankMatrix || index[0] < 0 || index[1] < 0 {
		return 0, arrayErrorf(ctxAt, ErrBadIndex)
	}
	if index[0] >= m.r || index[1] >= m.c {
		return 0, arrayErrorf(ctxAt, ErrOutOfRange)
	}

	return m.data[index[0]*m.c+index[1]], nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, arrayErrorf(ctxRow, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j.
func (m *Matrix) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, arrayErrorf(ctxColumn, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns the matrix as freshly allocated nested rows.
// Complexity: O(r*c).
func (m *Matrix) ToRows() [][]float64 {
	rows := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		rows[i] = make([]float64, m.c)
		copy(rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return rows
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix as "[[1, 2], [3, 4]]".
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatRow(m.data[i*m.c : (i+1)*m.c]))
	}
	b.WriteByte(']')

	return b.String()
}

func (m *Matrix) isArray() {}
