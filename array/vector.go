// SPDX-License-Identifier: MIT

package array

// Vector is a non-empty, ordered sequence of finite float64 scalars.
type Vector struct {
	data []float64 // owned copy, len >= 1
}

// NewVector builds a Vector from values. The slice is copied.
// Errors: ErrEmpty when len(values) == 0, ErrNaNInf on non-finite elements.
// Complexity: O(n).
func NewVector(values []float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, arrayErrorf(ctxNewVector, ErrEmpty)
	}
	if err := checkFinite(values); err != nil {
		return nil, arrayErrorf(ctxNewVector, err)
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// Rank returns RankVector.
func (v *Vector) Rank() int { return RankVector }

// Shape returns (n,).
func (v *Vector) Shape() Shape { return Shape{len(v.data)} }

// Size returns the number of elements.
func (v *Vector) Size() int { return len(v.data) }

// Values returns a copy of the elements.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// At returns v[i]. Exactly one index component is accepted.
func (v *Vector) At(index ...int) (float64, error) {
	if len(index) != RankVector || index[0] < 0 {
		return 0, arrayErrorf(ctxAt, ErrBadIndex)
	}
	if index[0] >= len(v.data) {
		return 0, arrayErrorf(ctxAt, ErrOutOfRange)
	}

	return v.data[index[0]], nil
}

// Equal reports whether both vectors hold the same elements.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[1, 2, 3]".
func (v *Vector) String() string { return formatRow(v.data) }

func (v *Vector) isArray() {}
