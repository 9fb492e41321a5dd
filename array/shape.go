// SPDX-License-Identifier: MIT

package array

import (
	"math"
	"strconv"
	"strings"
)

// Rank constants. Only vectors and matrices exist in this package.
const (
	RankVector = 1
	RankMatrix = 2
)

// Shape describes the extents of an Array: (n,) for a vector of length n,
// (r, c) for a matrix with r rows and c columns.
type Shape []int

// Index locates one element: (i,) inside a vector, (i, j) inside a matrix.
type Index []int

// Rank returns the number of axes described by the shape.
func (s Shape) Rank() int { return len(s) }

// Size returns the total element count implied by the shape (product of extents).
// An empty shape, a non-positive extent or a product beyond math.MaxInt has size 0.
// Complexity: O(rank).
func (s Shape) Size() int {
	size, ok := extentProduct(s...)
	if !ok {
		return 0
	}

	return size
}

// Validate accepts rank 1 or 2 with strictly positive extents whose product
// fits in an int.
// Errors: ErrBadShape.
func (s Shape) Validate() error {
	if s.Rank() != RankVector && s.Rank() != RankMatrix {
		return ErrBadShape
	}
	if _, ok := extentProduct(s...); !ok {
		return ErrBadShape
	}

	return nil
}

// extentProduct multiplies positive extents, failing on a non-positive
// extent, an empty list or int overflow.
func extentProduct(dims ...int) (int, bool) {
	if len(dims) == 0 {
		return 0, false
	}
	size := 1
	for _, d := range dims {
		if d <= 0 || size > math.MaxInt/d {
			return 0, false
		}
		size *= d
	}

	return size, true
}

// Equal reports whether two shapes have the same rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// String formats the shape as a tuple: "(3,)" or "(2, 2)".
func (s Shape) String() string {
	return tuple([]int(s))
}

// String formats the index as a tuple: "(1,)" or "(0, 1)".
func (ix Index) String() string {
	return tuple([]int(ix))
}

// tuple renders ints the way a one- or many-element tuple is written.
func tuple(xs []int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	if len(xs) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')

	return b.String()
}
