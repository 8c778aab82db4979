// SPDX-License-Identifier: MIT

package elastic

import (
	"github.com/katalvlaran/elasticarray/dense"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same rank, the same kernel dims and
// element-wise equal buffers. Trailing extents are compared implicitly
// through the buffer lengths.
// Complexity: O(rank + n).
func Equal[T comparable](a, b *Array[T]) bool {
	return a.kernel.Equal(b.kernel) && slices.Equal(a.data, b.data)
}

// EqualFunc is Equal with a caller-supplied element comparison, for element
// types that are not comparable or need a tolerance.
// Complexity: O(rank + n).
func (a *Array[T]) EqualFunc(b *Array[T], eq func(x, y T) bool) bool {
	return a.kernel.Equal(b.kernel) && slices.EqualFunc(a.data, b.data, eq)
}

// EqualDense compares a with any dense tensor as if both were plain dense
// arrays: equal shapes and equal elements in flat order.
// Complexity: O(rank + n).
func EqualDense[T comparable](a *Array[T], d dense.Tensor[T]) bool {
	if !slices.Equal(a.Shape(), d.Shape()) || d.Len() != len(a.data) {
		return false
	}
	if b, ok := d.(Buffer[T]); ok {
		return slices.Equal(a.data, b.Data())
	}
	for i, x := range a.data {
		if y, err := d.At(i); err != nil || x != y {
			return false
		}
	}

	return true
}
