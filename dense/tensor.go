// SPDX-License-Identifier: MIT

// Package dense: the dense-array capability.
package dense

// Tensor is the read surface every dense-like array exposes: its logical
// shape and linear access into its flat buffer in shape.Offset order.
// *Array[T] and *elastic.Array[T] both implement it, so generic code
// (conversion, elementwise kernels, equality) needs no type-specific path.
//
// Complexity notes: all methods are expected O(1) except Shape (O(rank)).
type Tensor[T any] interface {
	// Shape returns a copy of the logical dims.
	Shape() []int

	// Len returns the number of elements (product of Shape()).
	Len() int

	// At returns the element at flat index i.
	// Returns ErrOutOfRange if i<0 or i>=Len().
	At(i int) (T, error)
}
