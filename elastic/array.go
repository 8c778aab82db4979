// SPDX-License-Identifier: MIT

// Package elastic - Array storage & safe accessors.
//
// Purpose:
//   - Own one flat buffer whose length is always kernelLen * LastDim().
//   - Derive the trailing extent from the buffer length in O(1) (shape.Kernel).
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(n); Shape: O(rank); LastDim/Len/At/Set: O(1); AtIndex/SetIndex: O(rank).

package elastic

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/elasticarray/dense"
	"github.com/katalvlaran/elasticarray/shape"
)

// Array is a dense N-d array of T whose last dimension is resizable.
//   - kernel holds the fixed dims, their product and its cached inverse.
//   - data is the flat buffer, first index fastest, last dim outermost.
//
// Array is not safe for concurrent mutation; see the package docs.
type Array[T any] struct {
	kernel shape.Kernel // fixed after construction
	data   []T          // exclusively owned; len == kernel.Len() * LastDim()
}

// Buffer is anything exposing a flat element buffer: *Array[T] and
// *dense.Array[T]. Copy, CopyRegion and MightAlias operate on it.
type Buffer[T any] interface {
	Data() []T
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ dense.Tensor[float64] = (*Array[float64])(nil)
	_ Buffer[float64]       = (*Array[float64])(nil)
	_ Buffer[float64]       = (*dense.Array[float64])(nil)
	_ fmt.Stringer          = (*Array[float64])(nil)
)

// New creates an array with the given full shape.
// MAIN DESCRIPTION:
//   - dims[:len(dims)-1] becomes the fixed kernel; dims[len(dims)-1] is the
//     initial trailing extent.
//
// Implementation:
//   - Stage 1: split and validate dims (shape.Split, shape.NewKernel).
//   - Stage 2: compute buffer length; reject a non-zero extent over an empty kernel.
//   - Stage 3: allocate (plus reserved capacity) and apply the fill policy.
//
// Inputs:
//   - dims: full shape, rank >= 1, entries >= 0.
//   - opts: WithFill, WithCapacity.
//
// Errors:
//   - ErrInvalidShape.
//
// Complexity:
//   - Time O(rank + n), Space O(n + reserved).
func New[T any](dims []int, opts ...Option[T]) (*Array[T], error) {
	o := gatherOptions(opts...)

	kdims, last, err := shape.Split(dims)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	k, err := shape.NewKernel(kdims)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	n, err := k.BufferLen(last)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	c := n
	if o.capacity > last && k.Len() > 0 {
		if c, err = k.BufferLen(o.capacity); err != nil {
			return nil, arrayErrorf(ctxNew, err)
		}
	}

	a := &Array[T]{kernel: k, data: make([]T, n, c)}
	if o.hasFill {
		a.Fill(o.fill)
	}

	return a, nil
}

// FromSlice creates an array of the given full shape holding a copy of data.
// Errors:
//   - ErrInvalidShape for malformed dims.
//   - ErrDimensionMismatch when len(data) != prod(dims).
//
// Complexity: O(n).
func FromSlice[T any](data []T, dims ...int) (*Array[T], error) {
	a, err := New[T](dims)
	if err != nil {
		return nil, arrayErrorf(ctxFromSlice, err)
	}
	if len(data) != len(a.data) {
		return nil, arrayErrorf(fmt.Sprintf("%s: %d elements for shape %v", ctxFromSlice, len(data), dims), ErrDimensionMismatch)
	}
	copy(a.data, data)

	return a, nil
}

// Shape returns kernel dims ++ [LastDim()].
// Complexity: O(rank).
func (a *Array[T]) Shape() []int { return a.kernel.Full(a.LastDim()) }

// KernelShape returns a copy of the fixed dims.
func (a *Array[T]) KernelShape() []int { return a.kernel.Dims() }

// KernelLen returns the number of elements in one page.
func (a *Array[T]) KernelLen() int { return a.kernel.Len() }

// Rank returns the number of dims including the trailing one.
func (a *Array[T]) Rank() int { return a.kernel.Rank() + 1 }

// LastDim returns the trailing extent: Len() / KernelLen(), or 0 for a
// zero-length kernel.
// Complexity: O(1), no division instruction.
func (a *Array[T]) LastDim() int { return a.kernel.Extent(len(a.data)) }

// Len returns the flat buffer length.
func (a *Array[T]) Len() int { return len(a.data) }

// Cap returns the number of pages the buffer can hold without reallocating.
func (a *Array[T]) Cap() int { return a.kernel.Extent(cap(a.data)) }

// Data returns the backing buffer (shared, not copied).
// The slice is invalidated by the next Resize/Append/Prepend/ShrinkToFit.
func (a *Array[T]) Data() []T { return a.data }

// At returns the element at flat index i or ErrOutOfRange.
// Bounds are exactly the buffer bounds.
// Complexity: O(1).
func (a *Array[T]) At(i int) (T, error) {
	if err := shape.ValidateIndex(i, len(a.data)); err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, err)
	}

	return a.data[i], nil
}

// Set stores v at flat index i or returns ErrOutOfRange.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if err := shape.ValidateIndex(i, len(a.data)); err != nil {
		return arrayErrorf(ctxSet, err)
	}
	a.data[i] = v

	return nil
}

// offset computes the flat position of a full multi-index.
// MAIN DESCRIPTION:
//   - Same formula as shape.Offset, without materializing Shape(): kernel
//     strides accumulate to kernelLen, which is the stride of the last index.
//
// Errors:
//   - ErrOutOfRange on rank mismatch or any index outside its dim.
//
// Complexity:
//   - Time O(rank), no allocation.
func (a *Array[T]) offset(idx []int) (int, error) {
	m := a.kernel.Rank()
	if len(idx) != m+1 {
		return 0, fmt.Errorf("%d indices for rank %d: %w", len(idx), m+1, ErrOutOfRange)
	}
	off, stride := 0, 1
	var d int
	for k := 0; k < m; k++ {
		d = a.kernel.Dim(k)
		if idx[k] < 0 || idx[k] >= d {
			return 0, fmt.Errorf("index %d is %d, dim %d: %w", k, idx[k], d, ErrOutOfRange)
		}
		off += idx[k] * stride
		stride *= d
	}
	if j := idx[m]; j < 0 || j >= a.LastDim() {
		return 0, fmt.Errorf("trailing index %d, extent %d: %w", j, a.LastDim(), ErrOutOfRange)
	}

	return off + idx[m]*stride, nil
}

// AtIndex returns the element at a full multi-index (i1, ..., iM, j).
// Errors: ErrOutOfRange.
// Complexity: O(rank).
func (a *Array[T]) AtIndex(idx ...int) (T, error) {
	off, err := a.offset(idx)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxAtIndex, err)
	}

	return a.data[off], nil
}

// SetIndex stores v at a full multi-index (i1, ..., iM, j).
// Errors: ErrOutOfRange.
// Complexity: O(rank).
func (a *Array[T]) SetIndex(v T, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return arrayErrorf(ctxSetIndex, err)
	}
	a.data[off] = v

	return nil
}

// Page returns the j-th trailing slice as a view of KernelLen() elements.
// MAIN DESCRIPTION:
//   - No copy: writes through the view reflect in a. The view's capacity is
//     clipped, so appending to it never overwrites the next page.
//
// Errors:
//   - ErrOutOfRange when j is outside [0, LastDim()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array[T]) Page(j int) ([]T, error) {
	if err := shape.ValidateIndex(j, a.LastDim()); err != nil {
		return nil, arrayErrorf(ctxPage, err)
	}
	kl := a.kernel.Len()
	lo, hi := j*kl, (j+1)*kl

	return a.data[lo:hi:hi], nil
}

// Pages yields (j, page j) for every trailing index in order.
// The views follow the same rules as Page; do not mutate the array's shape
// while iterating.
func (a *Array[T]) Pages() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		kl := a.kernel.Len()
		n := a.LastDim()
		var lo, hi int
		for j := 0; j < n; j++ {
			lo, hi = j*kl, (j+1)*kl
			if !yield(j, a.data[lo:hi:hi]) {
				return
			}
		}
	}
}

// Clone returns a deep copy (new buffer, same kernel, no spare capacity).
// Complexity: O(n).
func (a *Array[T]) Clone() *Array[T] {
	cp := make([]T, len(a.data))
	copy(cp, a.data)

	return &Array[T]{kernel: a.kernel, data: cp}
}

// Similar returns an empty array (LastDim() == 0) with the same kernel.
// Complexity: O(1).
func (a *Array[T]) Similar() *Array[T] {
	return &Array[T]{kernel: a.kernel, data: []T{}}
}

// Fill sets every element to v.
// Complexity: O(n).
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// String renders one bracketed line per page.
// Intended for debugging; not for hot paths.
func (a *Array[T]) String() string {
	return dense.FormatPages(a.data, a.kernel.Len())
}
