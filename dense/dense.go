// SPDX-License-Identifier: MIT

// Package dense - Array storage (first-index-fastest) & safe accessors.
//
// Purpose:
//   - Provide a fixed-shape N-d buffer with the explicit offset formula of shape.Offset.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Serve as the conversion target/source for elastic arrays (same layout, one copy).
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set: O(1); AtIndex/SetIndex: O(rank); Clone: O(n).

package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/elasticarray/shape"
	"golang.org/x/exp/slices"
)

// ---------- Formatting literals  ----------
const (
	_fmtPageOpen  = "["
	_fmtPageClose = "]\n"
	_fmtSep       = ", "
)

// Array is a dense N-d array of T.
//   - dims holds the shape (rank may be 0: a single element).
//   - data is a flat buffer of length prod(dims), first index fastest.
type Array[T any] struct {
	dims []int // logical shape, fixed
	data []T   // contiguous storage (len == prod(dims))
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Tensor[float64] = (*Array[float64])(nil)
	_ fmt.Stringer    = (*Array[float64])(nil)
)

// New creates a zero-filled array of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate dims (non-negative, product fits in int).
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T any](dims ...int) (*Array[T], error) {
	n, err := shape.Product(dims)
	if err != nil {
		return nil, denseErrorf(ctxNew, err)
	}

	return &Array[T]{dims: slices.Clone(dims), data: make([]T, n)}, nil
}

// FromSlice creates an array of the given shape holding a copy of data.
// Errors:
//   - ErrInvalidShape for malformed dims.
//   - ErrDimensionMismatch when len(data) != prod(dims).
//
// Complexity: O(n).
func FromSlice[T any](data []T, dims ...int) (*Array[T], error) {
	n, err := shape.Product(dims)
	if err != nil {
		return nil, denseErrorf(ctxFrom, err)
	}
	if len(data) != n {
		return nil, denseErrorf(fmt.Sprintf("%s: %d elements for shape %v", ctxFrom, len(data), dims), ErrDimensionMismatch)
	}
	buf := make([]T, n)
	copy(buf, data)

	return &Array[T]{dims: slices.Clone(dims), data: buf}, nil
}

// Shape returns a copy of the dims.
// Complexity: O(rank).
func (a *Array[T]) Shape() []int { return slices.Clone(a.dims) }

// Rank returns the number of dims.
func (a *Array[T]) Rank() int { return len(a.dims) }

// Len returns the number of elements.
// Complexity: O(1).
func (a *Array[T]) Len() int { return len(a.data) }

// Data returns the backing buffer (shared, not copied).
// Writes through the returned slice are visible in a.
func (a *Array[T]) Data() []T { return a.data }

// At returns the element at flat index i or ErrOutOfRange.
// Complexity: O(1).
func (a *Array[T]) At(i int) (T, error) {
	if err := shape.ValidateIndex(i, len(a.data)); err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, err)
	}

	return a.data[i], nil
}

// Set stores v at flat index i or returns ErrOutOfRange.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if err := shape.ValidateIndex(i, len(a.data)); err != nil {
		return denseErrorf(ctxSet, err)
	}
	a.data[i] = v

	return nil
}

// AtIndex returns the element at a full multi-index.
// Errors: ErrOutOfRange on rank mismatch or any index outside its dim.
// Complexity: O(rank).
func (a *Array[T]) AtIndex(idx ...int) (T, error) {
	off, err := shape.Offset(a.dims, idx)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAtIndex, err)
	}

	return a.data[off], nil
}

// SetIndex stores v at a full multi-index.
// Errors: ErrOutOfRange on rank mismatch or any index outside its dim.
// Complexity: O(rank).
func (a *Array[T]) SetIndex(v T, idx ...int) error {
	off, err := shape.Offset(a.dims, idx)
	if err != nil {
		return denseErrorf(ctxSetIndex, err)
	}
	a.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(n).
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{dims: slices.Clone(a.dims), data: slices.Clone(a.data)}
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Equal reports whether a and b have identical shapes and elements.
// Complexity: O(rank + n).
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.dims, b.dims) && slices.Equal(a.data, b.data)
}

// String renders one line per slice of the last dim.
// Complexity: O(n).
func (a *Array[T]) String() string {
	page := len(a.data)
	if len(a.dims) > 0 {
		n, _ := shape.Product(a.dims[:len(a.dims)-1])
		page = n
	}

	return FormatPages(a.data, page)
}

// FormatPages renders data as consecutive pages of pageLen elements,
// one bracketed line each. pageLen <= 0 renders nothing.
// Intended for debugging; not for hot paths.
func FormatPages[T any](data []T, pageLen int) string {
	if pageLen <= 0 {
		return ""
	}
	var b strings.Builder
	var i, j int
	for i = 0; i+pageLen <= len(data); i += pageLen {
		b.WriteString(_fmtPageOpen)
		for j = 0; j < pageLen; j++ {
			fmt.Fprintf(&b, "%v", data[i+j])
			if j+1 < pageLen {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtPageClose)
	}

	return b.String()
}
