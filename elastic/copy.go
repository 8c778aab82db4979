// SPDX-License-Identifier: MIT

// Package elastic - raw element copies and dense conversion.
//
// Purpose:
//   - Copy/CopyRegion move elements between any two Buffers (elastic or
//     dense) without touching either shape.
//   - FromDense/ToDense convert through a single copy; the layouts match.

package elastic

import (
	"fmt"

	"github.com/katalvlaran/elasticarray/dense"
	"github.com/katalvlaran/elasticarray/shape"
)

// Copy overwrites every element of dst with the element of src at the same
// flat position. Overlapping buffers are handled like the builtin copy.
// MAIN DESCRIPTION:
//   - Shapes are not compared, only element counts: a 2×3×2 elastic array
//     may be copied into a dense 12-vector.
//
// Errors:
//   - ErrDimensionMismatch when the element counts differ.
//
// Complexity:
//   - Time O(n), no allocation.
func Copy[T any](dst, src Buffer[T]) error {
	d, s := dst.Data(), src.Data()
	if len(d) != len(s) {
		return arrayErrorf(fmt.Sprintf("%s: dst has %d elements, src %d", ctxCopy, len(d), len(s)), ErrDimensionMismatch)
	}
	copy(d, s)

	return nil
}

// CopyRegion copies n elements from src[sOff:] into dst[dOff:].
// Errors:
//   - ErrOutOfRange when either range leaves its buffer.
//
// Complexity:
//   - Time O(n), no allocation.
func CopyRegion[T any](dst Buffer[T], dOff int, src Buffer[T], sOff, n int) error {
	d, s := dst.Data(), src.Data()
	if err := shape.ValidateRange(dOff, n, len(d)); err != nil {
		return arrayErrorf(ctxCopyRegion+": dst", err)
	}
	if err := shape.ValidateRange(sOff, n, len(s)); err != nil {
		return arrayErrorf(ctxCopyRegion+": src", err)
	}
	copy(d[dOff:dOff+n], s[sOff:sOff+n])

	return nil
}

// FromDense builds an elastic array with the same shape and elements as src.
// MAIN DESCRIPTION:
//   - Any dense.Tensor is accepted; Buffers take a single copy, other
//     tensors are read through At.
//
// Errors:
//   - ErrInvalidShape for rank 0, or for a zero-length kernel with a
//     non-zero last dim (not representable as an elastic array).
//   - ErrDimensionMismatch when src.Len() disagrees with src.Shape().
//   - errors returned by src.At.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromDense[T any](src dense.Tensor[T]) (*Array[T], error) {
	a, err := New[T](src.Shape())
	if err != nil {
		return nil, arrayErrorf(ctxFromDense, err)
	}
	if src.Len() != len(a.data) {
		return nil, arrayErrorf(fmt.Sprintf("%s: %d elements for shape %v", ctxFromDense, src.Len(), a.Shape()), ErrDimensionMismatch)
	}

	// Buffer fast-path: one copy of the flat data.
	if b, ok := src.(Buffer[T]); ok {
		copy(a.data, b.Data())
		return a, nil
	}

	// Generic fallback via At.
	var v T
	for i := range a.data {
		if v, err = src.At(i); err != nil {
			return nil, arrayErrorf(ctxFromDense, err)
		}
		a.data[i] = v
	}

	return a, nil
}

// ToDense returns a dense copy with the same shape and elements.
// Complexity: O(n).
func (a *Array[T]) ToDense() *dense.Array[T] {
	d, err := dense.FromSlice(a.data, a.Shape()...)
	if err != nil {
		// len(data) == kernelLen*LastDim() always holds; reaching this is a bug.
		panic(fmt.Sprintf("elastic: ToDense: %v", err))
	}

	return d
}
