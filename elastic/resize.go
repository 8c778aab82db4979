// SPDX-License-Identifier: MIT

// Package elastic - trailing-axis resize and capacity management.
//
// Contract:
//   - Validate-then-mutate: shape.Kernel.Check runs before the buffer is
//     touched, so a rejected Resize/Reserve leaves the array unchanged.
//   - Growing exposes zero-valued elements; shrinking drops the tail pages
//     and clears the vacated slots so the buffer does not pin dropped values.

package elastic

import (
	"golang.org/x/exp/slices"
)

// Resize changes the trailing extent to dims[len(dims)-1].
// MAIN DESCRIPTION:
//   - dims must repeat the kernel dims exactly; only the last entry may differ.
//
// Implementation:
//   - Stage 1: kernel.Check(dims) → target buffer length (no side effects).
//   - Stage 2: grow (zero-filled) or shrink the flat buffer to that length.
//
// Returns:
//   - a itself, mutated, for chaining.
//
// Errors:
//   - ErrImmutableDimension when a kernel dim or the rank differs.
//   - ErrInvalidShape for rank 0, a negative extent, or a non-zero extent
//     over a zero-length kernel.
//
// Determinism:
//   - Resizing twice to the same shape leaves the same state as once.
//
// Complexity:
//   - Time O(|Δn|) amortized (O(n) when the buffer is reallocated).
func (a *Array[T]) Resize(dims ...int) (*Array[T], error) {
	_, n, err := a.kernel.Check(dims)
	if err != nil {
		return a, arrayErrorf(ctxResize, err)
	}
	a.setLen(n)

	return a, nil
}

// ResizeLastDim changes the trailing extent to n pages.
// Errors: ErrInvalidShape for n < 0 or n > 0 over a zero-length kernel.
// Complexity: same as Resize.
func (a *Array[T]) ResizeLastDim(n int) error {
	bl, err := a.kernel.BufferLen(n)
	if err != nil {
		return arrayErrorf(ctxResize, err)
	}
	a.setLen(bl)

	return nil
}

// Reserve pre-allocates room for the extent in dims without changing Shape().
// MAIN DESCRIPTION:
//   - Same validation as Resize; a smaller request than the current capacity
//     is a no-op (Reserve never shrinks).
//
// Errors:
//   - ErrImmutableDimension, ErrInvalidShape.
//
// Complexity:
//   - Time O(n) when it reallocates, O(rank) otherwise.
func (a *Array[T]) Reserve(dims ...int) error {
	_, n, err := a.kernel.Check(dims)
	if err != nil {
		return arrayErrorf(ctxReserve, err)
	}
	if n > len(a.data) {
		a.data = slices.Grow(a.data, n-len(a.data))
	}

	return nil
}

// ShrinkToFit releases spare capacity: afterwards Cap() == LastDim().
// Complexity: O(n) when there is spare capacity.
func (a *Array[T]) ShrinkToFit() {
	if cap(a.data) == len(a.data) {
		return
	}
	buf := make([]T, len(a.data))
	copy(buf, a.data)
	a.data = buf
}

// setLen grows or shrinks the buffer to exactly n elements.
// Callers guarantee n is a valid buffer length for the kernel.
func (a *Array[T]) setLen(n int) {
	switch l := len(a.data); {
	case n < l:
		clear(a.data[n:l])
		a.data = a.data[:n]
	case n > l:
		a.data = slices.Grow(a.data, n-l)[:n]
		clear(a.data[l:n]) // spare capacity may hold values written through Data()
	}
}
