// SPDX-License-Identifier: MIT

// Package shape - Split / Kernel: the fixed part of an elastic shape.
//
// Purpose:
//   - Split a full shape (d1, ..., dM, last) into kernel dims and the trailing extent.
//   - Cache the kernel length and its Divisor so extent queries are O(1).
//   - Validate candidate shapes for resize/reserve BEFORE any buffer mutation.
//
// Complexity quicksheet:
//   - Split, NewKernel, Check: O(rank). Len, Extent, BufferLen: O(1).

package shape

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/slices"
)

// ---------- validator tags ----------

const (
	tagSplit     = "Split"
	tagProduct   = "Product"
	tagKernel    = "NewKernel"
	tagCheck     = "Kernel.Check"
	tagBufferLen = "Kernel.BufferLen"
)

// Split separates a full shape into its kernel dims and its last dim.
// MAIN DESCRIPTION:
//   - The kernel is every dimension except the last; it is returned as a copy.
//
// Inputs:
//   - dims: full shape, rank >= 1, all entries >= 0.
//
// Returns:
//   - kernel: dims[:len(dims)-1] (copied, possibly empty).
//   - last  : dims[len(dims)-1].
//
// Errors:
//   - ErrInvalidShape when dims is empty or holds a negative entry.
//
// Complexity:
//   - Time O(rank), Space O(rank).
func Split(dims []int) (kernel []int, last int, err error) {
	if len(dims) == 0 {
		return nil, 0, shapeErrorf(tagSplit+": rank 0", ErrInvalidShape)
	}
	if err = ValidateDims(dims); err != nil {
		return nil, 0, shapeErrorf(tagSplit, err)
	}
	n := len(dims) - 1

	return slices.Clone(dims[:n:n]), dims[n], nil
}

// Product returns the number of elements described by dims (1 for no dims).
// Errors: ErrInvalidShape on a negative entry or int overflow.
// Complexity: O(rank).
func Product(dims []int) (int, error) {
	var hi, lo uint64
	n := uint64(1)
	for _, d := range dims {
		if d < 0 {
			return 0, shapeErrorf(tagProduct, ErrInvalidShape)
		}
		hi, lo = bits.Mul64(n, uint64(d))
		if hi != 0 || lo > uint64(maxInt) {
			return 0, shapeErrorf(tagProduct+": overflow", ErrInvalidShape)
		}
		n = lo
	}

	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)

// Kernel is the immutable, non-trailing part of an elastic shape.
// Build it with NewKernel; the zero value has length 0 and reports a zero
// extent for every buffer length.
type Kernel struct {
	dims   []int   // fixed dims, never mutated after NewKernel
	length int     // product of dims
	div    Divisor // inverse of length
}

// NewKernel validates dims and caches their product and its Divisor.
// An empty dims slice is a valid kernel of length 1 (a 1-d elastic array).
// Errors: ErrInvalidShape on a negative entry or overflow.
// Complexity: O(rank).
func NewKernel(dims []int) (Kernel, error) {
	n, err := Product(dims)
	if err != nil {
		return Kernel{}, shapeErrorf(tagKernel, err)
	}

	return Kernel{
		dims:   slices.Clone(dims),
		length: n,
		div:    NewDivisor(n),
	}, nil
}

// Dims returns a copy of the kernel dims.
func (k Kernel) Dims() []int { return slices.Clone(k.dims) }

// Rank returns the number of kernel dims (full rank minus one).
func (k Kernel) Rank() int { return len(k.dims) }

// Len returns the kernel length: the number of elements in one page.
// Complexity: O(1).
func (k Kernel) Len() int { return k.length }

// Dim returns the i-th kernel dim; callers keep 0 <= i < Rank().
func (k Kernel) Dim(i int) int { return k.dims[i] }

// Extent maps a buffer length to the trailing extent.
// MAIN DESCRIPTION:
//   - bufLen / Len() through the cached Divisor; 0 for a zero-length kernel,
//     whatever bufLen is.
//
// Complexity:
//   - Time O(1), no allocation.
func (k Kernel) Extent(bufLen int) int { return k.div.Div(bufLen) }

// Exact reports whether n elements form a whole number of pages.
// For a zero-length kernel only n == 0 is exact.
func (k Kernel) Exact(n int) bool { return k.div.Rem(n) == 0 }

// BufferLen returns the buffer length holding extent pages.
// Errors:
//   - ErrInvalidShape for a negative extent, an overflowing length, or a
//     non-zero extent over a zero-length kernel.
//
// Complexity: O(1).
func (k Kernel) BufferLen(extent int) (int, error) {
	if extent < 0 {
		return 0, shapeErrorf(fmt.Sprintf("%s(%d): negative extent", tagBufferLen, extent), ErrInvalidShape)
	}
	if k.length == 0 {
		if extent != 0 {
			return 0, shapeErrorf(fmt.Sprintf("%s(%d): zero-length kernel", tagBufferLen, extent), ErrInvalidShape)
		}
		return 0, nil
	}
	hi, lo := bits.Mul64(uint64(k.length), uint64(extent))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, shapeErrorf(fmt.Sprintf("%s(%d): overflow", tagBufferLen, extent), ErrInvalidShape)
	}

	return int(lo), nil
}

// Full returns kernel dims ++ [extent] as a fresh slice.
func (k Kernel) Full(extent int) []int {
	out := make([]int, len(k.dims)+1)
	copy(out, k.dims)
	out[len(k.dims)] = extent

	return out
}

// Equal reports whether both kernels have identical dims.
func (k Kernel) Equal(o Kernel) bool { return slices.Equal(k.dims, o.dims) }

// Check validates a candidate full shape against this kernel.
// MAIN DESCRIPTION:
//   - Re-split the candidate and compare its kernel part with k. Pure: the
//     caller mutates its buffer only after Check succeeds.
//
// Implementation:
//   - Stage 1: reject rank 0 (ErrInvalidShape).
//   - Stage 2: compare rank and every kernel dim (ErrImmutableDimension).
//   - Stage 3: validate the trailing extent through BufferLen.
//
// Returns:
//   - extent: the candidate's last dim.
//   - n     : the buffer length that extent requires.
//
// Errors:
//   - ErrInvalidShape, ErrImmutableDimension.
//
// Complexity:
//   - Time O(rank), no allocation.
func (k Kernel) Check(candidate []int) (extent, n int, err error) {
	if len(candidate) == 0 {
		return 0, 0, shapeErrorf(tagCheck+": rank 0", ErrInvalidShape)
	}
	last := len(candidate) - 1
	if last != len(k.dims) {
		return 0, 0, shapeErrorf(fmt.Sprintf("%s: rank %d, want %d", tagCheck, len(candidate), len(k.dims)+1), ErrImmutableDimension)
	}
	for i := 0; i < last; i++ {
		if candidate[i] != k.dims[i] {
			return 0, 0, shapeErrorf(fmt.Sprintf("%s: dim %d is %d, fixed at %d", tagCheck, i, candidate[i], k.dims[i]), ErrImmutableDimension)
		}
	}
	extent = candidate[last]
	if n, err = k.BufferLen(extent); err != nil {
		return 0, 0, shapeErrorf(tagCheck, err)
	}

	return extent, n, nil
}
