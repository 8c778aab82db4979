// SPDX-License-Identifier: MIT
// Package: shape
//
// Purpose:
//  - Canonical index/shape guards used by shape, dense and elastic.
//  - Return sentinels wrapped with a validator tag; no panics.

package shape

import "fmt"

// ValidateDims rejects negative entries.
// Complexity: O(rank).
func ValidateDims(dims []int) error {
	for i, d := range dims {
		if d < 0 {
			return shapeErrorf(fmt.Sprintf("ValidateDims: dim %d is %d", i, d), ErrInvalidShape)
		}
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return shapeErrorf(fmt.Sprintf("ValidateIndex(%d) len %d", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateRange ensures [off, off+n) lies within [0, length).
// A zero-length range is valid at any off in [0, length].
// Complexity: O(1).
func ValidateRange(off, n, length int) error {
	if off < 0 || n < 0 || off > length || n > length-off {
		return shapeErrorf(fmt.Sprintf("ValidateRange(%d,%d) len %d", off, n, length), ErrOutOfRange)
	}

	return nil
}

// Offset maps a multi-index to its flat position.
// MAIN DESCRIPTION:
//   - First index fastest: off = i1 + s1*i2 + s1*s2*i3 + ...
//     For an elastic shape the last stride is the kernel length, so pages
//     are contiguous and the trailing axis is outermost.
//
// Errors:
//   - ErrOutOfRange on rank mismatch or any index outside its dim.
//
// Complexity:
//   - Time O(rank), no allocation.
func Offset(dims, idx []int) (int, error) {
	if len(idx) != len(dims) {
		return 0, shapeErrorf(fmt.Sprintf("Offset: %d indices for rank %d", len(idx), len(dims)), ErrOutOfRange)
	}
	off, stride := 0, 1
	for k, i := range idx {
		if i < 0 || i >= dims[k] {
			return 0, shapeErrorf(fmt.Sprintf("Offset: index %d is %d, dim %d", k, i, dims[k]), ErrOutOfRange)
		}
		off += i * stride
		stride *= dims[k]
	}

	return off, nil
}
