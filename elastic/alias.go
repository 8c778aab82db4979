// SPDX-License-Identifier: MIT

// Package elastic - alias queries.
//
// Views (Page, Pages, Data, sub-slices of them) share the owning array's
// buffer. MightAlias answers "can a write through x be observed through y"
// by comparing address ranges; Overlap answers the same for two index
// ranges inside one buffer.

package elastic

import "unsafe"

// MightAlias reports whether the element ranges of x and y share memory.
// Empty slices and zero-size element types never alias.
// Complexity: O(1).
func MightAlias[T any](x, y []T) bool {
	xlo, xhi := span(x)
	ylo, yhi := span(y)

	return xlo < yhi && ylo < xhi
}

// MightAlias reports whether b's buffer overlaps a's buffer.
func (a *Array[T]) MightAlias(b Buffer[T]) bool { return MightAlias(a.data, b.Data()) }

// Overlap reports whether [aOff, aOff+aLen) and [bOff, bOff+bLen) intersect.
// Empty ranges never overlap.
// Complexity: O(1).
func Overlap(aOff, aLen, bOff, bLen int) bool {
	if aLen <= 0 || bLen <= 0 {
		return false
	}

	return aOff < bOff+bLen && bOff < aOff+aLen
}

// span returns the [lo, hi) address range covered by s's elements.
func span[T any](s []T) (lo, hi uintptr) {
	if len(s) == 0 {
		return 0, 0
	}
	var zero T
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(s)))

	return lo, lo + uintptr(len(s))*unsafe.Sizeof(zero)
}
