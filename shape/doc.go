// SPDX-License-Identifier: MIT

// Package shape splits N-d shapes into a fixed kernel and a trailing extent,
// and maps flat buffer lengths to trailing extents and back.
//
// What & Why:
//
//	An elastic array stores its elements in one flat buffer. Every dimension
//	except the last (the "kernel") is fixed for the lifetime of the array, so
//	the size of the last dimension is always len(buffer) / kernel length.
//	Kernel caches that length together with a Divisor so the division runs as
//	a multiply and a shift on every shape query.
//
// Layout:
//
//	Offset uses first-index-fastest order with the trailing axis outermost:
//	(i1, i2, ..., j) -> i1 + s1*i2 + ... + kernelLen*j. One trailing slice
//	(a "page") is therefore kernelLen contiguous elements.
//
// Complexity:
//
//	Split, NewKernel: O(rank). Extent, BufferLen: O(1). Offset: O(rank).
package shape
