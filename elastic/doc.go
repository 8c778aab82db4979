// SPDX-License-Identifier: MIT

// Package elastic provides dense N-d arrays whose last dimension can grow
// and shrink.
//
// What & Why:
//
//	An Array[T] has fixed kernel dims (every dim but the last) and a single
//	flat buffer. Resize, Append and Prepend change only the trailing extent
//	by resizing that buffer, so a stream of equally shaped frames can be
//	accumulated without reallocating an N-d block per frame.
//	Everything else behaves like a plain dense array: the buffer layout is
//	exactly that of dense.Array with the same shape (first index fastest,
//	last index outermost), equality compares kernel dims and elements, and
//	conversion to/from dense arrays is a single copy.
//
// Guarantees:
//
//	len(buffer) is always kernelLen * LastDim(). Resize and Reserve validate
//	the requested shape before touching the buffer; a rejected call leaves
//	the array unchanged. Append/Prepend of an eager slice are all-or-nothing.
//	Streaming sources (AppendSlabs, AppendStream, PrependSlabs) are applied
//	incrementally: on a late mismatch the slabs or whole pages already
//	applied stay in place.
//
// Concurrency:
//
//	Array is not safe for concurrent mutation. Callers sharing an Array
//	across goroutines must synchronize externally. Slices returned by Data
//	and Page alias the buffer and are valid until the next mutating call.
//
// Complexity:
//
//	Shape queries O(rank) (LastDim and Len are O(1)); At/Set O(1);
//	Resize/Append amortized O(k) in the elements added; Prepend O(n).
package elastic
