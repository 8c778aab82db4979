// SPDX-License-Identifier: MIT

// Package elastic - Append / Prepend along the trailing axis.
//
// Failure semantics:
//   - Append, Prepend (eager []T): the element count is checked first; a
//     mismatch leaves the array unchanged.
//   - AppendSlabs, PrependSlabs (iter.Seq[[]T]): each slab is checked when it
//     arrives; slabs applied before a bad one stay applied.
//   - AppendStream (iter.Seq[T]): elements are committed one whole page at a
//     time; a trailing partial page is dropped and reported, earlier pages stay.
//
// Complexity quicksheet:
//   - Append: amortized O(k); Prepend: O(n + k); k = elements added.

package elastic

import (
	"fmt"
	"iter"

	"golang.org/x/exp/slices"
)

// Append adds src at the tail; LastDim() grows by len(src)/KernelLen().
// MAIN DESCRIPTION:
//   - src is a whole number of pages laid out like the buffer itself.
//
// Errors:
//   - ErrDimensionMismatch when len(src) is not a multiple of KernelLen()
//     (for a zero-length kernel: when src is non-empty). Array unchanged.
//
// Complexity:
//   - Time amortized O(len(src)).
func (a *Array[T]) Append(src []T) error {
	if !a.kernel.Exact(len(src)) {
		return countErrorf(ctxAppend, len(src), a.kernel.Len())
	}
	a.data = append(a.data, src...)

	return nil
}

// AppendSlabs appends every slab produced by seq, in order.
// MAIN DESCRIPTION:
//   - Streaming variant of Append for lazily produced blocks.
//
// Errors:
//   - ErrDimensionMismatch on the first slab that is not a whole number of
//     pages. Slabs before it remain appended; seq is not resumed.
//
// Complexity:
//   - Time amortized O(total elements).
func (a *Array[T]) AppendSlabs(seq iter.Seq[[]T]) error {
	applied := 0
	for slab := range seq {
		if !a.kernel.Exact(len(slab)) {
			return countErrorf(fmt.Sprintf("%s: slab %d", ctxAppendSlabs, applied), len(slab), a.kernel.Len())
		}
		a.data = append(a.data, slab...)
		applied++
	}

	return nil
}

// AppendStream appends single elements from seq, committing a page each
// time KernelLen() elements have arrived.
// MAIN DESCRIPTION:
//   - For sources whose length is unknown up front. The buffer never holds a
//     partial page once AppendStream returns.
//
// Errors:
//   - ErrDimensionMismatch when seq ends mid-page (the partial page is
//     discarded, whole pages stay) or yields anything over a zero-length kernel.
//
// Complexity:
//   - Time amortized O(elements).
func (a *Array[T]) AppendStream(seq iter.Seq[T]) error {
	kl := a.kernel.Len()
	mark := len(a.data) // end of the last committed page
	for v := range seq {
		if kl == 0 {
			return countErrorf(ctxAppendStream, 1, kl)
		}
		a.data = append(a.data, v)
		if len(a.data)-mark == kl {
			mark = len(a.data)
		}
	}
	if partial := len(a.data) - mark; partial != 0 {
		clear(a.data[mark:])
		a.data = a.data[:mark]
		return countErrorf(ctxAppendStream+": trailing partial page", partial, kl)
	}

	return nil
}

// Prepend inserts src at the head; existing pages keep their relative order
// and move up by len(src)/KernelLen().
// MAIN DESCRIPTION:
//   - Prepending B2 then B1 yields B1, B2, <old pages>.
//   - src may alias the array (e.g. one of its own pages); it is copied first.
//
// Errors:
//   - ErrDimensionMismatch as for Append. Array unchanged.
//
// Complexity:
//   - Time O(n + len(src)).
func (a *Array[T]) Prepend(src []T) error {
	if !a.kernel.Exact(len(src)) {
		return countErrorf(ctxPrepend, len(src), a.kernel.Len())
	}
	a.insert(0, src)

	return nil
}

// PrependSlabs places the slabs produced by seq at the head, in sequence
// order: the first slab becomes page 0, then the second, then the old pages.
// Errors:
//   - ErrDimensionMismatch on the first bad slab; slabs before it remain.
//
// Complexity: O(slabs * n) worst case, each slab shifts the tail once.
func (a *Array[T]) PrependSlabs(seq iter.Seq[[]T]) error {
	at, applied := 0, 0
	for slab := range seq {
		if !a.kernel.Exact(len(slab)) {
			return countErrorf(fmt.Sprintf("%s: slab %d", ctxPrependSlabs, applied), len(slab), a.kernel.Len())
		}
		a.insert(at, slab)
		at += len(slab)
		applied++
	}

	return nil
}

// insert splices src into the buffer at element offset at.
// slices.Insert shifts in place when capacity allows, which would corrupt a
// source that aliases the buffer, so such sources are cloned first.
func (a *Array[T]) insert(at int, src []T) {
	if len(src) == 0 {
		return
	}
	if MightAlias(src, a.data[:cap(a.data)]) {
		src = slices.Clone(src)
	}
	a.data = slices.Insert(a.data, at, src...)
}
