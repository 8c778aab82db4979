// SPDX-License-Identifier: MIT
// Package: elastic
//
// Purpose:
//   - Elementwise and page-broadcast kernels that treat an Array as a plain
//     dense array of its Shape(). Results are new Arrays with the same kernel.
//   - Page-parallel execution through essentials.ConcurrentMap when
//     WithWorkers asks for more than one worker.
//
// Determinism & Performance:
//   - Each task owns one page of the output; results do not depend on the
//     worker count.
//   - Serial path is a flat loop over the buffer.

package elastic

import (
	"fmt"

	"github.com/unixpickle/essentials"
	"golang.org/x/exp/constraints"
)

// Number is the element constraint of the arithmetic helpers.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// forEachPage runs fn over [0, pages) serially or on a worker pool.
func forEachPage(o opOptions, pages int, fn func(j int)) {
	if o.workers == 1 || pages < 2 {
		for j := 0; j < pages; j++ {
			fn(j)
		}
		return
	}
	workers := o.workers
	if workers > 0 {
		workers = essentials.MinInt(workers, pages)
	}
	essentials.ConcurrentMap(workers, pages, fn)
}

// Map returns f applied to every element of a.
// Complexity: O(n).
func Map[T, U any](a *Array[T], f func(T) U, opts ...OpOption) *Array[U] {
	o := gatherOpOptions(opts...)
	out := &Array[U]{kernel: a.kernel, data: make([]U, len(a.data))}
	kl := a.kernel.Len()
	forEachPage(o, a.LastDim(), func(j int) {
		lo, hi := j*kl, (j+1)*kl
		for i := lo; i < hi; i++ {
			out.data[i] = f(a.data[i])
		}
	})

	return out
}

// ZipWith returns f(a[i], b[i]) for every flat index i.
// Errors:
//   - ErrDimensionMismatch unless a and b have the same Shape().
//
// Complexity: O(n).
func ZipWith[A, B, C any](a *Array[A], b *Array[B], f func(A, B) C, opts ...OpOption) (*Array[C], error) {
	if !a.kernel.Equal(b.kernel) || len(a.data) != len(b.data) {
		return nil, arrayErrorf(fmt.Sprintf("%s: shapes %v and %v", ctxZip, a.Shape(), b.Shape()), ErrDimensionMismatch)
	}
	o := gatherOpOptions(opts...)
	out := &Array[C]{kernel: a.kernel, data: make([]C, len(a.data))}
	kl := a.kernel.Len()
	forEachPage(o, a.LastDim(), func(j int) {
		lo, hi := j*kl, (j+1)*kl
		for i := lo; i < hi; i++ {
			out.data[i] = f(a.data[i], b.data[i])
		}
	})

	return out, nil
}

// BroadcastPages combines every page of a with one kernel-shaped operand:
// out[i + kl*j] = f(a[i + kl*j], page[i]).
// Errors:
//   - ErrDimensionMismatch when len(page) != a.KernelLen().
//
// Complexity: O(n).
func BroadcastPages[T, U, V any](a *Array[T], page []U, f func(T, U) V, opts ...OpOption) (*Array[V], error) {
	kl := a.kernel.Len()
	if len(page) != kl {
		return nil, arrayErrorf(fmt.Sprintf("%s: operand has %d elements, page %d", ctxBroadcast, len(page), kl), ErrDimensionMismatch)
	}
	o := gatherOpOptions(opts...)
	out := &Array[V]{kernel: a.kernel, data: make([]V, len(a.data))}
	forEachPage(o, a.LastDim(), func(j int) {
		base := j * kl
		for i := 0; i < kl; i++ {
			out.data[base+i] = f(a.data[base+i], page[i])
		}
	})

	return out, nil
}

// Do visits every element in flat order; stops early when f returns false.
// Complexity: O(n), no allocation.
func (a *Array[T]) Do(f func(i int, v T) bool) {
	for i, v := range a.data {
		if !f(i, v) {
			return
		}
	}
}

// Apply replaces each element with f(i, v) in place, in flat order.
// Complexity: O(n), no allocation.
func (a *Array[T]) Apply(f func(i int, v T) T) {
	for i, v := range a.data {
		a.data[i] = f(i, v)
	}
}

// Add returns a + b elementwise. Errors: ErrDimensionMismatch.
func Add[T Number](a, b *Array[T], opts ...OpOption) (*Array[T], error) {
	return ZipWith(a, b, func(x, y T) T { return x + y }, opts...)
}

// Sub returns a - b elementwise. Errors: ErrDimensionMismatch.
func Sub[T Number](a, b *Array[T], opts ...OpOption) (*Array[T], error) {
	return ZipWith(a, b, func(x, y T) T { return x - y }, opts...)
}

// Mul returns the elementwise (Hadamard) product. Errors: ErrDimensionMismatch.
func Mul[T Number](a, b *Array[T], opts ...OpOption) (*Array[T], error) {
	return ZipWith(a, b, func(x, y T) T { return x * y }, opts...)
}

// Scale returns s * a.
func Scale[T Number](a *Array[T], s T, opts ...OpOption) *Array[T] {
	return Map(a, func(x T) T { return s * x }, opts...)
}

// Sum returns the sum of all elements in flat order (0 for an empty array).
func Sum[T Number](a *Array[T]) T {
	var s T
	for _, v := range a.data {
		s += v
	}

	return s
}
