// SPDX-License-Identifier: MIT
// Package elastic_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures: sequential buffers, slab/element streams.

package elastic_test

import (
	"iter"
	"testing"

	"github.com/katalvlaran/elasticarray/elastic"
	"github.com/stretchr/testify/require"
)

// mustNew allocates an elastic array or fails the test.
func mustNew[T any](tb testing.TB, dims ...int) *elastic.Array[T] {
	tb.Helper()
	a, err := elastic.New[T](dims)
	require.NoError(tb, err)

	return a
}

// seqInts returns [start, start+1, ..., start+n-1].
func seqInts(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}

	return out
}

// mustIota builds an array of the given shape holding 0, 1, 2, ... in flat order.
func mustIota(tb testing.TB, dims ...int) *elastic.Array[int] {
	tb.Helper()
	n := 1
	for _, d := range dims {
		n *= d
	}
	a, err := elastic.FromSlice(seqInts(0, n), dims...)
	require.NoError(tb, err)

	return a
}

// slabs yields each slab in order.
func slabs[T any](ss ...[]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, s := range ss {
			if !yield(s) {
				return
			}
		}
	}
}

// elems yields each value in order, counting how many were pulled.
func elems[T any](pulled *int, vs ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vs {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

// requireInvariant asserts the buffer-length invariant and the kernel.
func requireInvariant[T any](tb testing.TB, a *elastic.Array[T], kernel []int) {
	tb.Helper()
	require.True(tb, elastic.InvariantHolds_TestOnly(a))
	require.Equal(tb, a.KernelLen()*a.LastDim(), a.Len())
	if len(kernel) == 0 {
		require.Empty(tb, a.KernelShape())
		return
	}
	require.Equal(tb, kernel, a.KernelShape())
}
