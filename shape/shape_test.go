// SPDX-License-Identifier: MIT
// Package shape_test covers Split, Kernel validation and the extent mapping.
package shape_test

import (
	"testing"

	"github.com/katalvlaran/elasticarray/shape"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	kernel, last, err := shape.Split([]int{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, kernel)
	require.Equal(t, 4, last)

	// rank 1: empty kernel
	kernel, last, err = shape.Split([]int{7})
	require.NoError(t, err)
	require.Empty(t, kernel)
	require.Equal(t, 7, last)
}

func TestSplitRejectsMalformed(t *testing.T) {
	_, _, err := shape.Split(nil)
	require.ErrorIs(t, err, shape.ErrInvalidShape)

	_, _, err = shape.Split([]int{2, -1, 3})
	require.ErrorIs(t, err, shape.ErrInvalidShape)
}

func TestSplitReturnsCopy(t *testing.T) {
	dims := []int{2, 3, 4}
	kernel, _, err := shape.Split(dims)
	require.NoError(t, err)
	kernel[0] = 99
	require.Equal(t, 2, dims[0]) // caller's slice untouched
}

func TestProduct(t *testing.T) {
	n, err := shape.Product(nil)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = shape.Product([]int{2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = shape.Product([]int{1 << 40, 1 << 40})
	require.ErrorIs(t, err, shape.ErrInvalidShape)
}

func TestKernelExtent(t *testing.T) {
	k, err := shape.NewKernel([]int{2, 3})
	require.NoError(t, err)
	require.Equal(t, 6, k.Len())
	require.Equal(t, 2, k.Rank())
	require.Equal(t, 0, k.Extent(0))
	require.Equal(t, 4, k.Extent(24))

	n, err := k.BufferLen(5)
	require.NoError(t, err)
	require.Equal(t, 30, n)
	require.Equal(t, []int{2, 3, 5}, k.Full(5))

	require.True(t, k.Exact(12))
	require.False(t, k.Exact(13))
}

func TestZeroLengthKernel(t *testing.T) {
	k, err := shape.NewKernel([]int{3, 0})
	require.NoError(t, err)
	require.Equal(t, 0, k.Len())
	require.Equal(t, 0, k.Extent(0))
	require.Equal(t, 0, k.Extent(100)) // extent is 0 whatever the buffer holds

	require.True(t, k.Exact(0))
	require.False(t, k.Exact(1))

	n, err := k.BufferLen(0)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = k.BufferLen(1)
	require.ErrorIs(t, err, shape.ErrInvalidShape)
}

func TestKernelCheck(t *testing.T) {
	k, err := shape.NewKernel([]int{2, 3})
	require.NoError(t, err)

	cases := []struct {
		name   string
		dims   []int
		extent int
		n      int
		err    error
	}{
		{"grow", []int{2, 3, 9}, 9, 54, nil},
		{"empty", []int{2, 3, 0}, 0, 0, nil},
		{"rank0", nil, 0, 0, shape.ErrInvalidShape},
		{"kernel changed", []int{2, 4, 2}, 0, 0, shape.ErrImmutableDimension},
		{"rank grew", []int{2, 3, 1, 2}, 0, 0, shape.ErrImmutableDimension},
		{"rank shrank", []int{6, 2}, 0, 0, shape.ErrImmutableDimension},
		{"negative extent", []int{2, 3, -1}, 0, 0, shape.ErrInvalidShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			extent, n, err := k.Check(tc.dims)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.extent, extent)
			require.Equal(t, tc.n, n)
		})
	}
}

func TestKernelDimsIsCopy(t *testing.T) {
	src := []int{4, 5}
	k, err := shape.NewKernel(src)
	require.NoError(t, err)
	src[0] = 1
	d := k.Dims()
	d[1] = 1
	require.Equal(t, []int{4, 5}, k.Dims())
}

func TestOffset(t *testing.T) {
	dims := []int{2, 3, 4}
	off, err := shape.Offset(dims, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1+2*2+3*6, off)

	off, err = shape.Offset(dims, []int{0, 0, 0})
	require.NoError(t, err)
	require.Zero(t, off)

	_, err = shape.Offset(dims, []int{2, 0, 0})
	require.ErrorIs(t, err, shape.ErrOutOfRange)
	_, err = shape.Offset(dims, []int{0, 0})
	require.ErrorIs(t, err, shape.ErrOutOfRange)
	_, err = shape.Offset(dims, []int{0, -1, 0})
	require.ErrorIs(t, err, shape.ErrOutOfRange)
}

func TestValidateRange(t *testing.T) {
	require.NoError(t, shape.ValidateRange(0, 10, 10))
	require.NoError(t, shape.ValidateRange(10, 0, 10))
	require.ErrorIs(t, shape.ValidateRange(5, 6, 10), shape.ErrOutOfRange)
	require.ErrorIs(t, shape.ValidateRange(-1, 1, 10), shape.ErrOutOfRange)
	require.ErrorIs(t, shape.ValidateRange(0, -1, 10), shape.ErrOutOfRange)
	require.ErrorIs(t, shape.ValidateRange(11, 0, 10), shape.ErrOutOfRange)
}
