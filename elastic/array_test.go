// SPDX-License-Identifier: MIT
// Package elastic_test contains unit tests for construction, accessors and views.
package elastic_test

import (
	"testing"

	"github.com/katalvlaran/elasticarray/elastic"
	"github.com/stretchr/testify/require"
)

// TestNewShape verifies Shape/KernelShape/LastDim/Len/Rank after construction.
func TestNewShape(t *testing.T) {
	a := mustNew[float64](t, 2, 3, 4)
	require.Equal(t, []int{2, 3, 4}, a.Shape())
	require.Equal(t, []int{2, 3}, a.KernelShape())
	require.Equal(t, 6, a.KernelLen())
	require.Equal(t, 4, a.LastDim())
	require.Equal(t, 24, a.Len())
	require.Equal(t, 3, a.Rank())
	requireInvariant(t, a, []int{2, 3})
}

// TestNewRankOne: a 1-d elastic array has an empty kernel of length 1.
func TestNewRankOne(t *testing.T) {
	a := mustNew[int](t, 5)
	require.Equal(t, []int{5}, a.Shape())
	require.Equal(t, 1, a.KernelLen())
	require.Equal(t, 1, a.Rank())
	requireInvariant(t, a, nil)
}

// TestNewInvalidShape covers every construction failure.
func TestNewInvalidShape(t *testing.T) {
	cases := []struct {
		name string
		dims []int
	}{
		{"rank0", nil},
		{"negative kernel dim", []int{2, -3, 1}},
		{"negative last dim", []int{2, 3, -1}},
		{"zero kernel with extent", []int{2, 0, 3}},
		{"overflow", []int{1 << 40, 1 << 40, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := elastic.New[int](tc.dims)
			require.ErrorIs(t, err, elastic.ErrInvalidShape)
		})
	}
}

// TestZeroLengthKernel: extent always 0 and only empty appends succeed.
func TestZeroLengthKernel(t *testing.T) {
	a := mustNew[int](t, 2, 0, 0)
	require.Equal(t, []int{2, 0, 0}, a.Shape())
	require.Zero(t, a.LastDim())

	require.NoError(t, a.Append(nil))
	require.ErrorIs(t, a.Append([]int{1}), elastic.ErrDimensionMismatch)
	require.ErrorIs(t, a.Prepend([]int{1}), elastic.ErrDimensionMismatch)
	require.Zero(t, a.LastDim())
	requireInvariant(t, a, []int{2, 0})
}

// TestOptions checks the fill policy, reserved capacity and option panics.
func TestOptions(t *testing.T) {
	a, err := elastic.New([]int{2, 2}, elastic.WithFill(1.5), elastic.WithCapacity[float64](10))
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, a.Data())
	require.Equal(t, []int{2, 2}, a.Shape()) // capacity is not observable in the shape
	require.Equal(t, 10, a.Cap())

	before := &a.Data()[0]
	require.NoError(t, a.Append(make([]float64, 16)))
	require.Same(t, before, &a.Data()[0]) // no reallocation up to the reserved extent

	require.PanicsWithValue(t, elastic.PanicCapacityInvalid_TestOnly, func() { elastic.WithCapacity[int](-1) })
	require.PanicsWithValue(t, elastic.PanicWorkersInvalid_TestOnly, func() { elastic.WithWorkers(-1) })

	// capacity over a zero-length kernel is ignored
	z, err := elastic.New([]int{0, 0}, elastic.WithCapacity[int](4))
	require.NoError(t, err)
	require.Zero(t, z.Len())
}

// TestFromSlice checks copy semantics and the element-count guard.
func TestFromSlice(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6}
	a, err := elastic.FromSlice(src, 3, 2)
	require.NoError(t, err)
	src[0] = 99
	v, err := a.At(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = elastic.FromSlice(src, 4, 2)
	require.ErrorIs(t, err, elastic.ErrDimensionMismatch)
	_, err = elastic.FromSlice(src)
	require.ErrorIs(t, err, elastic.ErrInvalidShape)
}

// TestAtSetBounds: flat bounds are exactly the buffer bounds.
func TestAtSetBounds(t *testing.T) {
	a := mustIota(t, 2, 3)
	v, err := a.At(5)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = a.At(6)
	require.ErrorIs(t, err, elastic.ErrOutOfRange)
	_, err = a.At(-1)
	require.ErrorIs(t, err, elastic.ErrIndexOutOfBounds)
	require.ErrorIs(t, a.Set(6, 0), elastic.ErrOutOfRange)

	require.NoError(t, a.Set(2, 42))
	require.Equal(t, 42, a.Data()[2])
}

// TestAtIndexLayout pins the layout: first index fastest, last index outermost.
func TestAtIndexLayout(t *testing.T) {
	a := mustIota(t, 2, 3, 4)
	cases := []struct {
		idx  []int
		want int
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{1, 0, 0}, 1},
		{[]int{0, 1, 0}, 2},
		{[]int{1, 2, 0}, 5},
		{[]int{0, 0, 1}, 6},
		{[]int{1, 2, 3}, 23},
	}
	for _, tc := range cases {
		v, err := a.AtIndex(tc.idx...)
		require.NoError(t, err)
		require.Equal(t, tc.want, v, "idx %v", tc.idx)
	}

	require.NoError(t, a.SetIndex(-7, 1, 1, 2))
	require.Equal(t, -7, a.Data()[1+2*1+6*2])
}

// TestAtIndexBounds covers rank mismatch and every out-of-range axis.
func TestAtIndexBounds(t *testing.T) {
	a := mustIota(t, 2, 3, 4)
	for _, idx := range [][]int{
		{0, 0},
		{0, 0, 0, 0},
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
		{0, -1, 0},
		{0, 0, -1},
	} {
		_, err := a.AtIndex(idx...)
		require.ErrorIs(t, err, elastic.ErrOutOfRange, "idx %v", idx)
		require.ErrorIs(t, a.SetIndex(0, idx...), elastic.ErrOutOfRange, "idx %v", idx)
	}
}

// TestPageViews: pages are write-through views with clipped capacity.
func TestPageViews(t *testing.T) {
	a := mustIota(t, 2, 2, 3)
	p, err := a.Page(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6, 7}, p)
	require.Equal(t, len(p), cap(p))

	p[0] = 100
	v, _ := a.AtIndex(0, 0, 1)
	require.Equal(t, 100, v)

	_ = append(p, -1) // must not clobber page 2
	v, _ = a.AtIndex(0, 0, 2)
	require.Equal(t, 8, v)

	_, err = a.Page(3)
	require.ErrorIs(t, err, elastic.ErrOutOfRange)

	var seen []int
	for j, page := range a.Pages() {
		seen = append(seen, j)
		require.Len(t, page, 4)
	}
	require.Equal(t, []int{0, 1, 2}, seen)

	// early break
	count := 0
	for range a.Pages() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

// TestCloneSimilar ensures Clone is deep and Similar keeps only the kernel.
func TestCloneSimilar(t *testing.T) {
	a := mustIota(t, 2, 3, 2)
	c := a.Clone()
	require.True(t, elastic.Equal(a, c))
	require.NoError(t, c.Set(0, -1))
	v, _ := a.At(0)
	require.Equal(t, 0, v)

	s := a.Similar()
	require.Equal(t, []int{2, 3, 0}, s.Shape())
	require.NoError(t, s.Append(seqInts(0, 6)))
	require.Equal(t, []int{2, 3, 1}, s.Shape())
	require.Equal(t, []int{2, 3, 2}, a.Shape())
}

// TestString checks the page-per-line dump.
func TestString(t *testing.T) {
	a := mustIota(t, 3, 2)
	require.Equal(t, "[0, 1, 2]\n[3, 4, 5]\n", a.String())
	require.Equal(t, "", mustNew[int](t, 3, 0).String())
}
