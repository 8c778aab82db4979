// SPDX-License-Identifier: MIT

// Package shape - Divisor: cached multiplicative inverse for a fixed divisor.
//
// Purpose:
//   - Replace the hardware division in Kernel.Extent with a 64x64->128 multiply,
//     an add and a shift. The kernel length never changes after construction,
//     so the magic number is computed once.
//
// Method:
//   - Granlund–Montgomery round-up variant for unsigned 64-bit operands:
//     l = ceil(log2 d), m = floor(2^64 * (2^l - d) / d) + 1,
//     q = (hi(m*n) + ((n - hi(m*n)) >> 1)) >> (l-1).
//     Exact for every n in [0, 2^64).
//   - d == 1 and d == 0 use dedicated kinds (shift of -1 is not representable).

package shape

import "math/bits"

const (
	divZero     uint8 = iota // divisor 0: every quotient is 0
	divIdentity              // divisor 1: quotient is n
	divMagic                 // general case: multiply-high + shift
)

// Divisor divides non-negative ints by a fixed value without a DIV instruction.
// The zero value divides everything to 0.
type Divisor struct {
	d     uint64 // original divisor
	magic uint64 // m' = floor(2^64*(2^l-d)/d) + 1
	shift uint   // l - 1
	kind  uint8  // divZero | divIdentity | divMagic
}

// NewDivisor precomputes the inverse of d.
// d <= 0 yields the zero Divisor (Div returns 0), which is the extent rule
// for zero-length kernels.
// Complexity: O(1).
func NewDivisor(d int) Divisor {
	switch {
	case d <= 0:
		return Divisor{}
	case d == 1:
		return Divisor{d: 1, kind: divIdentity}
	}

	ud := uint64(d)
	l := uint(64 - bits.LeadingZeros64(ud-1)) // ceil(log2 d), in [1, 63]
	// (2^l - d) < d holds because 2^(l-1) < d, so Div64 cannot overflow.
	m, _ := bits.Div64((uint64(1)<<l)-ud, 0, ud)

	return Divisor{d: ud, magic: m + 1, shift: l - 1, kind: divMagic}
}

// Value returns the divisor this inverse was built for (0 for the zero value).
func (v Divisor) Value() int { return int(v.d) }

// Div returns n / d. Negative n falls back to plain integer division.
// Complexity: O(1).
func (v Divisor) Div(n int) int {
	switch v.kind {
	case divZero:
		return 0
	case divIdentity:
		return n
	}
	if n < 0 {
		return n / int(v.d)
	}

	un := uint64(n)
	t, _ := bits.Mul64(v.magic, un)

	return int((t + ((un - t) >> 1)) >> v.shift)
}

// Rem returns n mod d, computed from Div.
// The zero Divisor returns n, so Rem(n) == 0 only for n == 0: an element
// count is an exact multiple of a zero-length kernel only when it is empty.
func (v Divisor) Rem(n int) int {
	if v.kind == divZero {
		return n
	}

	return n - v.Div(n)*int(v.d)
}
