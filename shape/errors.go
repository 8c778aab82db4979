// SPDX-License-Identifier: MIT
// Package shape: sentinel error set shared by shape, dense and elastic.
// dense and elastic re-export these values as aliases, so errors.Is matches
// regardless of which package a caller imports.

package shape

import (
	"errors"
	"fmt"
)

// NOTE ON WRAPPING
// ----------------
// Validators return these sentinels wrapped once with a short tag
// ("Split", "Kernel.Check", ...). Outer layers wrap again with their own
// method context; callers always match with errors.Is.

var (
	// ErrInvalidShape is returned for malformed shapes: empty dims, negative
	// dims, a product that overflows int, or a non-zero trailing extent over
	// a zero-length kernel.
	ErrInvalidShape = errors.New("shape: invalid shape")

	// ErrImmutableDimension is returned when a requested shape changes any
	// dimension other than the last one.
	ErrImmutableDimension = errors.New("shape: only the last dimension may change")

	// ErrDimensionMismatch indicates that an element count is not compatible
	// with the kernel length or with the length of a copy target.
	ErrDimensionMismatch = errors.New("shape: dimension mismatch")

	// ErrOutOfRange indicates a flat or multi-dimensional index outside the
	// current extent.
	ErrOutOfRange = errors.New("shape: index out of range")
)

// shapeErrorf wraps a sentinel with the validator tag.
func shapeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
