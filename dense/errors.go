// SPDX-License-Identifier: MIT
// Package dense: sentinel aliases.
// The values are the shape package sentinels so errors.Is matches across
// shape, dense and elastic.

package dense

import (
	"fmt"

	"github.com/katalvlaran/elasticarray/shape"
)

var (
	// ErrInvalidShape is returned for negative dims or an overflowing size.
	ErrInvalidShape = shape.ErrInvalidShape

	// ErrOutOfRange is returned by At/Set/AtIndex/SetIndex outside the buffer.
	ErrOutOfRange = shape.ErrOutOfRange

	// ErrDimensionMismatch is returned when a source length does not match the shape.
	ErrDimensionMismatch = shape.ErrDimensionMismatch
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFrom     = "FromSlice"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAtIndex  = "AtIndex"
	ctxSetIndex = "SetIndex"
)

// denseErrorf wraps an error with a uniform Array context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}
