// SPDX-License-Identifier: MIT
// Package elastic: sentinel aliases and error context helpers.
// All sentinels are the shape package values; match them with errors.Is.

package elastic

import (
	"fmt"

	"github.com/katalvlaran/elasticarray/shape"
)

var (
	// ErrInvalidShape: empty shape, negative dim, overflow, or a non-zero
	// trailing extent over a zero-length kernel.
	ErrInvalidShape = shape.ErrInvalidShape

	// ErrImmutableDimension: a resize/reserve request changes a kernel dim.
	ErrImmutableDimension = shape.ErrImmutableDimension

	// ErrDimensionMismatch: a source element count does not fit the kernel
	// length or the copy target.
	ErrDimensionMismatch = shape.ErrDimensionMismatch

	// ErrOutOfRange: flat or multi-dimensional index outside the buffer.
	ErrOutOfRange = shape.ErrOutOfRange
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ---------- error context tags ----------

const (
	ctxNew          = "New"
	ctxFromSlice    = "FromSlice"
	ctxFromDense    = "FromDense"
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxAtIndex      = "AtIndex"
	ctxSetIndex     = "SetIndex"
	ctxPage         = "Page"
	ctxResize       = "Resize"
	ctxReserve      = "Reserve"
	ctxAppend       = "Append"
	ctxAppendSlabs  = "AppendSlabs"
	ctxAppendStream = "AppendStream"
	ctxPrepend      = "Prepend"
	ctxPrependSlabs = "PrependSlabs"
	ctxCopy         = "Copy"
	ctxCopyRegion   = "CopyRegion"
	ctxZip          = "ZipWith"
	ctxBroadcast    = "BroadcastPages"
)

// arrayErrorf wraps an error with a uniform Array method context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// countErrorf reports an element count that is not a whole number of pages.
func countErrorf(method string, n, kernelLen int) error {
	return fmt.Errorf("Array.%s: %d elements for page length %d: %w", method, n, kernelLen, ErrDimensionMismatch)
}
