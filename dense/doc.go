// SPDX-License-Identifier: MIT

// Package dense provides a plain N-d array with a fixed shape over one flat
// buffer, and the Tensor capability shared with elastic arrays.
//
// Layout matches package shape: first index fastest, last index outermost.
// An elastic array of the same shape has a byte-for-byte identical buffer,
// so conversion in either direction is a single copy.
//
// Complexity:
//
//	New: O(n) zero-init; At/Set: O(1); AtIndex/SetIndex: O(rank); Clone: O(n).
package dense
