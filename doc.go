// Package elasticarray is a small toolkit for N-dimensional arrays whose
// only growable dimension is the last one.
//
// 🚀 What is elasticarray?
//
//	Think of a stack of fixed-size frames (images, feature vectors, audio
//	blocks) that keeps growing: every frame has the same shape, only the
//	number of frames changes. elasticarray stores such data in one flat,
//	contiguous buffer and gives you:
//		• Append / Prepend of whole pages, eager or from iterators
//		• Resize of the trailing extent with fixed leading dims enforced
//		• Reserve / ShrinkToFit capacity control without observable changes
//		• Page views, flat and multi-index access with error returns
//		• Page-wise element kernels (Map, ZipWith, Add, Sum…) with optional workers
//		• Lossless conversion to and from fixed-shape dense arrays
//
// ✨ Why choose elasticarray?
//
//   - Strict shape contract – leading dims never change after construction
//   - Predictable errors – sentinel values usable with errors.Is
//   - Amortized O(page) appends – no per-append shape recomputation
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under three subpackages:
//
//	shape/    dims validation, kernel length, fast exact division by the kernel length
//	dense/    fixed-shape N-d array with the same memory layout
//	elastic/  the elastic Array[T]: growth, resize, copies, views & kernels
//
// Memory layout (first index fastest, trailing axis outermost):
//
//	dims (2, 3, t)          offset(i1, i2, j) = i1 + 2·i2 + 6·j
//
//	flat:  0 1 2 3 4 5 | 6 7 8 9 10 11 | …
//	       └─ page 0 ─┘   └── page 1 ──┘
//
//	go get github.com/katalvlaran/elasticarray/elastic
package elasticarray
