// SPDX-License-Identifier: MIT

// Package elastic: functional configuration for construction and for the
// elementwise kernels. This file defines:
//   - Option[T] / Options[T] (construction: fill policy, reserved capacity),
//   - OpOption (elementwise kernels: worker count),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions / gatherOpOptions helpers.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package elastic

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the number of pages reserved beyond the initial
	// extent at construction (none).
	DefaultCapacity = 0

	// DefaultWorkers runs elementwise kernels on the calling goroutine.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "elastic: WithCapacity: pages must be >= 0"
	panicWorkersInvalid  = "elastic: WithWorkers: n must be >= 0"
)

// Option mutates construction options. Safe to apply repeatedly.
type Option[T any] func(*Options[T])

// Options stores the effective construction configuration.
// Fields are unexported; public entry points accept ...Option[T].
type Options[T any] struct {
	fill     T    // value written into every initial element when hasFill
	hasFill  bool // false: elements start as the zero value of T
	capacity int  // pages to reserve; DefaultCapacity
}

// WithFill initializes every element of a new array to v.
// Without it new elements hold the zero value of T.
// Complexity: O(1) to build; O(n) applied in New.
func WithFill[T any](v T) Option[T] {
	return func(o *Options[T]) {
		o.fill = v
		o.hasFill = true
	}
}

// WithCapacity reserves room for at least pages trailing slices, so that
// appends up to that extent do not reallocate.
// Never observable through Shape(); only Cap() reports it.
//
// Errors:
//   - Panics with a stable message when pages < 0.
func WithCapacity[T any](pages int) Option[T] {
	if pages < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options[T]) { o.capacity = pages }
}

// gatherOptions applies opts over the defaults.
func gatherOptions[T any](opts ...Option[T]) Options[T] {
	o := Options[T]{capacity: DefaultCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// OpOption configures elementwise kernels (Map, ZipWith, BroadcastPages,
// Add, Sub, Mul, Scale).
type OpOption func(*opOptions)

type opOptions struct {
	workers int // 1: serial; 0: one worker per CPU; n: at most n workers
}

// WithWorkers spreads an elementwise kernel over up to n goroutines, one
// page per task. n == 0 uses one worker per CPU. Pages are disjoint, so the
// result does not depend on n.
//
// Errors:
//   - Panics with a stable message when n < 0.
func WithWorkers(n int) OpOption {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *opOptions) { o.workers = n }
}

func gatherOpOptions(opts ...OpOption) opOptions {
	o := opOptions{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
