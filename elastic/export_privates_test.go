// SPDX-License-Identifier: MIT

package elastic

// Test-Bridge (White-Box)
//
// Purpose:
//   - Expose the buffer-length invariant and panic messages to elastic_test
//     without widening the production API. Compiled only with tests.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCapacityInvalid_TestOnly = panicCapacityInvalid
	PanicWorkersInvalid_TestOnly  = panicWorkersInvalid
)

// InvariantHolds_TestOnly reports whether len(data) == kernelLen * LastDim()
// and, for a zero-length kernel, that the buffer is empty.
func InvariantHolds_TestOnly[T any](a *Array[T]) bool {
	kl := a.kernel.Len()
	if kl == 0 {
		return len(a.data) == 0 && a.LastDim() == 0
	}

	return len(a.data)%kl == 0 && len(a.data) == kl*a.LastDim()
}
