package assimp

import "unsafe"

// The native library hands out bulk data as (pointer, count) pairs whose
// memory it owns. The two adapters below reinterpret such pairs as Go
// slices without copying. They are the single trust boundary of the
// binding: a zero count always yields nil (the native contract allows the
// pointer to be null in that case), a positive count is trusted to come
// with a valid pointer to exactly that many elements. The returned slices
// borrow their lifetime from the owning Scene and must not be retained
// past its release.

// span reinterprets a foreign array of n elements as []T.
func span[T any](p unsafe.Pointer, n uint32) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// refSpan reinterprets a foreign array of n pointers as []*T.
func refSpan[T any](p unsafe.Pointer, n uint32) []*T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((**T)(p), n)
}
