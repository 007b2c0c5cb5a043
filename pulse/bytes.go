package pulse

import "unsafe"

// SliceBytes reinterprets the memory of values as a byte slice
// without copying.
func SliceBytes[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	var zeroT T

	n := int(unsafe.Sizeof(zeroT)) * len(values)
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(values)))

	return unsafe.Slice(ptr, n)
}
