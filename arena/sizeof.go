package arena

import "unsafe"

// sizeOf is the only use of unsafe in this package: measuring an element
// type's footprint to size blocks around BlockSize bytes. It never touches
// pointer arithmetic or aliases memory.
func sizeOf[T any](zero T) uintptr {
	return unsafe.Sizeof(zero)
}
