//go:build !cgo || windows

package cmem

import "unsafe"

// Stub implementations for non-cgo builds or Windows. They let the pure-Go
// packages compile; actually crossing the boundary without cgo is a
// programming error, so every call fails loudly.

const notBuilt = "cmem: built without cgo"

func AllocZero(uintptr) unsafe.Pointer { panic(notBuilt) }

func Free(p unsafe.Pointer) {
	if p != nil {
		panic(notBuilt)
	}
}

func CString(string) unsafe.Pointer { panic(notBuilt) }

func GoString(p unsafe.Pointer) string {
	if p != nil {
		panic(notBuilt)
	}
	return ""
}
