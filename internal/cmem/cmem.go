//go:build cgo && !windows

package cmem

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import "unsafe"

// AllocZero returns size bytes of zeroed C heap memory. Zeroed memory is the
// default state of every response struct: status 0, nil message, zero
// payload. A zero size still returns a valid, freeable pointer.
func AllocZero(size uintptr) unsafe.Pointer {
	if size == 0 {
		size = 1
	}
	p := C.calloc(1, C.size_t(size))
	if p == nil {
		panic("cmem: calloc failed")
	}
	return p
}

// Free releases memory obtained from this package. No-op on nil.
func Free(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// CString copies s onto the C heap with a trailing NUL byte. The caller owns
// the buffer and must release it through Free. Callers are responsible for
// rejecting embedded NUL bytes before calling; this function copies the
// bytes as given.
func CString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

// GoString copies the NUL-terminated buffer at p into a Go string. It does
// not take ownership of p. A nil pointer yields "".
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(p))
}
