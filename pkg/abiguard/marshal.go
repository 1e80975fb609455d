package abiguard

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/abiguard/abiguard-go/internal/cmem"
)

// CString copies s onto the C heap as a NUL-terminated buffer, transferring
// ownership to the caller. The buffer must be released exactly once through
// FreeCString. Text containing an embedded NUL byte cannot be represented in
// this form; it is reported as ErrEmbeddedNUL, never silently truncated.
func CString(s string) (unsafe.Pointer, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &Error{Op: "CString", Err: ErrEmbeddedNUL}
	}
	return cmem.CString(s), nil
}

// FreeCString releases a buffer produced by CString. No-op on nil. Freeing
// the same buffer twice, or a buffer that did not come from this package, is
// undefined behavior on the C heap.
func FreeCString(p unsafe.Pointer) {
	cmem.Free(p)
}

// GoString copies a possibly-nil NUL-terminated buffer into a Go string
// without taking ownership. Nil maps to the empty string, never an error.
// Invalid UTF-8 is repaired with the replacement rune rather than rejected;
// for inbound data the boundary does not own, availability wins over strict
// validation.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return strings.ToValidUTF8(cmem.GoString(p), string(utf8.RuneError))
}

// GoPath reads a possibly-nil NUL-terminated buffer naming a filesystem
// path. The bytes are taken as-is; no normalization is applied.
func GoPath(p unsafe.Pointer) string {
	return GoString(p)
}
