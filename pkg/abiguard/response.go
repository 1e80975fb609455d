package abiguard

import (
	"unsafe"

	"github.com/abiguard/abiguard-go/internal/cmem"
)

// Response is the one capability every FFI-exposed result struct must
// implement: accept a status code and message, whatever its other fields
// are. It is the sole coupling between Guard and the concrete response types
// of each exported function.
type Response interface {
	// SetError overwrites the status and message fields. The response takes
	// ownership of msg, which is either nil or a C-heap NUL-terminated
	// buffer.
	SetError(status Status, msg unsafe.Pointer)
}

// Header is the fixed-layout prefix shared by every response struct: a
// 4-byte status code followed by a nullable message pointer. C callers rely
// on this exact field order and width. Embedding Header in a response struct
// provides its SetError implementation, so per-type glue is a struct
// definition and nothing else.
type Header struct {
	Status Status
	Msg    unsafe.Pointer
}

// SetError implements Response.
func (h *Header) SetError(status Status, msg unsafe.Pointer) {
	h.Status = status
	h.Msg = msg
}

// NewResponse allocates a zeroed response of type T on the C heap, returning
// the typed view alongside the raw pointer that crosses the boundary. Zeroed
// memory is exactly the default "nothing happened yet" state: NoError
// status, nil message, zero payload. The caller owns the allocation; the
// receiving side must eventually release it through the per-type destructor
// and FreeResponse.
func NewResponse[T any, P interface {
	*T
	Response
}]() (P, unsafe.Pointer) {
	var zero T
	raw := cmem.AllocZero(unsafe.Sizeof(zero))
	return P((*T)(raw)), raw
}

// FreeResponse releases the response struct itself. It does not touch the
// message buffer or any payload fields; the per-type destructor must release
// those first. No-op on nil.
func FreeResponse(p unsafe.Pointer) {
	cmem.Free(p)
}
