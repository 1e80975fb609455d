package abiguard

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unsafe"

	"go.uber.org/zap"

	"github.com/abiguard/abiguard-go/internal/cmem"
)

const (
	panicPrefix = "Go panic: "
	noPanicInfo = "no unwind information"
)

// Guard runs op and guarantees no panic unwinds past it into the C caller,
// where unwinding is undefined behavior. On the normal path op's returned
// pointer passes through untouched, including when op already recorded a
// recoverable error on its own response. When op panics, Guard discards
// whatever op left behind, allocates a fresh zeroed response of type T on
// the C heap, stamps it with UnclassifiedError and a message describing the
// panic, and returns that instead.
//
// Trapping a panic after shared state may have been left half-mutated is not
// sound in the general case. Guard is a last-resort safety net for the
// boundary; failures op can anticipate belong on its response as CallerError
// or ReceiverError, not in a panic.
//
// Guard allocates only on the failure path and never frees anything.
func Guard[T any, P interface {
	*T
	Response
}](op func() unsafe.Pointer) unsafe.Pointer {
	out, pv := run(op)
	if pv == nil {
		return out
	}

	desc := describePanic(pv.value)
	logger().Error("trapped panic at ABI boundary",
		zap.String("panic", desc),
		zap.ByteString("stack", pv.stack),
	)

	// A NUL inside the panic text would truncate the message on the C side.
	desc = strings.ReplaceAll(desc, "\x00", "")

	var zero T
	raw := cmem.AllocZero(unsafe.Sizeof(zero))
	P((*T)(raw)).SetError(UnclassifiedError, cmem.CString(panicPrefix+desc))
	return raw
}

type trapped struct {
	value any
	stack []byte
}

func run(op func() unsafe.Pointer) (out unsafe.Pointer, pv *trapped) {
	defer func() {
		if r := recover(); r != nil {
			pv = &trapped{value: r, stack: debug.Stack()}
		}
	}()
	return op(), nil
}

// describePanic extracts a human-readable description from a panic value.
// Values carrying no usable text fall back to a fixed placeholder so the
// caller still receives a well-formed message.
func describePanic(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return noPanicInfo
	}
}
