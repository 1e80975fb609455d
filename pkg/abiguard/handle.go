package abiguard

import (
	"fmt"
	"sync"
	"unsafe"
)

// cgo's pointer passing rules forbid handing C a real Go pointer, so lifted
// values live in a registry and the "pointer" crossing the boundary is a
// small integer disguised as an address. The registry holds the only strong
// reference, which is what makes release explicit.
var (
	mu   sync.Mutex
	next uintptr = 1
	live = map[uintptr]any{}
)

// Lift moves v behind an opaque, ABI-stable pointer that can be handed to C.
// The runtime keeps v alive until the pointer comes back through Unlift; a
// pointer that is never unlifted leaks permanently. That trade is
// deliberate: release at the boundary is always explicit, never automatic.
func Lift(v any) unsafe.Pointer {
	mu.Lock()
	h := next
	next++
	live[h] = v
	mu.Unlock()
	return unsafe.Pointer(h)
}

// Borrow yields the value behind a pointer produced by Lift without
// releasing it. A nil pointer, an unknown pointer, or a value of the wrong
// type is a defect at the call site, and Borrow panics instead of returning
// an error: once this precondition is broken there is no valid object left
// to report through.
func Borrow[T any](p unsafe.Pointer) T {
	if p == nil {
		panic("abiguard: Borrow called with nil pointer")
	}
	mu.Lock()
	v, ok := live[uintptr(p)]
	mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("abiguard: Borrow called with unknown pointer %p", p))
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("abiguard: Borrow called with %p holding %T, not the requested type", p, v))
	}
	return t
}

// Unlift releases a pointer produced by Lift, allowing the value behind it
// to be reclaimed. No-op on nil. An unknown pointer means a double release
// or a pointer this package never produced, and fails as loudly as a bad
// Borrow.
func Unlift(p unsafe.Pointer) {
	if p == nil {
		return
	}
	mu.Lock()
	_, ok := live[uintptr(p)]
	delete(live, uintptr(p))
	mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("abiguard: Unlift called with unknown pointer %p", p))
	}
}
