package abiguard

import (
	"errors"
	"fmt"
)

var (
	// ErrEmbeddedNUL indicates outbound text contained a NUL byte, which
	// cannot be represented in a NUL-terminated buffer.
	ErrEmbeddedNUL = errors.New("abiguard: text contains embedded NUL byte")

	// ErrNotBuilt indicates the module was compiled without cgo, so the C
	// heap primitives are unavailable.
	ErrNotBuilt = errors.New("abiguard: built without cgo")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("abiguard.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
