// Package abiguard is a safety layer for Go code exported across the C ABI.
//
// Shared libraries built with -buildmode=c-shared hand raw pointers to
// callers that know nothing about Go's runtime. This package supplies the
// pieces every such export needs: C string and path marshaling, opaque
// handle lifting for Go values, a minimal response contract, and a guard
// that keeps panics from unwinding into the caller's stack, where unwinding
// is undefined behavior.
//
// # Ownership Protocol
//
// Every pointer this package produces is released through exactly one
// matching call:
//
//	CString     -> FreeCString
//	NewResponse -> FreeResponse (after the per-type destructor ran)
//	Lift        -> Unlift
//
// Ownership of a returned pointer, and of any message buffer reachable from
// it, transfers to the caller the moment an exported function returns.
// Nothing is freed implicitly.
//
// # Error Tiers
//
// Recoverable errors are recorded by the operation itself on its own
// response, using CallerError for bad input and ReceiverError for failures
// in the library's own logic. Panics are a separate tier: Guard traps them
// and reports UnclassifiedError with a synthesized message. Precondition
// violations such as a nil pointer passed to Borrow are neither - they
// abort, because the broken precondition leaves no valid object to report
// through.
//
// # Caveat
//
// Trapping a panic after shared state may have been left half-mutated is
// not sound in the general case. Guard is a last-resort net for the
// boundary, not a substitute for in-band error reporting inside the
// operation.
package abiguard
