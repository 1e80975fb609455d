// Package cmem owns every C heap allocation made by this module.
//
// # Design Principles
//
// 1. Isolation: ALL cgo code lives in this package. No other library package
//    imports "C", so consumers can still compile pure-Go builds of anything
//    that does not actually cross the boundary.
//
// 2. Opaque addresses: the package trades exclusively in unsafe.Pointer.
//    cgo types are package-local in Go, so C.char and friends never appear
//    in a signature.
//
// 3. Symmetry: every allocation here has exactly one matching Free. Nothing
//    in this package frees implicitly.
//
// # Non-cgo Builds
//
// A build-tagged stub keeps the package compiling when cgo is disabled or on
// Windows. The stubs fail loudly when called; callers that need to know in
// advance check the build through the public package's CGOEnabled.
package cmem
