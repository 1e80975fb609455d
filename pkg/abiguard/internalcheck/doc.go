// Package internalcheck provides internal validation and testing utilities.
//
// This package holds source-level policy checks for the abiguard module:
// cgo isolation and documentation coverage of the boundary API. It is not
// intended for external use and the API may change without notice.
package internalcheck
