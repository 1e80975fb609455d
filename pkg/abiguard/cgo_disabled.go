//go:build !cgo || windows

package abiguard

const cgoEnabled = false
