package abiguard

import "errors"

// Version is the module version reported by the abiguard command.
const Version = "0.2.0"

// CGOEnabled reports whether the C heap primitives were compiled in. When
// false, every marshaling or allocation call fails loudly; the pure-Go
// pieces (status codes, handle lifting) still work.
func CGOEnabled() bool {
	return cgoEnabled
}

// SelfCheck exercises the marshaling path end to end, reporting whether the
// C heap primitives behind it are usable in this build. Returns ErrNotBuilt
// on non-cgo builds.
func SelfCheck() error {
	if !cgoEnabled {
		return &Error{Op: "SelfCheck", Err: ErrNotBuilt}
	}
	const probe = "abiguard self check"
	p, err := CString(probe)
	if err != nil {
		return &Error{Op: "SelfCheck", Err: err}
	}
	defer FreeCString(p)
	if got := GoString(p); got != probe {
		return &Error{Op: "SelfCheck", Err: errors.New("round trip mismatch")}
	}
	return nil
}
