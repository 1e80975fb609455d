package abiguard

// Status classifies the outcome of an exported call. The integer encoding is
// part of the ABI: C callers switch on these exact 32-bit values.
type Status int32

const (
	// NoError means the call completed without error. Deliberately not named
	// "Success": a verification call can complete without error and still
	// report a negative result in its payload.
	NoError Status = 0

	// UnclassifiedError reports a failure that the operation did not handle
	// itself, typically a trapped panic. It points at a defect in the
	// library, not at the caller's input.
	UnclassifiedError Status = 1

	// CallerError reports invalid input from the C caller.
	CallerError Status = 2

	// ReceiverError reports a failure attributable to this library's own
	// logic while handling otherwise valid input.
	ReceiverError Status = 3
)

// String returns a short description of the status.
func (s Status) String() string {
	switch s {
	case NoError:
		return "no error"
	case UnclassifiedError:
		return "unclassified error"
	case CallerError:
		return "caller error"
	case ReceiverError:
		return "receiver error"
	default:
		return "unknown"
	}
}
