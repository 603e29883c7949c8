package errors

import "fmt"

var (
	ErrQubitOutOfRange  = fmt.Errorf("qubit index out of range")
	ErrClbitOutOfRange  = fmt.Errorf("classical bit index out of range")
	ErrUnknownGate      = fmt.Errorf("unknown gate kind")
	ErrNoMeasurement    = fmt.Errorf("circuit has no measurement")
	ErrTooManyQubits    = fmt.Errorf("circuit exceeds backend qubit capacity")
	ErrNoOutcome        = fmt.Errorf("result holds no outcome")
	ErrAmbiguousOutcome = fmt.Errorf("result holds more than one outcome")
	ErrInvalidChunkSize = fmt.Errorf("chunk size must be at least 1")
)
