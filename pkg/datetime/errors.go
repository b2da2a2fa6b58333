package datetime

import "errors"

// Sentinel errors returned by the calendar, registry and Date operations.
// Callers match them with errors.Is; the wrapped message carries the input.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDateOutOfRange   = errors.New("date out of range")
	ErrSerialOutOfRange = errors.New("serial out of range")
)
