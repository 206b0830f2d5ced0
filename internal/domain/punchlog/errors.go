package punchlog

import "errors"

// Punch log domain errors
var (
	ErrEventIndexOutOfRange = errors.New("event index is out of range")
	ErrInvalidEventKind     = errors.New("unknown punch event kind")
)
