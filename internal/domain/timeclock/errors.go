package timeclock

import "errors"

// Timeclock domain errors
var (
	ErrUnknownSecretCode = errors.New("no employee matches this secret code")
	ErrAlreadyWorking    = errors.New("you have already started work")
	ErrNotWorking        = errors.New("you have not started work yet")
	ErrAlreadyOnBreak    = errors.New("you are already on a break")
	ErrNotOnBreak        = errors.New("you are not on a break")
)
