package attendance

import "errors"

// State machine errors, all surfaced to clients as business-rule violations.
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)
