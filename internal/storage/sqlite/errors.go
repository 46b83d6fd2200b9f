package sqlite

import "errors"

// Sentinel errors callers match with errors.Is to map storage outcomes to
// HTTP responses. Anything else coming out of this package is a wrapped
// driver failure.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already in use")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
)
