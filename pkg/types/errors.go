package types

import "errors"

// Standard errors returned by the repository layer. A lookup miss is a
// normal outcome, not a failure: callers use errors.Is to map
// ErrTaskNotFound to their own semantics (the HTTP layer answers 404).
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskNotCreated = errors.New("task not found after insert")
)
