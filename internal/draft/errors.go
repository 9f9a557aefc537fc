package draft

import "errors"

// Domain-specific errors for the draft package.
var (
	ErrInvalidID     = errors.New("invalid task identifier")
	ErrDraftNotFound = errors.New("task not found in drafts")
	ErrLocked        = errors.New("task is being transitioned by another request")
)
