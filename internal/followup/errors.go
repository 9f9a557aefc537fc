package followup

import "errors"

var (
	ErrNotFound      = errors.New("follow-up not found")
	ErrInvalidAction = errors.New("invalid follow-up action")
)
