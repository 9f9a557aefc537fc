package notification

import "errors"

var (
	ErrInvalidSubscription = errors.New("subscription is missing endpoint or keys")
)
