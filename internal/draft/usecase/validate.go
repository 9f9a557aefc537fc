package usecase

import (
	"regexp"
	"strings"

	"chief-of-staff-api/internal/draft"
)

// safeIDPattern is the only identifier shape the queue accepts. Anything
// else is rejected before a single filesystem call happens.
var safeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// validateID guards every transition against path traversal.
func validateID(id string) error {
	if id == "" {
		return draft.ErrInvalidID
	}
	if strings.Contains(id, "..") ||
		strings.ContainsAny(id, `/\`) {
		return draft.ErrInvalidID
	}
	if !safeIDPattern.MatchString(id) {
		return draft.ErrInvalidID
	}
	return nil
}
