package followup

import "context"

// UseCase defines the business logic interface for follow-up reminders.
type UseCase interface {
	// List returns unresolved follow-ups ordered by reminder date.
	List(ctx context.Context) (ListOutput, error)

	// Apply executes one of resolve/snooze/dismiss on a follow-up.
	Apply(ctx context.Context, input ApplyInput) (ApplyOutput, error)
}
