package draft

import (
	"context"

	"chief-of-staff-api/internal/model"
)

// UseCase defines the business logic interface for the draft queue.
type UseCase interface {
	// List returns all pending drafts, newest first.
	List(ctx context.Context) (ListOutput, error)

	// Count returns the pending draft count plus how many are newer than
	// the caller's watermark.
	Count(ctx context.Context, input CountInput) (CountOutput, error)

	// Approve moves a draft to the Approved folder, byte for byte.
	Approve(ctx context.Context, sc model.Scope, id string) (ApproveOutput, error)

	// Reject annotates a draft with a rejection block and moves it to the
	// dead letter queue.
	Reject(ctx context.Context, sc model.Scope, input RejectInput) (RejectOutput, error)
}
