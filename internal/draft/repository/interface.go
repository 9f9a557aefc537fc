package repository

import (
	"context"

	"chief-of-staff-api/internal/draft"
)

// Repository defines data access for the draft queue. The canonical
// implementation is the vault filesystem; the interface exists so use
// cases can be tested without touching disk.
type Repository interface {
	// ListDrafts returns all pending drafts in unspecified order.
	ListDrafts(ctx context.Context) ([]draft.Draft, error)

	// ApproveDraft atomically moves the draft's backing file to Approved
	// and returns the moved filename.
	ApproveDraft(ctx context.Context, opt ApproveDraftOptions) (string, error)

	// RejectDraft appends the rejection block, writes the annotated copy
	// into the dead letter queue, then removes the original. Returns the
	// original filename.
	RejectDraft(ctx context.Context, opt RejectDraftOptions) (string, error)
}
