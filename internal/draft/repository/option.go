package repository

// ApproveDraftOptions holds parameters for approving a draft.
type ApproveDraftOptions struct {
	ID string
}

// RejectDraftOptions holds parameters for rejecting a draft.
type RejectDraftOptions struct {
	ID     string
	Reason string
}
