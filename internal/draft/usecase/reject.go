package usecase

import (
	"context"

	"chief-of-staff-api/internal/draft"
	repo "chief-of-staff-api/internal/draft/repository"
	"chief-of-staff-api/internal/model"
)

// Reject validates the identifier, then annotates and dead-letters the draft.
func (uc *implUseCase) Reject(ctx context.Context, sc model.Scope, input draft.RejectInput) (draft.RejectOutput, error) {
	if err := validateID(input.ID); err != nil {
		return draft.RejectOutput{}, err
	}

	reason := input.Reason
	if reason == "" {
		reason = draft.DefaultRejectReason
	}

	file, err := uc.repo.RejectDraft(ctx, repo.RejectDraftOptions{
		ID:     input.ID,
		Reason: reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reject RejectDraft %s: %v", input.ID, err)
		return draft.RejectOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Reject: %s rejected by %q", file, sc.UserID)
	return draft.RejectOutput{File: file, Reason: reason}, nil
}
