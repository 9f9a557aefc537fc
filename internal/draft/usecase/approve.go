package usecase

import (
	"context"

	"chief-of-staff-api/internal/draft"
	repo "chief-of-staff-api/internal/draft/repository"
	"chief-of-staff-api/internal/model"
)

// Approve validates the identifier, then moves the draft to Approved.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, id string) (draft.ApproveOutput, error) {
	if err := validateID(id); err != nil {
		return draft.ApproveOutput{}, err
	}

	file, err := uc.repo.ApproveDraft(ctx, repo.ApproveDraftOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Approve ApproveDraft %s: %v", id, err)
		return draft.ApproveOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Approve: %s approved by %q", file, sc.UserID)
	return draft.ApproveOutput{File: file}, nil
}
