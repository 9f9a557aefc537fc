package usecase

import (
	"context"
	"sort"

	"chief-of-staff-api/internal/draft"
)

// List returns all pending drafts sorted by creation time, newest first.
func (uc *implUseCase) List(ctx context.Context) (draft.ListOutput, error) {
	drafts, err := uc.repo.ListDrafts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListDrafts: %v", err)
		return draft.ListOutput{}, err
	}

	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].CreatedAt.After(drafts[j].CreatedAt)
	})

	return draft.ListOutput{
		Drafts: drafts,
		Count:  len(drafts),
	}, nil
}

// Count reports how many drafts are pending and how many were created
// after the caller's watermark. Without a watermark NewCount stays 0,
// which keeps the legacy field shape without any server-side memory.
func (uc *implUseCase) Count(ctx context.Context, input draft.CountInput) (draft.CountOutput, error) {
	drafts, err := uc.repo.ListDrafts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Count ListDrafts: %v", err)
		return draft.CountOutput{}, err
	}

	out := draft.CountOutput{Count: len(drafts)}
	if !input.Since.IsZero() {
		for _, d := range drafts {
			if d.CreatedAt.After(input.Since) {
				out.NewCount++
			}
		}
	}
	return out, nil
}
