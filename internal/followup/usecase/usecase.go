package usecase

import (
	"context"
	"time"

	"chief-of-staff-api/internal/followup"
	repo "chief-of-staff-api/internal/followup/repository"
	"chief-of-staff-api/pkg/log"
)

// implUseCase is the private implementation of followup.UseCase.
type implUseCase struct {
	repo repo.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new follow-up UseCase implementation.
func New(r repo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: r,
		l:    l,
		now:  time.Now,
	}
}

// List returns unresolved follow-ups ordered by reminder date.
func (uc *implUseCase) List(ctx context.Context) (followup.ListOutput, error) {
	followUps, err := uc.repo.ListFollowUps(ctx, repo.ListFollowUpsOptions{ExcludeResolved: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListFollowUps: %v", err)
		return followup.ListOutput{}, err
	}
	return followup.ListOutput{FollowUps: followUps}, nil
}

// Apply executes a status transition. Resolve and dismiss are terminal;
// snooze pushes the reminder out and re-arms a reminded entry.
func (uc *implUseCase) Apply(ctx context.Context, input followup.ApplyInput) (followup.ApplyOutput, error) {
	current, err := uc.repo.GetFollowUp(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Apply GetFollowUp %s: %v", input.ID, err)
		return followup.ApplyOutput{}, err
	}

	opt := repo.UpdateFollowUpOptions{
		ID:           current.ID,
		Status:       current.Status,
		ReminderDate: current.ReminderDate,
	}

	switch input.Action {
	case followup.ActionResolve, followup.ActionDismiss:
		opt.Status = followup.StatusResolved
	case followup.ActionSnooze:
		opt.Status = followup.StatusPending
		opt.ReminderDate = uc.now().Add(followup.SnoozeDuration)
	default:
		return followup.ApplyOutput{}, followup.ErrInvalidAction
	}

	updated, err := uc.repo.UpdateFollowUp(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Apply UpdateFollowUp %s: %v", input.ID, err)
		return followup.ApplyOutput{}, err
	}

	return followup.ApplyOutput{FollowUp: updated}, nil
}
