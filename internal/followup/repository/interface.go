package repository

import (
	"context"

	"chief-of-staff-api/internal/followup"
)

// Repository defines data access for follow-up reminders.
type Repository interface {
	ListFollowUps(ctx context.Context, opt ListFollowUpsOptions) ([]followup.FollowUp, error)
	GetFollowUp(ctx context.Context, id string) (followup.FollowUp, error)
	UpdateFollowUp(ctx context.Context, opt UpdateFollowUpOptions) (followup.FollowUp, error)
	CreateFollowUp(ctx context.Context, f followup.FollowUp) error
}
