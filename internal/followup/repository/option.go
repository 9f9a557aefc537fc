package repository

import "time"

// ListFollowUpsOptions filters the follow-up listing.
// ExcludeResolved drops terminal entries; the dashboard widget only
// shows actionable reminders.
type ListFollowUpsOptions struct {
	ExcludeResolved bool
}

// UpdateFollowUpOptions holds the fields a status transition may change.
type UpdateFollowUpOptions struct {
	ID           string
	Status       string
	ReminderDate time.Time
}
