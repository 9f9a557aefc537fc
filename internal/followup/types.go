package followup

import "time"

// Status values a follow-up moves through.
const (
	StatusPending  = "pending"
	StatusReminded = "reminded"
	StatusResolved = "resolved"
)

// Actions the dashboard can apply to a follow-up.
const (
	ActionResolve = "resolve"
	ActionSnooze  = "snooze"
	ActionDismiss = "dismiss"
)

// SnoozeDuration is how far a snooze pushes the reminder out.
const SnoozeDuration = 24 * time.Hour

// FollowUp is a pending reminder about an email thread awaiting a reply.
type FollowUp struct {
	ID           string
	EmailID      string
	Contact      string
	Subject      string
	SentDate     time.Time
	ReminderDate time.Time
	Status       string
	Priority     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DaysSince reports whole days elapsed since the tracked mail was sent.
func (f FollowUp) DaysSince(now time.Time) int {
	d := int(now.Sub(f.SentDate).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// --- UseCase Inputs/Outputs ---

type ApplyInput struct {
	ID     string
	Action string
}

type ListOutput struct {
	FollowUps []FollowUp
}

type ApplyOutput struct {
	FollowUp FollowUp
}
