package draft

import "time"

// Priority levels recognised in draft metadata.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// DefaultRejectReason is used when a reject request carries no reason.
const DefaultRejectReason = "Rejected by user"

// Draft is a markdown file in the Drafts folder awaiting human review.
// It is produced by the automation backend; this service only reads it
// and moves it to a terminal folder.
type Draft struct {
	ID         string    // filename without .md extension
	Filename   string    // backing file name
	Title      string    // first content line, leading '#' stripped; filename if empty
	Priority   string    // low|medium|high|urgent, parsed from a "priority:" line
	ActionType string    // parsed from an "action_type:"/"action-type:" line, "unknown" if absent
	CreatedAt  time.Time // filesystem birth time (mtime where birth time is unavailable)
	ModifiedAt time.Time
	Preview    string // first 200 characters of content
}

// --- UseCase Inputs ---

type CountInput struct {
	// Since is a client-supplied watermark: drafts created after it count
	// as "new". Zero value means the caller does not track a watermark.
	Since time.Time
}

type RejectInput struct {
	ID     string
	Reason string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Drafts []Draft
	Count  int
}

type CountOutput struct {
	Count    int
	NewCount int
}

type ApproveOutput struct {
	File string
}

type RejectOutput struct {
	File   string
	Reason string
}
