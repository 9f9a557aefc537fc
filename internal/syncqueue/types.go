package syncqueue

import "time"

// Action kinds that can be queued for later replay.
const (
	KindApprove = "approve"
	KindReject  = "reject"
)

// Action is one approve/reject taken while the API was unreachable,
// persisted until a drain pass replays it successfully.
type Action struct {
	ID       string // ULID: lexicographic order is queue order
	TaskID   string
	Kind     string
	Reason   string // reject only
	QueuedAt time.Time
	Attempts int
	LastErr  string
}
