package syncqueue

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	pkgLog "chief-of-staff-api/pkg/log"
)

// Queue is the durable offline action queue. Rows live in the shared
// SQLite store, so queued actions survive restarts and are visible to
// both the enqueuing client and the syncer agent.
type Queue struct {
	db *sql.DB
	l  pkgLog.Logger
}

// NewQueue creates a queue over an opened database.
func NewQueue(db *sql.DB, l pkgLog.Logger) *Queue {
	return &Queue{db: db, l: l}
}

// Enqueue persists an action for later replay and returns it with its
// assigned id.
func (q *Queue) Enqueue(ctx context.Context, taskID, kind, reason string) (Action, error) {
	if kind != KindApprove && kind != KindReject {
		return Action{}, fmt.Errorf("unknown action kind %q", kind)
	}

	now := time.Now()
	action := Action{
		ID:       ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		TaskID:   taskID,
		Kind:     kind,
		Reason:   reason,
		QueuedAt: now,
	}

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO sync_actions (id, task_id, kind, reason, queued_at, attempts, last_error)
		VALUES (?, ?, ?, ?, ?, 0, '')`,
		action.ID, action.TaskID, action.Kind, action.Reason, action.QueuedAt.Unix())
	if err != nil {
		return Action{}, fmt.Errorf("failed to enqueue action: %w", err)
	}

	q.l.Infof(ctx, "syncqueue: queued %s %s as %s", action.Kind, action.TaskID, action.ID)
	return action, nil
}

// Pending returns queued actions in enqueue order.
func (q *Queue) Pending(ctx context.Context) ([]Action, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, task_id, kind, reason, queued_at, attempts, last_error
		FROM sync_actions ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending actions: %w", err)
	}
	defer rows.Close()

	var actions []Action
	for rows.Next() {
		var a Action
		var queuedAt int64
		if err := rows.Scan(&a.ID, &a.TaskID, &a.Kind, &a.Reason, &queuedAt, &a.Attempts, &a.LastErr); err != nil {
			return nil, err
		}
		a.QueuedAt = time.Unix(queuedAt, 0)
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// Remove deletes a replayed action.
func (q *Queue) Remove(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM sync_actions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to remove action: %w", err)
	}
	return nil
}

// RecordFailure bumps the attempt counter and stores the error, leaving
// the action queued for the next drain pass.
func (q *Queue) RecordFailure(ctx context.Context, id string, cause error) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE sync_actions SET attempts = attempts + 1, last_error = ? WHERE id = ?`,
		cause.Error(), id)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	return nil
}
