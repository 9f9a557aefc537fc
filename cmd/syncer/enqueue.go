package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chief-of-staff-api/internal/syncqueue"
)

var errEnqueueUsage = errors.New("usage: syncer enqueue <approve|reject> <task-id> [reason...]")

// runEnqueue records a single action for later replay. Trailing
// arguments past the task id are joined into the rejection reason.
func runEnqueue(ctx context.Context, queue *syncqueue.Queue, args []string) error {
	if len(args) < 2 {
		return errEnqueueUsage
	}

	kind, taskID := args[0], args[1]
	reason := strings.Join(args[2:], " ")
	if kind == syncqueue.KindApprove && reason != "" {
		return fmt.Errorf("approve takes no reason: %w", errEnqueueUsage)
	}

	action, err := queue.Enqueue(ctx, taskID, kind, reason)
	if err != nil {
		return err
	}

	fmt.Printf("Queued %s for %s as %s\n", action.Kind, action.TaskID, action.ID)
	return nil
}
