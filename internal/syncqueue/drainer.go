package syncqueue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	pkgLog "chief-of-staff-api/pkg/log"
)

// Drainer replays queued actions against the approvals API. Successful
// replays and 404s clear the row (404 means the task was already
// transitioned through another channel); anything else stays queued for
// the next pass.
type Drainer struct {
	queue      *Queue
	l          pkgLog.Logger
	apiBaseURL string
	httpClient *http.Client
}

// NewDrainer creates a drainer targeting the given API base URL.
func NewDrainer(queue *Queue, l pkgLog.Logger, apiBaseURL string, timeout time.Duration) *Drainer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Drainer{
		queue:      queue,
		l:          l,
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Drain replays all pending actions once, in queue order. It returns
// how many were cleared; per-action failures are recorded, not fatal.
func (d *Drainer) Drain(ctx context.Context) (int, error) {
	actions, err := d.queue.Pending(ctx)
	if err != nil {
		return 0, err
	}
	if len(actions) == 0 {
		return 0, nil
	}

	d.l.Infof(ctx, "syncqueue: draining %d pending action(s)", len(actions))

	cleared := 0
	for _, action := range actions {
		if err := ctx.Err(); err != nil {
			return cleared, err
		}

		if err := d.replay(ctx, action); err != nil {
			d.l.Warnf(ctx, "syncqueue: replay %s failed (attempt %d): %v", action.ID, action.Attempts+1, err)
			if recErr := d.queue.RecordFailure(ctx, action.ID, err); recErr != nil {
				d.l.Errorf(ctx, "syncqueue: record failure for %s: %v", action.ID, recErr)
			}
			continue
		}

		if err := d.queue.Remove(ctx, action.ID); err != nil {
			d.l.Errorf(ctx, "syncqueue: remove %s: %v", action.ID, err)
			continue
		}
		cleared++
	}

	return cleared, nil
}

// Run drains on an interval until the context is cancelled.
func (d *Drainer) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.Drain(ctx); err != nil && ctx.Err() == nil {
				d.l.Errorf(ctx, "syncqueue: drain pass failed: %v", err)
			}
		}
	}
}

func (d *Drainer) replay(ctx context.Context, action Action) error {
	url := fmt.Sprintf("%s/api/tasks/%s/%s", d.apiBaseURL, action.TaskID, action.Kind)

	var body *bytes.Buffer
	if action.Kind == KindReject && action.Reason != "" {
		raw, err := json.Marshal(map[string]string{"reason": action.Reason})
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		// Already approved or rejected elsewhere; nothing left to replay.
		d.l.Infof(ctx, "syncqueue: %s %s already transitioned, clearing", action.Kind, action.TaskID)
		return nil
	default:
		return fmt.Errorf("api returned %d", resp.StatusCode)
	}
}
