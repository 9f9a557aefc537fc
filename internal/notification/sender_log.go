package notification

import (
	"context"

	"chief-of-staff-api/pkg/log"
)

// LogSender writes notifications to the service log. Always wired, so
// every dispatched notification leaves a trace even with no device
// registered.
type LogSender struct {
	l log.Logger
}

// NewLogSender creates a log-backed sender.
func NewLogSender(l log.Logger) *LogSender {
	return &LogSender{l: l}
}

var _ Sender = (*LogSender)(nil)

func (s *LogSender) Name() string { return "log" }

func (s *LogSender) Send(ctx context.Context, payload Payload) error {
	s.l.Infof(ctx, "notification [%s]: %s: %s (url=%s task=%s)",
		payload.Tag, payload.Title, payload.Body, payload.Data.URL, payload.Data.TaskID)
	return nil
}
