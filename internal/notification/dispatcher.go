package notification

import (
	"context"

	"chief-of-staff-api/pkg/log"
)

// Dispatcher fans a notification out to every configured sender.
// A sender failing is logged and skipped: notification delivery is
// best-effort and must never fail the operation that triggered it.
type Dispatcher struct {
	l       log.Logger
	senders []Sender
}

// NewDispatcher creates a dispatcher over the given senders.
func NewDispatcher(l log.Logger, senders ...Sender) *Dispatcher {
	return &Dispatcher{l: l, senders: senders}
}

// Notify merges the payload over the default shape and delivers it.
func (d *Dispatcher) Notify(ctx context.Context, payload Payload) {
	payload = payload.Merge(DefaultPayload())

	for _, s := range d.senders {
		if err := s.Send(ctx, payload); err != nil {
			d.l.Warnf(ctx, "notification: sender %s failed: %v", s.Name(), err)
		}
	}
}
