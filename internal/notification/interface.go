package notification

import "context"

// UseCase defines the business logic interface for push subscriptions.
type UseCase interface {
	// Subscribe registers a device, or refreshes keys when the endpoint
	// is already known.
	Subscribe(ctx context.Context, input SubscribeInput) (SubscribeOutput, error)
}

// Sender delivers a composed notification over one transport.
// Delivery is best-effort: a failing sender must not block the
// operation that triggered the notification.
type Sender interface {
	Name() string
	Send(ctx context.Context, payload Payload) error
}
