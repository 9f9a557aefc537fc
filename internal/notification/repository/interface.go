package repository

import (
	"context"

	"chief-of-staff-api/internal/notification"
)

// Repository defines data access for push subscriptions.
type Repository interface {
	// UpsertSubscription inserts a subscription or, when the endpoint is
	// already registered, refreshes its keys and device name.
	UpsertSubscription(ctx context.Context, sub notification.Subscription) (notification.Subscription, error)

	// ListActiveSubscriptions returns all active subscriptions.
	ListActiveSubscriptions(ctx context.Context) ([]notification.Subscription, error)

	// DeactivateSubscription marks a subscription inactive, e.g. after
	// its endpoint repeatedly rejects deliveries.
	DeactivateSubscription(ctx context.Context, id string) error
}
