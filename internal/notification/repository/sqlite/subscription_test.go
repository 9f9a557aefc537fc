package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"chief-of-staff-api/internal/notification"
	"chief-of-staff-api/internal/notification/repository/sqlite"
	"chief-of-staff-api/internal/store"
	"chief-of-staff-api/pkg/log"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, log.NewNop())
}

func TestUpsertSubscription_Insert(t *testing.T) {
	s := newTestStore(t)

	sub, err := s.UpsertSubscription(context.Background(), notification.Subscription{
		ID:         "sub-1",
		Endpoint:   "https://push.example.com/ep1",
		P256dh:     "key1",
		Auth:       "auth1",
		DeviceName: "Laptop",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if sub.ID != "sub-1" || !sub.Active {
		t.Errorf("unexpected subscription: %+v", sub)
	}
}

func TestUpsertSubscription_SameEndpointKeepsRowID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.UpsertSubscription(ctx, notification.Subscription{
		ID: "sub-1", Endpoint: "https://push.example.com/ep1", P256dh: "old", Auth: "old", DeviceName: "Laptop",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Same endpoint re-subscribing with rotated keys and a new candidate id.
	second, err := s.UpsertSubscription(ctx, notification.Subscription{
		ID: "sub-2", Endpoint: "https://push.example.com/ep1", P256dh: "new", Auth: "new", DeviceName: "Laptop (renamed)",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("endpoint re-subscribe must keep the original id: %q vs %q", second.ID, first.ID)
	}
	if second.P256dh != "new" || second.DeviceName != "Laptop (renamed)" {
		t.Errorf("keys/name not refreshed: %+v", second)
	}

	subs, err := s.ListActiveSubscriptions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("expected a single row per endpoint, got %d", len(subs))
	}
}

func TestDeactivateSubscription(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sub, err := s.UpsertSubscription(ctx, notification.Subscription{
		ID: "sub-1", Endpoint: "https://push.example.com/ep1", P256dh: "k", Auth: "a", DeviceName: "Phone",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := s.DeactivateSubscription(ctx, sub.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	subs, err := s.ListActiveSubscriptions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("deactivated subscription still listed")
	}

	// Re-subscribing the same endpoint reactivates it.
	if _, err := s.UpsertSubscription(ctx, notification.Subscription{
		ID: "sub-2", Endpoint: "https://push.example.com/ep1", P256dh: "k", Auth: "a", DeviceName: "Phone",
	}); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	subs, _ = s.ListActiveSubscriptions(ctx)
	if len(subs) != 1 {
		t.Errorf("re-subscribe must reactivate, got %d active", len(subs))
	}
}
