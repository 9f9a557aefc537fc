package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chief-of-staff-api/internal/notification"
	"chief-of-staff-api/internal/notification/repository"
	pkgLog "chief-of-staff-api/pkg/log"
)

// Store is the SQLite-backed subscription registry.
type Store struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a subscription store over an opened database.
func New(db *sql.DB, l pkgLog.Logger) *Store {
	return &Store{db: db, l: l}
}

var _ repository.Repository = (*Store)(nil)

func (s *Store) UpsertSubscription(ctx context.Context, sub notification.Subscription) (notification.Subscription, error) {
	now := time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, endpoint, p256dh, auth, device_name, active, created_at, last_used)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(endpoint) DO UPDATE SET
		  p256dh      = excluded.p256dh,
		  auth        = excluded.auth,
		  device_name = excluded.device_name,
		  active      = 1,
		  last_used   = excluded.last_used`,
		sub.ID, sub.Endpoint, sub.P256dh, sub.Auth, sub.DeviceName, now.Unix(), now.Unix())
	if err != nil {
		return notification.Subscription{}, fmt.Errorf("failed to upsert subscription: %w", err)
	}

	// Re-subscribes keep the original row id.
	row := s.db.QueryRowContext(ctx,
		`SELECT id, endpoint, p256dh, auth, device_name, active, created_at, last_used
		 FROM subscriptions WHERE endpoint = ?`, sub.Endpoint)
	return scanSubscription(row)
}

func (s *Store) ListActiveSubscriptions(ctx context.Context) ([]notification.Subscription, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, endpoint, p256dh, auth, device_name, active, created_at, last_used
		 FROM subscriptions WHERE active = 1 ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []notification.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *Store) DeactivateSubscription(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE subscriptions SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate subscription: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (notification.Subscription, error) {
	var sub notification.Subscription
	var active int
	var created, lastUsed int64
	err := row.Scan(&sub.ID, &sub.Endpoint, &sub.P256dh, &sub.Auth, &sub.DeviceName, &active, &created, &lastUsed)
	if err != nil {
		return notification.Subscription{}, err
	}
	sub.Active = active == 1
	sub.CreatedAt = time.Unix(created, 0)
	sub.LastUsed = time.Unix(lastUsed, 0)
	return sub, nil
}
