package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chief-of-staff-api/internal/followup"
	"chief-of-staff-api/internal/followup/repository"
	pkgLog "chief-of-staff-api/pkg/log"
)

// Store is the SQLite-backed follow-up repository.
type Store struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a follow-up store over an opened database.
func New(db *sql.DB, l pkgLog.Logger) *Store {
	return &Store{db: db, l: l}
}

var _ repository.Repository = (*Store)(nil)

const followUpColumns = `id, email_id, contact, subject, sent_date, reminder_date, status, priority, created_at, updated_at`

func (s *Store) ListFollowUps(ctx context.Context, opt repository.ListFollowUpsOptions) ([]followup.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups`
	var args []any
	if opt.ExcludeResolved {
		query += ` WHERE status != ?`
		args = append(args, followup.StatusResolved)
	}
	query += ` ORDER BY reminder_date ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}
	defer rows.Close()

	var out []followup.FollowUp
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *Store) GetFollowUp(ctx context.Context, id string) (followup.FollowUp, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+followUpColumns+` FROM follow_ups WHERE id = ?`, id)
	f, err := scanFollowUp(row)
	if errors.Is(err, sql.ErrNoRows) {
		return followup.FollowUp{}, followup.ErrNotFound
	}
	return f, err
}

func (s *Store) UpdateFollowUp(ctx context.Context, opt repository.UpdateFollowUpOptions) (followup.FollowUp, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE follow_ups SET status = ?, reminder_date = ?, updated_at = ? WHERE id = ?`,
		opt.Status, opt.ReminderDate.Unix(), time.Now().Unix(), opt.ID)
	if err != nil {
		return followup.FollowUp{}, fmt.Errorf("failed to update follow-up: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return followup.FollowUp{}, err
	}
	if affected == 0 {
		return followup.FollowUp{}, followup.ErrNotFound
	}
	return s.GetFollowUp(ctx, opt.ID)
}

func (s *Store) CreateFollowUp(ctx context.Context, f followup.FollowUp) error {
	now := time.Now().Unix()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO follow_ups (`+followUpColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.EmailID, f.Contact, f.Subject,
		f.SentDate.Unix(), f.ReminderDate.Unix(),
		f.Status, f.Priority, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert follow-up: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFollowUp(row rowScanner) (followup.FollowUp, error) {
	var f followup.FollowUp
	var sent, reminder, created, updated int64
	err := row.Scan(&f.ID, &f.EmailID, &f.Contact, &f.Subject,
		&sent, &reminder, &f.Status, &f.Priority, &created, &updated)
	if err != nil {
		return followup.FollowUp{}, err
	}
	f.SentDate = time.Unix(sent, 0)
	f.ReminderDate = time.Unix(reminder, 0)
	f.CreatedAt = time.Unix(created, 0)
	f.UpdatedAt = time.Unix(updated, 0)
	return f, nil
}
