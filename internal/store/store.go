package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// Open initializes the SQLite store at the given path, creating the
// parent directory and running migrations. WAL mode keeps concurrent
// readers (API + watcher + syncer) from blocking each other.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := verifyWALMode(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	// Restrict permissions once the file exists (best-effort).
	_ = os.Chmod(path, 0600)

	return db, nil
}

func verifyWALMode(db *sql.DB) error {
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		return fmt.Errorf("failed to query journal mode: %w", err)
	}
	if mode != "wal" {
		return fmt.Errorf("expected WAL journal mode, got %q", mode)
	}
	return nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read user_version: %w", err)
	}

	// Migration 0 -> 1: initial schema
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS follow_ups (
		  id            TEXT PRIMARY KEY,
		  email_id      TEXT NOT NULL DEFAULT '',
		  contact       TEXT NOT NULL,
		  subject       TEXT NOT NULL,
		  sent_date     INTEGER NOT NULL,
		  reminder_date INTEGER NOT NULL,
		  status        TEXT NOT NULL DEFAULT 'pending',
		  priority      TEXT NOT NULL DEFAULT 'medium',
		  created_at    INTEGER NOT NULL,
		  updated_at    INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_follow_ups_status_reminder
		ON follow_ups(status, reminder_date);

		CREATE TABLE IF NOT EXISTS subscriptions (
		  id          TEXT PRIMARY KEY,
		  endpoint    TEXT NOT NULL UNIQUE,
		  p256dh      TEXT NOT NULL,
		  auth        TEXT NOT NULL,
		  device_name TEXT NOT NULL DEFAULT 'Unknown Device',
		  active      INTEGER NOT NULL DEFAULT 1,
		  created_at  INTEGER NOT NULL,
		  last_used   INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sync_actions (
		  id         TEXT PRIMARY KEY,
		  task_id    TEXT NOT NULL,
		  kind       TEXT NOT NULL,
		  reason     TEXT NOT NULL DEFAULT '',
		  queued_at  INTEGER NOT NULL,
		  attempts   INTEGER NOT NULL DEFAULT 0,
		  last_error TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS kv (
		  key   TEXT PRIMARY KEY,
		  value TEXT NOT NULL
		);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", 1)); err != nil {
			return fmt.Errorf("failed to set user_version: %w", err)
		}
	}

	return nil
}
