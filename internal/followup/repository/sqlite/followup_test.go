package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"chief-of-staff-api/internal/followup"
	"chief-of-staff-api/internal/followup/repository"
	"chief-of-staff-api/internal/followup/repository/sqlite"
	"chief-of-staff-api/internal/store"
	"chief-of-staff-api/pkg/log"
)

func newTestStore(t *testing.T) (*sqlite.Store, *sql.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, log.NewNop()), db
}

func seedFollowUp(t *testing.T, s *sqlite.Store, id, status string, reminder time.Time) {
	t.Helper()
	err := s.CreateFollowUp(context.Background(), followup.FollowUp{
		ID:           id,
		Contact:      "alice@example.com",
		Subject:      "Proposal",
		SentDate:     reminder.Add(-3 * 24 * time.Hour),
		ReminderDate: reminder,
		Status:       status,
		Priority:     "medium",
	})
	if err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestListFollowUps_ExcludesResolvedAndOrders(t *testing.T) {
	s, _ := newTestStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	seedFollowUp(t, s, "late", followup.StatusPending, base.Add(48*time.Hour))
	seedFollowUp(t, s, "soon", followup.StatusReminded, base)
	seedFollowUp(t, s, "done", followup.StatusResolved, base.Add(time.Hour))

	got, err := s.ListFollowUps(context.Background(), repository.ListFollowUpsOptions{ExcludeResolved: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 follow-ups, got %d", len(got))
	}
	if got[0].ID != "soon" || got[1].ID != "late" {
		t.Errorf("expected reminder date order, got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestListFollowUps_IncludeAll(t *testing.T) {
	s, _ := newTestStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	seedFollowUp(t, s, "a", followup.StatusPending, base)
	seedFollowUp(t, s, "b", followup.StatusResolved, base)

	got, err := s.ListFollowUps(context.Background(), repository.ListFollowUpsOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 follow-ups, got %d", len(got))
	}
}

func TestGetFollowUp_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	reminder := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	seedFollowUp(t, s, "fu-1", followup.StatusPending, reminder)

	got, err := s.GetFollowUp(context.Background(), "fu-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Contact != "alice@example.com" || got.Subject != "Proposal" {
		t.Errorf("fields lost in round trip: %+v", got)
	}
	if !got.ReminderDate.Equal(reminder) {
		t.Errorf("reminder date mismatch: %v", got.ReminderDate)
	}
}

func TestGetFollowUp_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.GetFollowUp(context.Background(), "ghost")
	if !errors.Is(err, followup.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFollowUp(t *testing.T) {
	s, _ := newTestStore(t)
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	seedFollowUp(t, s, "fu-1", followup.StatusPending, base)

	snoozedTo := base.Add(24 * time.Hour)
	got, err := s.UpdateFollowUp(context.Background(), repository.UpdateFollowUpOptions{
		ID:           "fu-1",
		Status:       followup.StatusPending,
		ReminderDate: snoozedTo,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.ReminderDate.Equal(snoozedTo) {
		t.Errorf("reminder not updated: %v", got.ReminderDate)
	}
}

func TestUpdateFollowUp_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UpdateFollowUp(context.Background(), repository.UpdateFollowUpOptions{
		ID:     "ghost",
		Status: followup.StatusResolved,
	})
	if !errors.Is(err, followup.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
