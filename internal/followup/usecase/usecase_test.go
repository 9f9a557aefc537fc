package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chief-of-staff-api/internal/followup"
	repo "chief-of-staff-api/internal/followup/repository"
	"chief-of-staff-api/internal/followup/usecase"
	"chief-of-staff-api/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockRepo struct {
	followUps []followup.FollowUp
	listErr   error

	current followup.FollowUp
	getErr  error

	lastUpdate repo.UpdateFollowUpOptions
	updateErr  error
}

func (m *mockRepo) ListFollowUps(ctx context.Context, opt repo.ListFollowUpsOptions) ([]followup.FollowUp, error) {
	return m.followUps, m.listErr
}
func (m *mockRepo) GetFollowUp(ctx context.Context, id string) (followup.FollowUp, error) {
	return m.current, m.getErr
}
func (m *mockRepo) UpdateFollowUp(ctx context.Context, opt repo.UpdateFollowUpOptions) (followup.FollowUp, error) {
	m.lastUpdate = opt
	if m.updateErr != nil {
		return followup.FollowUp{}, m.updateErr
	}
	updated := m.current
	updated.Status = opt.Status
	updated.ReminderDate = opt.ReminderDate
	return updated, nil
}
func (m *mockRepo) CreateFollowUp(ctx context.Context, f followup.FollowUp) error {
	return nil
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestApply_Resolve(t *testing.T) {
	m := &mockRepo{current: followup.FollowUp{ID: "fu-1", Status: followup.StatusPending}}
	uc := usecase.New(m, log.NewNop())

	out, err := uc.Apply(context.Background(), followup.ApplyInput{ID: "fu-1", Action: followup.ActionResolve})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FollowUp.Status != followup.StatusResolved {
		t.Errorf("expected resolved, got %q", out.FollowUp.Status)
	}
}

func TestApply_DismissIsTerminal(t *testing.T) {
	m := &mockRepo{current: followup.FollowUp{ID: "fu-1", Status: followup.StatusReminded}}
	uc := usecase.New(m, log.NewNop())

	out, err := uc.Apply(context.Background(), followup.ApplyInput{ID: "fu-1", Action: followup.ActionDismiss})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FollowUp.Status != followup.StatusResolved {
		t.Errorf("expected resolved, got %q", out.FollowUp.Status)
	}
}

func TestApply_SnoozePushesReminder(t *testing.T) {
	before := time.Now()
	m := &mockRepo{current: followup.FollowUp{
		ID:           "fu-1",
		Status:       followup.StatusReminded,
		ReminderDate: before.Add(-time.Hour),
	}}
	uc := usecase.New(m, log.NewNop())

	out, err := uc.Apply(context.Background(), followup.ApplyInput{ID: "fu-1", Action: followup.ActionSnooze})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FollowUp.Status != followup.StatusPending {
		t.Errorf("snooze must re-arm to pending, got %q", out.FollowUp.Status)
	}
	min := before.Add(followup.SnoozeDuration - time.Minute)
	if out.FollowUp.ReminderDate.Before(min) {
		t.Errorf("reminder not pushed out: %v", out.FollowUp.ReminderDate)
	}
}

func TestApply_InvalidAction(t *testing.T) {
	m := &mockRepo{current: followup.FollowUp{ID: "fu-1"}}
	uc := usecase.New(m, log.NewNop())

	_, err := uc.Apply(context.Background(), followup.ApplyInput{ID: "fu-1", Action: "archive"})
	if !errors.Is(err, followup.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
	if m.lastUpdate.ID != "" {
		t.Errorf("update must not run for unknown actions")
	}
}

func TestApply_NotFound(t *testing.T) {
	m := &mockRepo{getErr: followup.ErrNotFound}
	uc := usecase.New(m, log.NewNop())

	_, err := uc.Apply(context.Background(), followup.ApplyInput{ID: "ghost", Action: followup.ActionResolve})
	if !errors.Is(err, followup.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_PassesThrough(t *testing.T) {
	m := &mockRepo{followUps: []followup.FollowUp{{ID: "a"}, {ID: "b"}}}
	uc := usecase.New(m, log.NewNop())

	out, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.FollowUps) != 2 {
		t.Errorf("expected 2 follow-ups, got %d", len(out.FollowUps))
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := followup.FollowUp{SentDate: now.Add(-72 * time.Hour)}
	if got := f.DaysSince(now); got != 3 {
		t.Errorf("expected 3 days, got %d", got)
	}
	future := followup.FollowUp{SentDate: now.Add(time.Hour)}
	if got := future.DaysSince(now); got != 0 {
		t.Errorf("future sent date must clamp to 0, got %d", got)
	}
}
