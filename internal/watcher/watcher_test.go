package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"chief-of-staff-api/internal/draft"
	"chief-of-staff-api/internal/model"
	"chief-of-staff-api/internal/notification"
	"chief-of-staff-api/internal/store"
	"chief-of-staff-api/internal/vault"
	"chief-of-staff-api/internal/watcher"
	"chief-of-staff-api/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	mu        sync.Mutex
	countOut  draft.CountOutput
	countWait time.Duration
	calls     []time.Time
}

func (m *mockUseCase) List(ctx context.Context) (draft.ListOutput, error) {
	return draft.ListOutput{}, nil
}
func (m *mockUseCase) Count(ctx context.Context, input draft.CountInput) (draft.CountOutput, error) {
	m.mu.Lock()
	m.calls = append(m.calls, time.Now())
	out := m.countOut
	if !input.Since.IsZero() {
		// Past the first pass nothing is new.
		out.NewCount = 0
	}
	wait := m.countWait
	m.mu.Unlock()
	if wait > 0 {
		time.Sleep(wait)
	}
	return out, nil
}
func (m *mockUseCase) firstCall() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return time.Time{}
	}
	return m.calls[0]
}
func (m *mockUseCase) Approve(ctx context.Context, sc model.Scope, id string) (draft.ApproveOutput, error) {
	return draft.ApproveOutput{}, nil
}
func (m *mockUseCase) Reject(ctx context.Context, sc model.Scope, input draft.RejectInput) (draft.RejectOutput, error) {
	return draft.RejectOutput{}, nil
}

type recordingSender struct {
	mu   sync.Mutex
	sent []notification.Payload
}

func (s *recordingSender) Name() string { return "rec" }
func (s *recordingSender) Send(ctx context.Context, payload notification.Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, payload)
	return nil
}

func (s *recordingSender) payloads() []notification.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notification.Payload(nil), s.sent...)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestRun_AnnouncesNewDraftsOnce(t *testing.T) {
	dir := t.TempDir()
	db, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	uc := &mockUseCase{countOut: draft.CountOutput{Count: 2, NewCount: 2}}
	sender := &recordingSender{}
	dispatcher := notification.NewDispatcher(log.NewNop(), sender)

	w := watcher.New(uc, dispatcher, db, log.NewNop(), watcher.Config{
		Layout:       vault.NewLayout(filepath.Join(dir, "vault")),
		PollInterval: 50 * time.Millisecond,
		Debounce:     10 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	payloads := sender.payloads()
	if len(payloads) != 1 {
		t.Fatalf("expected exactly one announcement across polls, got %d", len(payloads))
	}

	p := payloads[0]
	if p.Title != "New Drafts Available" {
		t.Errorf("unexpected title %q", p.Title)
	}
	if !strings.Contains(p.Body, "2 draft(s)") {
		t.Errorf("unexpected body %q", p.Body)
	}
	if p.Tag != "new-drafts" || p.Data.URL != "/?view=drafts" {
		t.Errorf("unexpected routing fields: %+v", p)
	}
	if len(p.Actions) == 0 || p.Actions[0].Action != "view" {
		t.Errorf("expected a view action, got %v", p.Actions)
	}

	// Watermark advanced and persisted.
	raw, err := store.GetKV(db, "drafts_watermark")
	if err != nil || raw == "" {
		t.Errorf("watermark not persisted: %q %v", raw, err)
	}
}

func TestRun_WatermarkPredatesCountSnapshot(t *testing.T) {
	dir := t.TempDir()
	db, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	// A slow count widens the window in which a fresh draft could land.
	// The stored watermark must sit before the count started, so such a
	// draft is still ahead of it on the next check.
	uc := &mockUseCase{
		countOut:  draft.CountOutput{Count: 1, NewCount: 1},
		countWait: 150 * time.Millisecond,
	}
	sender := &recordingSender{}
	dispatcher := notification.NewDispatcher(log.NewNop(), sender)

	w := watcher.New(uc, dispatcher, db, log.NewNop(), watcher.Config{
		Layout:       vault.NewLayout(filepath.Join(dir, "vault")),
		PollInterval: 50 * time.Millisecond,
		Debounce:     10 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	raw, err := store.GetKV(db, "drafts_watermark")
	if err != nil || raw == "" {
		t.Fatalf("watermark not persisted: %q %v", raw, err)
	}
	watermark, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		t.Fatalf("parse watermark: %v", err)
	}

	first := uc.firstCall()
	if first.IsZero() {
		t.Fatal("count was never called")
	}
	if watermark.After(first) {
		t.Errorf("watermark %v is past the count snapshot at %v", watermark, first)
	}
}

func TestRun_QuietWhenNothingNew(t *testing.T) {
	dir := t.TempDir()
	db, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	// A pre-set watermark with no drafts past it.
	if err := store.SetKV(db, "drafts_watermark", time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		t.Fatalf("seed watermark: %v", err)
	}

	uc := &mockUseCase{countOut: draft.CountOutput{Count: 3, NewCount: 0}}
	sender := &recordingSender{}
	dispatcher := notification.NewDispatcher(log.NewNop(), sender)

	w := watcher.New(uc, dispatcher, db, log.NewNop(), watcher.Config{
		Layout:       vault.NewLayout(filepath.Join(dir, "vault")),
		PollInterval: 50 * time.Millisecond,
		Debounce:     10 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	if got := len(sender.payloads()); got != 0 {
		t.Errorf("expected silence when nothing is new, got %d notifications", got)
	}
}

func TestRun_ReactsToFileCreation(t *testing.T) {
	dir := t.TempDir()
	db, err := store.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()

	layout := vault.NewLayout(filepath.Join(dir, "vault"))

	uc := &mockUseCase{countOut: draft.CountOutput{Count: 1, NewCount: 1}}
	sender := &recordingSender{}
	dispatcher := notification.NewDispatcher(log.NewNop(), sender)

	// Long poll interval: only the fsnotify path can fire in time.
	w := watcher.New(uc, dispatcher, db, log.NewNop(), watcher.Config{
		Layout:       layout,
		PollInterval: time.Hour,
		Debounce:     10 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	// Give the watcher a moment to register, then drop a draft in.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(layout.Drafts(), "task_new.md"), []byte("# New"), 0644); err != nil {
		t.Fatalf("write draft: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(sender.payloads()) == 0 {
		time.Sleep(20 * time.Millisecond)
	}
	cancel()
	<-done

	if len(sender.payloads()) == 0 {
		t.Fatalf("file creation did not trigger an announcement")
	}
}
