package watcher

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"chief-of-staff-api/internal/draft"
	"chief-of-staff-api/internal/notification"
	"chief-of-staff-api/internal/store"
	"chief-of-staff-api/internal/vault"
	pkgLog "chief-of-staff-api/pkg/log"
)

const watermarkKey = "drafts_watermark"

// Watcher announces new drafts. It reacts to filesystem create events
// and falls back to interval polling, since the backend may write into
// the vault from another host where inotify never fires. The last-seen
// watermark is persisted, so restarts and multiple instances sharing
// the store do not re-announce old drafts.
type Watcher struct {
	uc         draft.UseCase
	dispatcher *notification.Dispatcher
	db         *sql.DB
	l          pkgLog.Logger

	draftsDir    string
	pollInterval time.Duration
	debounce     time.Duration
}

// Config for New.
type Config struct {
	Layout       vault.Layout
	PollInterval time.Duration
	Debounce     time.Duration
}

// New creates a drafts watcher.
func New(uc draft.UseCase, dispatcher *notification.Dispatcher, db *sql.DB, l pkgLog.Logger, cfg Config) *Watcher {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Watcher{
		uc:           uc,
		dispatcher:   dispatcher,
		db:           db,
		l:            l,
		draftsDir:    cfg.Layout.Drafts(),
		pollInterval: cfg.PollInterval,
		debounce:     debounce,
	}
}

// Run watches until the context is cancelled. fsnotify setup failure
// degrades to polling only.
func (w *Watcher) Run(ctx context.Context) {
	if err := vault.EnsureDir(w.draftsDir); err != nil {
		w.l.Errorf(ctx, "watcher: cannot ensure drafts dir: %v", err)
	}

	events := make(chan struct{}, 1)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.l.Warnf(ctx, "watcher: fsnotify unavailable, polling only: %v", err)
	} else {
		defer fsw.Close()
		if err := fsw.Add(w.draftsDir); err != nil {
			w.l.Warnf(ctx, "watcher: cannot watch %s, polling only: %v", w.draftsDir, err)
		} else {
			go w.forwardEvents(ctx, fsw, events)
		}
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-events:
			// Let the backend finish writing a burst of drafts before
			// announcing them as one batch.
			w.sleep(ctx, w.debounce)
			w.check(ctx)
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *Watcher) forwardEvents(ctx context.Context, fsw *fsnotify.Watcher, out chan<- struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := event.Name
			if !strings.HasSuffix(name, ".md") || strings.Contains(name, "/.") {
				continue
			}
			select {
			case out <- struct{}{}:
			default: // a check is already pending
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.l.Warnf(ctx, "watcher: fsnotify error: %v", err)
		}
	}
}

// check counts drafts newer than the watermark and announces them.
func (w *Watcher) check(ctx context.Context) {
	since, err := w.loadWatermark()
	if err != nil {
		w.l.Errorf(ctx, "watcher: load watermark: %v", err)
		return
	}

	// Stamp the watermark before counting. A draft created while the
	// count runs lands ahead of it and is picked up next check.
	now := time.Now()

	out, err := w.uc.Count(ctx, draft.CountInput{Since: since})
	if err != nil {
		w.l.Errorf(ctx, "watcher: count drafts: %v", err)
		return
	}

	newCount := out.NewCount
	if since.IsZero() && out.Count > 0 {
		// First run on a vault with existing drafts: announce everything.
		newCount = out.Count
	}

	if newCount > 0 {
		w.dispatcher.Notify(ctx, notification.Payload{
			Title: "New Drafts Available",
			Body:  fmt.Sprintf("%d draft(s) awaiting your approval", newCount),
			Tag:   "new-drafts",
			Data:  notification.PayloadData{URL: "/?view=drafts"},
			Actions: []notification.Action{
				{Action: "view", Title: "Review Now"},
			},
		})
	}

	if err := w.storeWatermark(now); err != nil {
		w.l.Errorf(ctx, "watcher: store watermark: %v", err)
	}
}

func (w *Watcher) loadWatermark() (time.Time, error) {
	raw, err := store.GetKV(w.db, watermarkKey)
	if err != nil || raw == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, nil // unreadable watermark resets tracking
	}
	return t, nil
}

func (w *Watcher) storeWatermark(t time.Time) error {
	return store.SetKV(w.db, watermarkKey, t.UTC().Format(time.RFC3339Nano))
}

func (w *Watcher) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
