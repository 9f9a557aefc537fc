package vaultfs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chief-of-staff-api/internal/draft"
)

// staleLockAge is how old a lock file must be before a new acquirer may
// break it. Transitions are single rename/write operations, so anything
// older than this belongs to a crashed process.
const staleLockAge = time.Minute

// acquireLock takes the per-id advisory lock for a transition. It relies
// on O_EXCL for exclusive-create semantics: exactly one concurrent caller
// wins, the rest get draft.ErrLocked. Lock files are dotfiles, so the
// listing operation never surfaces them.
func (q *Queue) acquireLock(id string) (release func(), err error) {
	lockPath := filepath.Join(q.layout.Drafts(), "."+id+".lock")

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if os.IsExist(err) {
		if info, statErr := os.Stat(lockPath); statErr == nil && q.now().Sub(info.ModTime()) > staleLockAge {
			// Holder crashed mid-transition; break the lock and retry once.
			_ = os.Remove(lockPath)
			f, err = os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		}
		if err != nil {
			return nil, draft.ErrLocked
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}

	fmt.Fprintf(f, "%d\n", os.Getpid())
	_ = f.Close()

	return func() { _ = os.Remove(lockPath) }, nil
}
