package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout describes the directory structure of the markdown vault shared
// with the automation backend:
//
//	<root>/
//	  Drafts/             (pending, awaiting human review)
//	  Approved/           (accepted, picked up by the executor)
//	  Dead_Letter_Queue/  (rejected, annotated with a reason)
type Layout struct {
	Root string
}

// RejectedPrefix is prepended to filenames moved into the dead letter queue.
const RejectedPrefix = "REJECTED_"

const (
	draftsDir     = "Drafts"
	approvedDir   = "Approved"
	deadLetterDir = "Dead_Letter_Queue"
)

// NewLayout creates a Layout rooted at the given path.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// Drafts returns the pending drafts directory path.
func (l Layout) Drafts() string { return filepath.Join(l.Root, draftsDir) }

// Approved returns the approved tasks directory path.
func (l Layout) Approved() string { return filepath.Join(l.Root, approvedDir) }

// DeadLetter returns the dead letter queue directory path.
func (l Layout) DeadLetter() string { return filepath.Join(l.Root, deadLetterDir) }

// EnsureDir creates dir (and parents) if missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Base(dir), err)
	}
	return nil
}
