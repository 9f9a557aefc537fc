package vaultfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"chief-of-staff-api/internal/draft"
	"chief-of-staff-api/internal/draft/repository"
	"chief-of-staff-api/internal/vault"
)

// ListDrafts enumerates pending drafts. Only regular .md files count;
// dotfiles (including lock files) and anything else are skipped.
func (q *Queue) ListDrafts(ctx context.Context) ([]draft.Draft, error) {
	draftsDir := q.layout.Drafts()
	if err := vault.EnsureDir(draftsDir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(draftsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read drafts directory: %w", err)
	}

	drafts := make([]draft.Draft, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") || strings.HasPrefix(name, ".") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			q.l.Warnf(ctx, "vaultfs: stat %s failed, skipping: %v", name, err)
			continue
		}

		content, err := os.ReadFile(filepath.Join(draftsDir, name))
		if err != nil {
			q.l.Warnf(ctx, "vaultfs: read %s failed, skipping: %v", name, err)
			continue
		}

		drafts = append(drafts, parseDraft(name, string(content), info))
	}

	return drafts, nil
}

// ApproveDraft moves the draft byte-identical into Approved via a single
// rename, so a concurrent lister sees the file in exactly one directory.
func (q *Queue) ApproveDraft(ctx context.Context, opt repository.ApproveDraftOptions) (string, error) {
	release, err := q.acquireLock(opt.ID)
	if err != nil {
		return "", err
	}
	defer release()

	filename, err := q.resolveFilename(opt.ID)
	if err != nil {
		return "", err
	}

	if err := vault.EnsureDir(q.layout.Approved()); err != nil {
		return "", err
	}

	src := filepath.Join(q.layout.Drafts(), filename)
	dst := filepath.Join(q.layout.Approved(), filename)
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("failed to move draft to approved: %w", err)
	}

	q.l.Infof(ctx, "vaultfs: task approved: %s", filename)
	return filename, nil
}

// RejectDraft appends the rejection block and writes the annotated copy
// into the dead letter queue before removing the original. If the DLQ
// write fails for any reason the draft stays in place, so a crash mid
// operation can lose the annotation but never the task.
func (q *Queue) RejectDraft(ctx context.Context, opt repository.RejectDraftOptions) (string, error) {
	release, err := q.acquireLock(opt.ID)
	if err != nil {
		return "", err
	}
	defer release()

	filename, err := q.resolveFilename(opt.ID)
	if err != nil {
		return "", err
	}

	src := filepath.Join(q.layout.Drafts(), filename)
	content, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}

	block := fmt.Sprintf("\n\n---\n**REJECTED**: %s\n**Reason**: %s\n",
		q.now().UTC().Format(time.RFC3339), opt.Reason)

	dlqDir := q.layout.DeadLetter()
	if err := vault.EnsureDir(dlqDir); err != nil {
		return "", err
	}

	dst := filepath.Join(dlqDir, vault.RejectedPrefix+filename)
	if err := writeFileSync(dst, append(content, block...)); err != nil {
		return "", fmt.Errorf("failed to write to dead letter queue: %w", err)
	}

	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("failed to remove draft after rejection: %w", err)
	}

	q.l.Infof(ctx, "vaultfs: task rejected: %s - reason: %s", filename, opt.Reason)
	return filename, nil
}

// resolveFilename maps a task id to its backing file. Exact matches win;
// prefix candidates are sorted so resolution is deterministic regardless
// of directory enumeration order.
func (q *Queue) resolveFilename(id string) (string, error) {
	entries, err := os.ReadDir(q.layout.Drafts())
	if err != nil {
		if os.IsNotExist(err) {
			return "", draft.ErrDraftNotFound
		}
		return "", fmt.Errorf("failed to read drafts directory: %w", err)
	}

	var prefixed []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if name == id+".md" || name == id {
			return name, nil
		}
		if strings.HasPrefix(name, id+"_") && strings.HasSuffix(name, ".md") {
			prefixed = append(prefixed, name)
		}
	}

	if len(prefixed) > 0 {
		sort.Strings(prefixed)
		return prefixed[0], nil
	}

	return "", draft.ErrDraftNotFound
}

// writeFileSync writes data and fsyncs both the file and its directory,
// so the DLQ copy is durable before the caller deletes the original.
func writeFileSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	dir, err := os.Open(filepath.Dir(path))
	if err != nil {
		return err
	}
	defer dir.Close()
	return dir.Sync()
}
