package vaultfs

import (
	"time"

	"chief-of-staff-api/internal/draft/repository"
	"chief-of-staff-api/internal/vault"
	pkgLog "chief-of-staff-api/pkg/log"
)

// Queue is the filesystem-backed draft queue. Drafts live as markdown
// files under the vault's Drafts directory; approval and rejection are
// directory moves. The filesystem is the single source of truth: the
// service keeps no in-process queue state, so any number of instances
// can serve the same vault.
type Queue struct {
	layout vault.Layout
	l      pkgLog.Logger
	now    func() time.Time
}

// New creates a filesystem draft queue over the given vault layout.
func New(layout vault.Layout, l pkgLog.Logger) *Queue {
	return &Queue{
		layout: layout,
		l:      l,
		now:    time.Now,
	}
}

var _ repository.Repository = (*Queue)(nil)
