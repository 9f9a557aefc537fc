package http

import (
	"fmt"
	"time"

	"chief-of-staff-api/internal/draft"
)

// --- Request DTOs ---

type countReq struct {
	Since string `form:"since"`

	since time.Time
}

func (r *countReq) validate() error {
	if r.Since == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, r.Since)
	if err != nil {
		return fmt.Errorf("since must be RFC3339: %w", err)
	}
	r.since = t
	return nil
}

func (r countReq) toInput() draft.CountInput {
	return draft.CountInput{Since: r.since}
}

// ---

type rejectReq struct {
	ID     string `json:"-"` // populated from URI param
	Reason string `json:"reason" binding:"omitempty,max=1000"`
}

func (r rejectReq) toInput() draft.RejectInput {
	return draft.RejectInput{
		ID:     r.ID,
		Reason: r.Reason,
	}
}

// --- Response DTOs ---

// draftResp keys are camelCase: the dashboard and the service worker
// consume this shape verbatim.
type draftResp struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Title      string `json:"title"`
	Priority   string `json:"priority"`
	ActionType string `json:"actionType"`
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
	Preview    string `json:"preview"`
}

func newDraftResp(d draft.Draft) draftResp {
	return draftResp{
		ID:         d.ID,
		Filename:   d.Filename,
		Title:      d.Title,
		Priority:   d.Priority,
		ActionType: d.ActionType,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
		ModifiedAt: d.ModifiedAt.UTC().Format(time.RFC3339),
		Preview:    d.Preview,
	}
}

type listResp struct {
	Drafts []draftResp `json:"drafts"`
	Count  int         `json:"count"`
}

func (h *handler) newListResp(out draft.ListOutput) listResp {
	drafts := make([]draftResp, len(out.Drafts))
	for i, d := range out.Drafts {
		drafts[i] = newDraftResp(d)
	}
	return listResp{
		Drafts: drafts,
		Count:  out.Count,
	}
}

type countResp struct {
	Count    int `json:"count"`
	NewCount int `json:"newCount"`
}

func (h *handler) newCountResp(out draft.CountOutput) countResp {
	return countResp{
		Count:    out.Count,
		NewCount: out.NewCount,
	}
}

type approveResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	File    string `json:"file"`
}

func (h *handler) newApproveResp(id string, out draft.ApproveOutput) approveResp {
	return approveResp{
		Success: true,
		Message: fmt.Sprintf("Task %s approved", id),
		File:    out.File,
	}
}

type rejectResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	File    string `json:"file"`
	Reason  string `json:"reason"`
}

func (h *handler) newRejectResp(id string, out draft.RejectOutput) rejectResp {
	return rejectResp{
		Success: true,
		Message: fmt.Sprintf("Task %s rejected", id),
		File:    out.File,
		Reason:  out.Reason,
	}
}
