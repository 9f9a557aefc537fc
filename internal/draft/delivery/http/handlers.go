package http

import (
	"github.com/gin-gonic/gin"

	"chief-of-staff-api/internal/model"
	"chief-of-staff-api/pkg/response"
)

// List godoc
// @Summary     List pending drafts
// @Description Returns all drafts awaiting review, newest first.
// @Tags        Drafts
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} listResp "empty list, count 0"
// @Router      /api/drafts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		// Callers must read this as "no drafts visible", not "zero drafts".
		response.InternalError(c, "Failed to fetch drafts", gin.H{
			"drafts": []draftResp{},
			"count":  0,
		})
		return
	}

	response.OK(c, h.newListResp(output))
}

// Count godoc
// @Summary     Count pending drafts
// @Description Returns the pending count; with ?since=RFC3339, newCount is the number created after that watermark.
// @Tags        Drafts
// @Produce     json
// @Param       since query string false "Client watermark (RFC3339)"
// @Success     200 {object} countResp
// @Failure     400 {object} map[string]string
// @Failure     500 {object} countResp
// @Router      /api/drafts/count [GET]
func (h *handler) Count(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCountReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.uc.Count(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Count: %v", err)
		response.InternalError(c, "Failed to count drafts", gin.H{
			"count":    0,
			"newCount": 0,
		})
		return
	}

	response.OK(c, h.newCountResp(output))
}

// Approve godoc
// @Summary     Approve a task
// @Description Moves the draft byte-identical into the Approved folder.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} approveResp
// @Failure     400 {object} map[string]string "invalid identifier"
// @Failure     404 {object} map[string]string "not found in drafts"
// @Failure     409 {object} map[string]string "concurrent transition"
// @Failure     500 {object} map[string]string
// @Router      /api/tasks/{id}/approve [POST]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	output, err := h.uc.Approve(ctx, model.Scope{}, id)
	if err != nil {
		h.mapError(c, err, "Failed to approve task")
		return
	}

	response.OK(c, h.newApproveResp(id, output))
}

// Reject godoc
// @Summary     Reject a task
// @Description Appends a rejection block and moves the draft into the dead letter queue.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true  "Task ID"
// @Param       body body rejectReq false "Optional reason"
// @Success     200 {object} rejectResp
// @Failure     400 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Failure     409 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/tasks/{id}/reject [POST]
func (h *handler) Reject(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processRejectReq(c)

	output, err := h.uc.Reject(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.mapError(c, err, "Failed to reject task")
		return
	}

	response.OK(c, h.newRejectResp(req.ID, output))
}
