package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"chief-of-staff-api/internal/followup"
	"chief-of-staff-api/internal/middleware"
	"chief-of-staff-api/pkg/log"
	"chief-of-staff-api/pkg/response"
)

// Handler is the public interface for the follow-up HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Apply(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc followup.UseCase
}

// New creates a new HTTP handler for the follow-up domain.
func New(l log.Logger, uc followup.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps the follow-up routes.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	followUps := api.Group("/follow-ups")
	{
		followUps.GET("", h.List)
		followUps.PATCH("/:id", mw.RateLimit(), h.Apply)
	}
}

type applyReq struct {
	Action string `json:"action" binding:"required"`
}

type followUpResp struct {
	ID           string `json:"id"`
	EmailID      string `json:"emailId"`
	Contact      string `json:"contact"`
	Subject      string `json:"subject"`
	SentDate     string `json:"sentDate"`
	ReminderDate string `json:"reminderDate"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	DaysSince    int    `json:"daysSince"`
}

func newFollowUpResp(f followup.FollowUp) followUpResp {
	return followUpResp{
		ID:           f.ID,
		EmailID:      f.EmailID,
		Contact:      f.Contact,
		Subject:      f.Subject,
		SentDate:     f.SentDate.UTC().Format(time.RFC3339),
		ReminderDate: f.ReminderDate.UTC().Format(time.RFC3339),
		Status:       f.Status,
		Priority:     f.Priority,
		DaysSince:    f.DaysSince(time.Now()),
	}
}

// List godoc
// @Summary     List follow-ups
// @Description Returns unresolved follow-up reminders ordered by reminder date.
// @Tags        FollowUps
// @Produce     json
// @Success     200 {object} map[string]any
// @Failure     500 {object} map[string]string
// @Router      /api/follow-ups [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, "Failed to fetch follow-ups", gin.H{"followUps": []followUpResp{}})
		return
	}

	followUps := make([]followUpResp, len(output.FollowUps))
	for i, f := range output.FollowUps {
		followUps[i] = newFollowUpResp(f)
	}
	response.OK(c, gin.H{"followUps": followUps})
}

// Apply godoc
// @Summary     Update a follow-up
// @Description Applies resolve, snooze or dismiss to a follow-up reminder.
// @Tags        FollowUps
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Follow-up ID"
// @Param       body body applyReq true "Action to apply"
// @Success     200 {object} map[string]any
// @Failure     400 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/follow-ups/{id} [PATCH]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req applyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "action is required")
		return
	}

	output, err := h.uc.Apply(ctx, followup.ApplyInput{ID: id, Action: req.Action})
	if err != nil {
		switch {
		case errors.Is(err, followup.ErrInvalidAction):
			response.BadRequest(c, fmt.Sprintf("unknown action %q", req.Action))
		case errors.Is(err, followup.ErrNotFound):
			response.NotFound(c, "Follow-up not found")
		default:
			h.l.Errorf(ctx, "uc.Apply: %v", err)
			response.InternalError(c, "Failed to update follow-up", nil)
		}
		return
	}

	response.OK(c, gin.H{
		"success":  true,
		"id":       id,
		"action":   req.Action,
		"message":  fmt.Sprintf("Follow-up %s %sd successfully", id, req.Action),
		"followUp": newFollowUpResp(output.FollowUp),
	})
}
