package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chief-of-staff-api/internal/draft"
	"chief-of-staff-api/pkg/response"
)

// mapError translates domain errors into the HTTP error contract.
// Unknown errors become a generic 500; the detail stays in the logs.
func (h *handler) mapError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, draft.ErrInvalidID):
		response.BadRequest(c, "Invalid task identifier")
	case errors.Is(err, draft.ErrDraftNotFound):
		response.NotFound(c, "Task not found in drafts")
	case errors.Is(err, draft.ErrLocked):
		response.Conflict(c, "Task is already being processed")
	default:
		response.InternalError(c, fallback, nil)
	}
}
