package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The dashboard and the mobile companion consume flat JSON bodies:
// success payloads carry their own fields, failures carry {"error": "..."}.
// Helpers here keep handlers from building those shapes by hand.

const defaultErrorMessage = "Internal server error"

// OK sends 200 with the given payload as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with an error message.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// NotFound sends 404 with an error message.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Conflict sends 409 with an error message.
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"error": msg})
}

// InternalError sends 500 with a generic message and optional extra fields.
// Filesystem paths and error details never reach the client; callers log them.
func InternalError(c *gin.Context, msg string, extra gin.H) {
	if msg == "" {
		msg = defaultErrorMessage
	}
	body := gin.H{"error": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusInternalServerError, body)
}

// TooManyRequests sends 429 for rate-limited clients.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
}
