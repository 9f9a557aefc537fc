package http

import (
	"github.com/gin-gonic/gin"

	"chief-of-staff-api/internal/draft"
	"chief-of-staff-api/pkg/log"
)

// Handler is the public interface for the draft HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Count(c *gin.Context)
	Approve(c *gin.Context)
	Reject(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc draft.UseCase
}

// New creates a new HTTP handler for the draft domain.
func New(l log.Logger, uc draft.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
