package http

import (
	"github.com/gin-gonic/gin"

	"chief-of-staff-api/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The paths mirror the dashboard contract: reads under /drafts,
// transitions under /tasks/{id}.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	drafts := api.Group("/drafts")
	{
		drafts.GET("", h.List)
		drafts.GET("/count", h.Count)
	}

	tasks := api.Group("/tasks")
	{
		tasks.POST("/:id/approve", mw.RateLimit(), h.Approve)
		tasks.POST("/:id/reject", mw.RateLimit(), h.Reject)
	}
}
