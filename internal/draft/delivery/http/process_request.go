package http

import (
	"github.com/gin-gonic/gin"
)

// processCountReq binds and validates the count query parameters.
func (h *handler) processCountReq(c *gin.Context) (countReq, error) {
	var req countReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRejectReq binds the optional reject body. The body may be absent
// or malformed; that is not an error, the reason just falls back to the
// default downstream.
func (h *handler) processRejectReq(c *gin.Context) rejectReq {
	var req rejectReq
	_ = c.ShouldBindJSON(&req)
	req.ID = c.Param("id")
	return req
}
