package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chief-of-staff-api/internal/middleware"
	"chief-of-staff-api/internal/notification"
	"chief-of-staff-api/pkg/log"
	"chief-of-staff-api/pkg/response"
)

// Handler is the public interface for the notification HTTP delivery layer.
type Handler interface {
	Subscribe(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// New creates a new HTTP handler for the notification domain.
func New(l log.Logger, uc notification.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps the notification routes.
func RegisterRoutes(api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	notifications := api.Group("/notifications")
	{
		notifications.POST("/subscribe", mw.RateLimit(), h.Subscribe)
	}
}

// subscribeReq matches the browser PushSubscription JSON plus a device label.
type subscribeReq struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth"   binding:"required"`
	} `json:"keys" binding:"required"`
	DeviceName string `json:"device_name"`
}

// Subscribe godoc
// @Summary     Register a push subscription
// @Description Registers a device endpoint for notifications; re-subscribing refreshes keys.
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body body subscribeReq true "Push subscription"
// @Success     200 {object} map[string]any
// @Failure     400 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /api/notifications/subscribe [POST]
func (h *handler) Subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "endpoint and keys are required")
		return
	}

	output, err := h.uc.Subscribe(ctx, notification.SubscribeInput{
		Endpoint:   req.Endpoint,
		P256dh:     req.Keys.P256dh,
		Auth:       req.Keys.Auth,
		DeviceName: req.DeviceName,
	})
	if err != nil {
		if errors.Is(err, notification.ErrInvalidSubscription) {
			response.BadRequest(c, err.Error())
			return
		}
		h.l.Errorf(ctx, "uc.Subscribe: %v", err)
		response.InternalError(c, "Failed to register subscription", nil)
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"id":      output.Subscription.ID,
		"message": "Device registered for notifications",
	})
}
