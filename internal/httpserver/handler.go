package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	draftHTTP "chief-of-staff-api/internal/draft/delivery/http"
	followupHTTP "chief-of-staff-api/internal/followup/delivery/http"
	"chief-of-staff-api/internal/middleware"
	notificationHTTP "chief-of-staff-api/internal/notification/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l, srv.rateLimit)
	srv.gin.Use(mw.RequestLog())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimit)
	api := srv.gin.Group("/api")

	draftHTTP.RegisterRoutes(api, srv.draftHandler, mw)
	srv.l.Infof(ctx, "Draft domain registered")

	followupHTTP.RegisterRoutes(api, srv.followUpHandler, mw)
	srv.l.Infof(ctx, "Follow-up domain registered")

	notificationHTTP.RegisterRoutes(api, srv.notificationHandler, mw)
	srv.l.Infof(ctx, "Notification domain registered")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", mw.RateLimit(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}
