package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chief-of-staff-api/config"
	draftHTTP "chief-of-staff-api/internal/draft/delivery/http"
	tgDelivery "chief-of-staff-api/internal/draft/delivery/telegram"
	followupHTTP "chief-of-staff-api/internal/followup/delivery/http"
	notificationHTTP "chief-of-staff-api/internal/notification/delivery/http"
	"chief-of-staff-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Draft domain
	draftHandler draftHTTP.Handler

	// Follow-up domain
	followUpHandler followupHTTP.Handler

	// Push notifications
	notificationHandler notificationHTTP.Handler

	// Telegram approvals
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	DraftHandler        draftHTTP.Handler
	FollowUpHandler     followupHTTP.Handler
	NotificationHandler notificationHTTP.Handler
	TelegramHandler     tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		rateLimit:           cfg.RateLimit,
		draftHandler:        cfg.DraftHandler,
		followUpHandler:     cfg.FollowUpHandler,
		notificationHandler: cfg.NotificationHandler,
		telegramHandler:     cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.draftHandler == nil {
		return errors.New("draft handler is required")
	}
	if srv.followUpHandler == nil {
		return errors.New("follow-up handler is required")
	}
	if srv.notificationHandler == nil {
		return errors.New("notification handler is required")
	}
	return nil
}
