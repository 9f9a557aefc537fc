package telegram

import (
	"github.com/gin-gonic/gin"

	"chief-of-staff-api/internal/draft"
	pkgLog "chief-of-staff-api/pkg/log"
	pkgTelegram "chief-of-staff-api/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  draft.UseCase
	bot *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc draft.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
