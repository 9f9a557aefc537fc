package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"chief-of-staff-api/internal/draft"
	"chief-of-staff-api/internal/model"
	pkgResponse "chief-of-staff-api/pkg/response"
	pkgTelegram "chief-of-staff-api/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the callback in a
// background goroutine: Telegram expects an answer within a few seconds
// and retries otherwise, which would double-fire transitions.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.BadRequest(c, "malformed update")
		return
	}

	// Only inline button presses drive queue transitions; plain messages
	// get a short usage hint.
	if update.CallbackQuery == nil {
		if update.Message != nil && update.Message.Chat != nil {
			go h.replyUsage(update.Message.Chat.ID)
		}
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot before spawning the goroutine to avoid races on gin context.
	cb := update.CallbackQuery

	go func() {
		bgCtx := context.Background()
		if err := h.processCallback(bgCtx, cb); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processCallback failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processCallback executes an approve:<id> or reject:<id> button press.
func (h *handler) processCallback(ctx context.Context, cb *pkgTelegram.CallbackQuery) error {
	kind, taskID, ok := strings.Cut(cb.Data, ":")
	if !ok || taskID == "" {
		return h.bot.AnswerCallbackQuery(cb.ID, "Unrecognized action")
	}

	sc := model.Scope{}
	if cb.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", cb.From.ID)
		sc.Username = cb.From.Username
	}

	var (
		confirmation string
		err          error
	)
	switch kind {
	case "approve":
		var out draft.ApproveOutput
		out, err = h.uc.Approve(ctx, sc, taskID)
		if err == nil {
			confirmation = fmt.Sprintf("✅ Approved %s", out.File)
		}
	case "reject":
		var out draft.RejectOutput
		out, err = h.uc.Reject(ctx, sc, draft.RejectInput{ID: taskID, Reason: "Rejected via Telegram"})
		if err == nil {
			confirmation = fmt.Sprintf("❌ Rejected %s", out.File)
		}
	default:
		return h.bot.AnswerCallbackQuery(cb.ID, "Unrecognized action")
	}

	if err != nil {
		return h.bot.AnswerCallbackQuery(cb.ID, callbackError(err))
	}

	if ackErr := h.bot.AnswerCallbackQuery(cb.ID, confirmation); ackErr != nil {
		h.l.Warnf(ctx, "telegram handler: failed to answer callback: %v", ackErr)
	}

	// Follow up in the chat so the outcome survives the toast.
	if cb.Message != nil && cb.Message.Chat != nil {
		if sendErr := h.bot.SendMessage(cb.Message.Chat.ID, confirmation); sendErr != nil {
			h.l.Warnf(ctx, "telegram handler: failed to send confirmation: %v", sendErr)
		}
	}

	return nil
}

func (h *handler) replyUsage(chatID int64) {
	_ = h.bot.SendMessageWithMode(chatID,
		"I announce drafts awaiting your review. Use the *Approve* / *Reject* buttons on those messages, or the dashboard.",
		"Markdown",
	)
}

// callbackError maps domain errors to a short toast-sized message.
func callbackError(err error) string {
	switch {
	case errors.Is(err, draft.ErrDraftNotFound):
		return "Task is no longer pending"
	case errors.Is(err, draft.ErrLocked):
		return "Task is being processed, try again"
	case errors.Is(err, draft.ErrInvalidID):
		return "Invalid task identifier"
	default:
		return "Action failed, try again later"
	}
}
