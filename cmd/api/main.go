package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chief-of-staff-api/config"
	draftHTTP "chief-of-staff-api/internal/draft/delivery/http"
	tgDelivery "chief-of-staff-api/internal/draft/delivery/telegram"
	"chief-of-staff-api/internal/draft/repository/vaultfs"
	draftUC "chief-of-staff-api/internal/draft/usecase"
	followupHTTP "chief-of-staff-api/internal/followup/delivery/http"
	followupRepo "chief-of-staff-api/internal/followup/repository/sqlite"
	followupUC "chief-of-staff-api/internal/followup/usecase"
	"chief-of-staff-api/internal/httpserver"
	"chief-of-staff-api/internal/notification"
	notificationHTTP "chief-of-staff-api/internal/notification/delivery/http"
	notificationRepo "chief-of-staff-api/internal/notification/repository/sqlite"
	notificationUC "chief-of-staff-api/internal/notification/usecase"
	"chief-of-staff-api/internal/store"
	"chief-of-staff-api/internal/vault"
	"chief-of-staff-api/internal/watcher"
	"chief-of-staff-api/pkg/log"
	"chief-of-staff-api/pkg/telegram"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chief of Staff API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Vault root: %s", cfg.Vault.Root)

	// 3. Store
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open store: %v", err)
		return
	}
	defer db.Close()

	// 4. Draft domain
	layout := vault.NewLayout(cfg.Vault.Root)
	draftQueue := vaultfs.New(layout, logger)
	duc := draftUC.New(draftQueue, logger)
	draftHandler := draftHTTP.New(logger, duc)

	// 5. Follow-up domain
	fuc := followupUC.New(followupRepo.New(db, logger), logger)
	followUpHandler := followupHTTP.New(logger, fuc)

	// 6. Push notifications
	subscriptions := notificationRepo.New(db, logger)
	nuc := notificationUC.New(subscriptions, logger)
	notificationHandler := notificationHTTP.New(logger, nuc)

	senders := []notification.Sender{notification.NewLogSender(logger)}

	// 7. Telegram approvals (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, duc, bot)

		if cfg.Telegram.ChatID != 0 {
			senders = append(senders, notification.NewTelegramSender(bot, cfg.Telegram.ChatID))
		}

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}

		logger.Info(ctx, "Telegram approvals initialized")
	} else {
		logger.Warn(ctx, "Telegram approvals skipped: APP_TELEGRAM_BOT_TOKEN is missing")
	}

	dispatcher := notification.NewDispatcher(logger, senders...)

	// 8. Drafts watcher
	if cfg.Notifier.Enabled {
		w := watcher.New(duc, dispatcher, db, logger, watcher.Config{
			Layout:       layout,
			PollInterval: cfg.Notifier.PollInterval,
			Debounce:     cfg.Notifier.Debounce,
		})
		go w.Run(ctx)
		logger.Info(ctx, "Drafts watcher started")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		RateLimit:           cfg.RateLimit,
		DraftHandler:        draftHandler,
		FollowUpHandler:     followUpHandler,
		NotificationHandler: notificationHandler,
		TelegramHandler:     telegramHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
