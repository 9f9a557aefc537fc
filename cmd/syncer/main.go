package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chief-of-staff-api/config"
	"chief-of-staff-api/internal/store"
	"chief-of-staff-api/internal/syncqueue"
	"chief-of-staff-api/pkg/log"
)

// syncer manages the offline action queue. Run without arguments it
// drains the queue against the live API, replaying queued approvals
// and rejections once connectivity returns. Run as
//
//	syncer enqueue <approve|reject> <task-id> [reason...]
//
// it records an action for later replay, which is how a companion
// agent keeps working while the API is unreachable.
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

	// 3. Store
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open store: %v", err)
		return
	}
	defer db.Close()

	queue := syncqueue.NewQueue(db, logger)

	// 4. Enqueue mode
	if len(os.Args) > 1 && os.Args[1] == "enqueue" {
		if err := runEnqueue(ctx, queue, os.Args[2:]); err != nil {
			logger.Errorf(ctx, "Failed to enqueue action: %v", err)
			os.Exit(1)
		}
		return
	}

	// 5. Drain loop
	logger.Info(ctx, "Starting sync queue drainer...")
	logger.Infof(ctx, "API base URL: %s", cfg.Sync.APIBaseURL)

	drainer := syncqueue.NewDrainer(queue, logger, cfg.Sync.APIBaseURL, cfg.Sync.HTTPTimeout)
	drainer.Run(ctx, cfg.Sync.DrainInterval)

	logger.Info(ctx, "Sync queue drainer stopped gracefully")
}
