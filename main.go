package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"smart-pantry-backend/cmd/config"
	migration "smart-pantry-backend/cmd/database/migrate"
	"smart-pantry-backend/internal/utils"
	"smart-pantry-backend/internal/utils/logging"
)

func main() {
	utils.LoadConfig()
	logging.Setup()

	db, err := config.ConnectDB()
	if err != nil {
		slog.Warn("database unreachable, starting in demo mode", "error", err)
		db = nil
	} else {
		if err := migration.Migrate(db); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	app, sched, err := config.NewApp(db)
	if err != nil {
		slog.Error("failed to set up application", "error", err)
		os.Exit(1)
	}

	sched.Start()

	// shut down on SIGINT/SIGTERM so the scheduler drains before the
	// listener closes
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		slog.Info("shutting down")
		sched.Stop()
		if err := app.Shutdown(); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
