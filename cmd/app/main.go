package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procurement/cmd"
	"procurement/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	gormDB, err := postgres.Open(config.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(config, gormDB, logger)

	router, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWebServer(ctx, router, config.HTTPPort, logger)
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
		return
	}
	logger.Info("HTTP server stopped")
}
