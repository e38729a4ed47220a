package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"suprss/config"
	"suprss/di"
	"suprss/driver/suprss_db"
	"suprss/driver/trigger_registry"
	"suprss/rest"
	"suprss/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := suprss_db.InitDBConnection(ctx, cfg)
	if err != nil {
		logger.Logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	registry, err := trigger_registry.NewRedisTriggerRegistry(cfg.Redis.URL)
	if err != nil {
		logger.Logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer registry.Close()

	container := di.NewApplicationComponents(pool, registry, cfg)

	container.Scheduler.Start(ctx)
	if cfg.Scheduler.RescheduleOnUp {
		scheduled, err := container.Scheduler.RestoreTriggers(ctx)
		if err != nil {
			logger.Logger.Error("trigger restore failed", "error", err)
		} else {
			logger.Logger.Info("triggers restored", "scheduled", scheduled)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("server shutdown failed", "error", err)
	}

	container.Scheduler.Shutdown()
	log.Info("shutdown complete")
}
