package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/financecrm/ai-service/internal/config"
	"github.com/financecrm/ai-service/internal/logger"
	"github.com/financecrm/ai-service/internal/server"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title AI Service
// @version 1.0.0
// @description AI Service for Finance CRM
// @BasePath /

func main() {
	if err := run(); err != nil {
		log.Printf("ai-service: %v", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup (logger flush, signal reset) always runs
func run() error {
	// Load .env (optional) and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to create server", zap.Error(err))
		return err
	}

	// Serve until SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		appLogger.Error("server stopped with error", zap.Error(err))
		return err
	}

	return nil
}
