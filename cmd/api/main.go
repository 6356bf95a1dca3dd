package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"foodgram-backend/pkg/container"
	"foodgram-backend/pkg/logger"
)

func main() {
	// .env is optional, real deployments use the environment
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	ctx := context.Background()
	c, err := container.New(ctx)
	if err != nil {
		logger.Error("failed to initialize application", err)
		os.Exit(1)
	}
	defer c.Close()

	router := setupRouter(c)

	srv := &http.Server{
		Addr:    ":" + c.Config.App.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", map[string]interface{}{
			"port":        c.Config.App.Port,
			"environment": c.Config.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", err)
	}

	logger.Info("server stopped", nil)
}
