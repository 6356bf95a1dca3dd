package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"foodgram-backend/internal/domains/recipe/job"
	"foodgram-backend/internal/shared"
	"foodgram-backend/pkg/container"
	"foodgram-backend/pkg/logger"
)

// The worker runs the background side of the recipe image pipeline:
// variant generation after upload, image cleanup after recipe
// deletion, and a periodic orphan sweep.
func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	ctx := context.Background()
	c, err := container.New(ctx)
	if err != nil {
		logger.Error("failed to initialize worker", err)
		os.Exit(1)
	}
	defer c.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			shared.QueueHigh:    6,
			shared.QueueDefault: 3,
			shared.QueueLow:     1,
		},
	})

	mux := asynq.NewServeMux()
	handlers := job.NewHandlers(c.ImageService, c.RecipeRepo, c.Storage)
	handlers.Register(mux)

	scheduler := asynq.NewScheduler(redisOpt, nil)
	// Sweep orphaned images nightly
	if _, err := scheduler.Register("0 3 * * *",
		asynq.NewTask(shared.TypeCleanupOrphanImages, nil),
		asynq.Queue(shared.QueueLow),
	); err != nil {
		logger.Error("failed to register cleanup schedule", err)
		os.Exit(1)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("scheduler stopped", err)
		}
	}()

	go func() {
		logger.Info("worker starting", map[string]interface{}{
			"concurrency": 10,
		})
		if err := srv.Run(mux); err != nil {
			logger.Error("worker failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker", nil)
	scheduler.Shutdown()
	srv.Shutdown()
	logger.Info("worker stopped", nil)
}
