package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/carolinadevia11/Bridge/internal/infrastructure/database"
	queueAdapter "github.com/carolinadevia11/Bridge/internal/infrastructure/queue/adapter"
	"github.com/carolinadevia11/Bridge/internal/pkg/messaging/application/task"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(connectCtx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	srv, err := queueAdapter.NewAsynqServer()
	if err != nil {
		log.Fatalf("failed to configure queue server: %v", err)
	}

	task.RegisterNotifyMessageTask(srv, pool)

	log.Println("worker: consuming queues")
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
	log.Println("worker: shut down")
}
