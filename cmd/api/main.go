package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	cacheAdapter "github.com/carolinadevia11/Bridge/internal/infrastructure/cache/adapter"
	cacheport "github.com/carolinadevia11/Bridge/internal/infrastructure/cache/port"
	"github.com/carolinadevia11/Bridge/internal/infrastructure/database"
	queueAdapter "github.com/carolinadevia11/Bridge/internal/infrastructure/queue/adapter"
	qport "github.com/carolinadevia11/Bridge/internal/infrastructure/queue/port"
	"github.com/carolinadevia11/Bridge/internal/infrastructure/realtime"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"

	v1 "github.com/carolinadevia11/Bridge/cmd/api/router/v1"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Connect to the database on startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Cache and queue are optional at startup: the API degrades to direct
	// reads and skipped notifications when Redis is unavailable.
	var cache cacheport.Cache
	if c, err := cacheAdapter.NewRedisAdapter(); err != nil {
		log.Printf("Warning: redis unavailable, family cache disabled: %v", err)
	} else {
		cache = c
		defer c.Close()
	}

	var queue qport.Client
	if q, err := queueAdapter.NewAsynqClientFromEnv(); err != nil {
		log.Printf("Warning: queue unavailable, message notifications disabled: %v", err)
	} else {
		queue = q
		defer q.Close()
	}

	tokens, err := token.NewManagerFromEnv()
	if err != nil {
		log.Fatalf("failed to configure token manager: %v", err)
	}

	hub := realtime.NewHub()

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	v1.RegisterRoutes(r, pool, cache, queue, hub, tokens)

	// Start HTTP server (blocks until shutdown)
	_ = r.Run()
}
