package main

import (
	"context"
	"os"
	"time"

	"github.com/4k6ag/radio-station/backend/internal/config"
	"github.com/4k6ag/radio-station/backend/internal/database"
	"github.com/4k6ag/radio-station/backend/internal/repository"
	"github.com/4k6ag/radio-station/backend/internal/seed"
	"github.com/4k6ag/radio-station/backend/internal/service"
	"github.com/4k6ag/radio-station/backend/pkg/logger"
)

// seed ensures indexes and inserts starter content into empty collections,
// then exits. Running it against a populated database changes nothing.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 3, time.Second)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	collections := repository.NewMongoCollections(client.Database(cfg.MongoDB.Database))
	res, err := seed.Bootstrap(ctx, service.New(collections), collections)
	if err != nil {
		logger.Errorf("seed failed: %v", err)
		return
	}
	total := 0
	for _, n := range res {
		total += n
	}
	logger.Infof("seed complete: %d document(s) inserted into %q", total, cfg.MongoDB.Database)
}
