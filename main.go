package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/4k6ag/radio-station/backend/handlers"
	"github.com/4k6ag/radio-station/backend/internal/config"
	"github.com/4k6ag/radio-station/backend/internal/database"
	"github.com/4k6ag/radio-station/backend/internal/repository"
	"github.com/4k6ag/radio-station/backend/internal/seed"
	"github.com/4k6ag/radio-station/backend/internal/service"
	"github.com/4k6ag/radio-station/backend/internal/storage"
	"github.com/4k6ag/radio-station/backend/pkg/logger"
	"github.com/4k6ag/radio-station/backend/pkg/metrics"
	"github.com/4k6ag/radio-station/backend/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL is read again from config below; this covers config errors
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v seed=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "", cfg.Seed.OnStartup)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// document store: Mongo when configured, otherwise in-memory for local development
	var collections *repository.Collections
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, time.Second)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		collections = repository.NewMongoCollections(client.Database(cfg.MongoDB.Database))
		logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
	} else {
		logger.Warnf("MONGODB_URI not set: using in-memory store, data is lost on restart")
		collections = repository.NewMemoryCollections()
	}
	svc := service.New(collections)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	// indexes and starter content must exist before the first request
	if cfg.Seed.OnStartup {
		res, err := seed.Bootstrap(ctx, svc, collections)
		if err != nil {
			logger.Fatalf("database initialization failed: %v", err)
		}
		logger.Infof("database initialized successfully: %v", res)
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.CORS(), middleware.RequestMetrics())

	var opts []handlers.Option
	if cfg.RateLimit.Enabled {
		opts = append(opts, handlers.WithWriteLimiter(writeLimiter(ctx, cfg)))
	}
	if cfg.MinIO.Endpoint != "" {
		images, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("image uploads disabled: %v", err)
		} else {
			opts = append(opts, handlers.WithImageStore(images))
		}
	}

	handlers.NewSiteHandler(svc, opts...).Register(r.Group("/api"))
	handlers.RegisterHealth(r, svc, startTime)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("starting radio station API on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown: %v", err)
	}
}

// writeLimiter picks the Redis-backed limiter when Redis is configured and
// reachable, the in-memory one otherwise.
func writeLimiter(ctx context.Context, cfg *config.Config) gin.HandlerFunc {
	if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		err := client.Ping(ctx).Err()
		if err == nil {
			logger.Infof("rate limiter: redis %s:%s", cfg.Redis.Host, cfg.Redis.Port)
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			return middleware.RedisRateLimitMiddleware(client, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		}
		logger.Warnf("failed to connect to Redis (%s:%s), falling back to in-memory limiter: %v", cfg.Redis.Host, cfg.Redis.Port, err)
		_ = client.Close()
	}
	return middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}
