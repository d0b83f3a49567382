package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reportcache "github.com/HafeezKhan-spec/AgriLiv-T5/internal/adapter/cache"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/adapter/client"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/adapter/http/router"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/service"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/infrastructure/cache"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/infrastructure/config"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/infrastructure/logger"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/registry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize Redis (optional, continue without the report cache)
	var reports *reportcache.ReportCache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("Failed to connect to Redis, continuing without report cache", zap.Error(err))
		redisClient = nil
	} else {
		log.Info("Connected to Redis")
		reports = reportcache.NewReportCache(redisClient, cfg.Cache.ReportTTL, log)
	}

	// Model runtime client and the lazy-loading registry
	runtime := client.NewRuntimeClient(cfg.Runtime.BaseURL, cfg.Runtime.Timeout)
	models := registry.New(
		visionLoader(runtime, &cfg.Runtime),
		generatorLoader(runtime, cfg, cfg.Runtime.ReportModel),
		generatorLoader(runtime, cfg, cfg.Runtime.AnswerModel),
	)

	// Setup router
	r := router.Setup(models, runtime, reports, cfg.Runtime.VisionModel, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		// Generation can run for minutes on CPU; the write timeout has
		// to outlast the runtime client timeout.
		WriteTimeout: cfg.Runtime.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}

// visionLoader loads the vision model on the runtime and wraps it in a
// classifier that owns decoding, preprocessing and softmax.
func visionLoader(runtime *client.RuntimeClient, cfg *config.RuntimeConfig) registry.VisionLoader {
	return func(ctx context.Context) (service.VisionClassifier, string, error) {
		loaded, err := runtime.LoadModel(ctx, cfg.VisionModel, cfg.Device)
		if err != nil {
			return nil, "", err
		}
		classifier := client.NewRuntimeClassifier(runtime, cfg.VisionModel, loaded.Labels, cfg.InputSize)
		return classifier, modelID(loaded), nil
	}
}

// generatorLoader builds a text generator for the given model. The
// gemini backend skips the runtime load entirely.
func generatorLoader(runtime *client.RuntimeClient, cfg *config.Config, model string) registry.GeneratorLoader {
	return func(ctx context.Context) (service.TextGenerator, string, error) {
		if cfg.Generation.Backend == "gemini" {
			gen, err := client.NewGeminiGenerator(cfg.Generation.GeminiAPIKey, cfg.Generation.GeminiModel)
			if err != nil {
				return nil, "", err
			}
			return gen, cfg.Generation.GeminiModel, nil
		}

		loaded, err := runtime.LoadModel(ctx, model, cfg.Runtime.Device)
		if err != nil {
			return nil, "", err
		}
		return client.NewRuntimeGenerator(runtime, model), modelID(loaded), nil
	}
}

func modelID(loaded *client.LoadModelResponse) string {
	if loaded.Version == "" {
		return loaded.Model
	}
	return loaded.Model + "@" + loaded.Version
}
