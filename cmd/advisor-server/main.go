// cmd/advisor-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"career-advisor/internal/common/audit"
	"career-advisor/internal/common/config"
	"career-advisor/internal/common/database"
	"career-advisor/internal/common/llm"
	"career-advisor/internal/common/logger"
	"career-advisor/internal/common/observability"
	"career-advisor/internal/server"
	careeradvice "career-advisor/internal/services/career-advice"
	chatadvisor "career-advisor/internal/services/chat-advisor"
	"career-advisor/pkg/catalog"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog).With(map[string]interface{}{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
	})

	zapLog.Info("Starting career advisor...", zap.String("environment", cfg.App.Environment))

	obs := observability.New(cfg.Observability.ServiceName, cfg.Observability.TracingEnabled)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		obs.Shutdown(ctx)
	}()

	ctx := context.Background()
	var checks []server.ReadinessCheck

	// --- Recommendation cache (optional) ---
	var cache careeradvice.RecommendationCache
	if cfg.Database.Redis.Enabled() {
		var rdb *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(ctx, cfg.Database.Redis)
			return err
		}, 5, time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rdb.Close()

		cache = careeradvice.NewRedisCache(rdb.Client)
		checks = append(checks, rdb)
		zapLog.Info("Redis connected successfully", zap.String("address", cfg.Database.Redis.Address))
	}

	// --- Usage event log (optional) ---
	var recorder audit.Recorder = audit.NopRecorder{}
	if cfg.Database.Postgres.Enabled() {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(ctx, cfg.Database.Postgres)
			return err
		}, 10, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()

		pgRecorder := audit.NewPostgresRecorder(pg.DB)
		if err := pgRecorder.EnsureSchema(ctx); err != nil {
			zapLog.Fatal("usage event schema setup failed", zap.Error(err))
		}
		recorder = pgRecorder
		checks = append(checks, pg)
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Model client ---
	gen, err := llm.New(ctx, cfg.APIs.GenAI, log)
	if err != nil {
		zapLog.Fatal("model client init failed", zap.Error(err))
	}
	gen = llm.Instrument(gen, cfg.APIs.GenAI.Provider, obs, log)

	// --- Fallback catalog ---
	cat := catalog.Default()
	if path := cfg.Fallback.CatalogPath; path != "" {
		cat, err = catalog.Load(path)
		if err != nil {
			zapLog.Fatal("fallback catalog load failed", zap.String("path", path), zap.Error(err))
		}
		zapLog.Info("Loaded fallback catalog", zap.String("path", path), zap.String("version", cat.Version))
	}

	careerHandler := careeradvice.NewHandler(careeradvice.LoadConfig(cfg), gen, cache, cat, obs, log)
	chatHandler := chatadvisor.NewHandler(chatadvisor.LoadConfig(cfg), gen, obs, log)

	srv := server.New(cfg.Server, server.Deps{
		CareerAdvice: careerHandler,
		ChatAdvisor:  chatHandler,
		Recorder:     recorder,
		Checks:       checks,
	}, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		zapLog.Info("Shutdown signal received, draining requests...")
	case err := <-errCh:
		if err != nil {
			zapLog.Error("HTTP server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error during HTTP shutdown", zap.Error(err))
	}

	zapLog.Info("Career advisor stopped gracefully")
}
