package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lizet96/financial-data-backend/config"
	"github.com/lizet96/financial-data-backend/database"
	"github.com/lizet96/financial-data-backend/logger"
	"github.com/lizet96/financial-data-backend/middleware"
	"github.com/lizet96/financial-data-backend/provider"
	"github.com/lizet96/financial-data-backend/report"
	"github.com/lizet96/financial-data-backend/routes"
)

func main() {
	// Cargar configuración (.env + variables de entorno)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Conectar a la base de datos solo si está configurada
	var logStore middleware.LogStore
	if cfg.Database.Enabled() {
		pool, err := database.Connect(ctx, cfg.Database.URL, zlog)
		if err != nil {
			zlog.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()

		repo := database.NewRequestLogRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			zlog.Fatal("database schema setup failed", zap.Error(err))
		}
		logStore = repo
	} else {
		zlog.Info("DATABASE_URL not set, request logging to database disabled")
	}

	client := provider.NewClient(cfg.Upstream.APIKey,
		provider.WithBaseURL(cfg.Upstream.BaseURL),
		provider.WithTicker(cfg.Upstream.Ticker),
		provider.WithPeriod(cfg.Upstream.Period),
		provider.WithTimeout(cfg.Upstream.Timeout),
		provider.WithRateLimit(cfg.Upstream.RateLimit),
		provider.WithLogger(zlog.Named("provider")),
	)

	app := routes.NewApp(routes.Dependencies{
		Config:   cfg,
		Logger:   zlog,
		Service:  report.NewService(client, zlog.Named("report")),
		LogStore: logStore,
	})

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("allowed_origin", cfg.Server.AllowedOrigin),
		zap.String("upstream", client.Endpoint()))

	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
