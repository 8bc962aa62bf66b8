package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bookingform/config"
	"bookingform/internal/bootstrap"
	"bookingform/internal/catalog"
	"bookingform/internal/metrics"
	formsvc "bookingform/internal/service/form"
	"bookingform/internal/session"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var store session.Store
	if cfg.Redis.Addr != "" {
		store = session.NewRedisStore(cfg.Redis, sessionTTL)
		logger.Info("using redis session store", zap.String("addr", cfg.Redis.Addr))
	} else {
		memStore := session.NewMemoryStore(sessionTTL)
		memStore.StartJanitor(ctx, time.Duration(cfg.Session.SweepMinutes)*time.Minute, logger)
		store = memStore
		logger.Info("using in-memory session store")
	}

	formMetrics := metrics.NewFormMetrics(nil)
	service := formsvc.NewService(store, cat,
		formsvc.WithMetrics(formMetrics),
		formsvc.WithLogger(logger),
	)

	if err := bootstrap.Run(ctx, cfg, logger, service, cat); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
