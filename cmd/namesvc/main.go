package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"prodnames/internal/api"
	"prodnames/internal/catalog"
	"prodnames/internal/config"
	"prodnames/internal/logging"
	"prodnames/internal/naming"
	"prodnames/internal/observability"
	"prodnames/internal/shopify"
)

func main() {
	cfg := config.Load()

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Invalid logging configuration: %v", err)
	}

	if cfg.MetricsPort != "" {
		observability.Start(cfg.MetricsPort)
	}

	pool := naming.DefaultPool()
	svc := &catalog.Service{
		Catalog: shopify.NewClient(cfg),
		Pool:    pool,
	}

	e := api.New(api.Config{
		Debug:        cfg.LogLevel == "debug",
		AllowOrigins: cfg.AllowOrigins,
		Status: api.StatusInfo{
			ShopifyConfigured: cfg.ShopifyConfigured(),
			Store:             cfg.ShopifyStore,
			APIVersion:        cfg.ShopifyAPIVersion,
		},
	}, svc, naming.NewGenerator(pool))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(log.Fields{
			"port":               cfg.Port,
			"shopify_configured": cfg.ShopifyConfigured(),
			"candidates":         pool.Len(),
		}).Info("product name service listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	log.Info("product name service stopped")
}
