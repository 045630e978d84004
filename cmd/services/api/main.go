package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cyclesight/cyclesight/internal/cache"
	"github.com/cyclesight/cyclesight/internal/config"
	"github.com/cyclesight/cyclesight/internal/logging"
	"github.com/cyclesight/cyclesight/internal/providers"
	"github.com/cyclesight/cyclesight/internal/router"
	"github.com/cyclesight/cyclesight/internal/utils"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
	BuildTime = "unknown" // Injected via ldflags during build
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)
	logger.Info("API service starting...",
		"version", Version, "commit", GitCommit, "build_time", BuildTime)

	// Series cache (Redis when enabled, no-op otherwise)
	seriesCache, err := cache.New(logger, cfg.Cache)
	if err != nil {
		logger.Fatal("Failed to initialize series cache", "error", err)
	}
	defer func() { _ = seriesCache.Close() }()
	if cfg.Cache.Enabled {
		logger.Info("Series cache enabled", "url", cfg.Cache.URL, "ttl", cfg.Cache.TTL.String())
	} else {
		logger.Info("Series cache disabled - every request hits the upstream provider")
	}

	// Upstream price provider
	provider := providers.NewChartClient(logger, cfg.Provider)
	logger.Info("Price provider configured", "base_url", cfg.Provider.BaseURL)

	// Log authentication status
	if cfg.Auth.Enabled {
		logger.Info("API key authentication enabled", "num_keys", len(cfg.Auth.APIKeys))
	} else {
		logger.Warn("API key authentication DISABLED - all requests will be allowed")
	}

	// Initialize router
	app := router.New(logger, provider, seriesCache, *cfg)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
		logger.Info("Server listening", "address", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
