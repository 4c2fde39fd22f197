package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumeforge/internal/api/routes"
	"resumeforge/internal/config"
	"resumeforge/internal/layout"
	"resumeforge/internal/logging"
	"resumeforge/internal/profile"
	"resumeforge/internal/renderer"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting Resumeforge")

	// Initialize profile store
	store := profile.NewStore(cfg.Profiles.Dir)
	if !store.Available() {
		logger.Warn("Profile records directory not found", map[string]interface{}{
			"dir": cfg.Profiles.Dir,
		})
	}

	// Initialize layout registry; a broken default layout is fatal
	registry, err := layout.NewRegistry(cfg.Templates.Default)
	if err != nil {
		logger.Fatal("Failed to initialize layout registry", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize rasterizer
	rast, err := renderer.New(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize rasterizer", map[string]interface{}{
			"error": err.Error(),
		})
	}
	logger.Info("Rasterizer configured", map[string]interface{}{
		"engine": rast.Name(),
	})

	// Initialize Echo
	e := echo.New()

	// Setup routes
	routes.SetupRoutes(e, cfg, store, registry, rast)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		if err := logging.CloseLogging(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing logging: %v\n", err)
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("address", address).Info("Server starting")

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
