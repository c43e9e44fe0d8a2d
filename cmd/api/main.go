package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/usecase/calculator"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
		if cfg.Server.ReadTimeout < 5*time.Second || cfg.Server.WriteTimeout < 5*time.Second {
			log.Printf("Warning: server timeouts below 5s are too low for production")
		}
	}

	// Create logger
	appLogger, err := logger.NewZapLogger(logger.Options{
		Production:  cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:       cfg.Logger.Level,
		OutputPaths: []string{cfg.Logger.Output},
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Initialize use cases
	calc := calculator.NewCalculator(tp, appLogger)

	// Initialize API handlers
	timeHandler := handler.NewTimeHandler(calc, appLogger)
	durationHandler := handler.NewDurationHandler(calc, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, timeHandler, durationHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
