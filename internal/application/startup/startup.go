// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pagesmith/pagesmith-go/internal/application/container"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/caching"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/database"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/email"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/observability/logging"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
	"github.com/pagesmith/pagesmith-go/internal/presentation/http/server"
	"github.com/pagesmith/pagesmith-go/pkg/config"
)

// Initialize performs the complete startup sequence and blocks until
// shutdown completes.
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	// Step 1: Channeled logging
	logger, err := logging.NewChanneledLogger(loggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("PageSmith starting")

	// No configured JWT secret means tokens cannot be verified, so mint an
	// ephemeral one. Sessions will not survive a restart.
	if config.JWTSecret == "" {
		secret, err := security.GenerateSecureKey(64)
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		config.JWTSecret = secret
		logger.Startup().Warn("JWT_SECRET not set, generated an ephemeral secret for this run")
	}

	// Step 2: Database connection and schema
	logger.Startup().Info("Connecting database...")
	db, err := database.New()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	creator := database.NewTableCreator()
	if err := creator.CreateSchema(db.Conn); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := creator.SeedInitialContent(db.Conn); err != nil {
		return fmt.Errorf("failed to seed initial content: %w", err)
	}
	logger.Startup().Info("Database ready", "turso", db.UseTurso)

	// Step 3: Cache manager with background cleanup
	cacheManager := caching.NewManager()
	stopCleanup := make(chan struct{})
	caching.StartCleanupRoutine(cacheManager, stopCleanup)
	logger.Startup().Info("Cache manager initialized")

	// Step 4: Email (optional)
	var mailer email.Service
	if config.ResendAPIKey != "" {
		mailer, err = email.NewService()
		if err != nil {
			logger.Startup().Warn("Email disabled", "error", err.Error())
			mailer = nil
		} else {
			logger.Startup().Info("Email notifications enabled")
		}
	}

	// Step 5: Dependency injection container
	appContainer := container.NewContainer(db, cacheManager, mailer, logger)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 6: HTTP server
	port := os.Getenv("PORT")
	if port == "" {
		port = config.Port
	}
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()
	close(stopCleanup)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// loggerConfig builds the channeled logger configuration from the LOG_* and
// VERBOSE_LOGGING environment knobs.
func loggerConfig() *logging.LoggerConfig {
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = config.LogToFile
	cfg.LogDirectory = config.LogDirectory
	cfg.JSONFormat = config.LogJSONFormat
	if config.VerboseLogging {
		cfg.DefaultLevel = slog.LevelDebug
	}
	return cfg
}
