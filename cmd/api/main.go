package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/haiminhdev/meeting-brief/internal/adapter/handler"
	"github.com/haiminhdev/meeting-brief/internal/usecase/analysis"
	"github.com/haiminhdev/meeting-brief/internal/usecase/meeting"
	pkgai "github.com/haiminhdev/meeting-brief/pkg/ai"
	"github.com/haiminhdev/meeting-brief/pkg/asana"
	"github.com/haiminhdev/meeting-brief/pkg/config"
	"github.com/haiminhdev/meeting-brief/pkg/fireflies"
	pkgvalidator "github.com/haiminhdev/meeting-brief/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize external clients
	log.Println("🔧 Initializing dependencies...")
	firefliesClient := fireflies.NewClient(&cfg.Fireflies)
	asanaClient := asana.NewClient(&cfg.Asana)
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)

	// Initialize analysis pipeline
	log.Println("🤖 Initializing analysis pipeline...")
	pipeline := analysis.NewService(geminiClient, logger)

	// Select the routing strategy
	var router meeting.ProjectRouter
	switch cfg.Routing.Mode {
	case "classifier":
		log.Println("🧭 Routing mode: classifier")
		router = meeting.NewClassifierRouter(pipeline, asanaClient, cfg.Asana.DefaultProjectGID, logger)
	default:
		log.Println("🧭 Routing mode: fixed (default project)")
		router = meeting.FixedProjectRouter{ProjectGID: cfg.Asana.DefaultProjectGID}
	}

	// Initialize meeting orchestrator
	log.Println("📋 Initializing meeting service...")
	meetingService := meeting.NewService(firefliesClient, asanaClient, pipeline, router, logger)

	// Initialize webhook handler
	log.Println("🪝 Initializing webhook handler...")
	webhookHandler := handler.NewWebhookHandler(meetingService, cfg.Fireflies.WebhookSecret, logger)
	if cfg.Fireflies.WebhookSecret == "" {
		log.Println("⚠️  FIREFLIES_WEBHOOK_SECRET not set. Webhook verification will be skipped.")
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	rt := handler.NewRouter(cfg, webhookHandler)
	rt.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
