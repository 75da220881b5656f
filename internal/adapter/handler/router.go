package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haiminhdev/meeting-brief/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	webhookHandler *WebhookHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, webhookHandler *WebhookHandler) *Router {
	return &Router{
		cfg:            cfg,
		webhookHandler: webhookHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	rt.setupWebhookRoutes(v1)
}

// setupWebhookRoutes configures webhook routes
func (rt *Router) setupWebhookRoutes(g *echo.Group) {
	webhookGroup := g.Group("/webhooks")
	webhookGroup.POST("/fireflies", rt.webhookHandler.HandleFirefliesWebhook)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
