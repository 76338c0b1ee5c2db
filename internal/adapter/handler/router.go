package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speakwise-team/speakwise/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	audioHandler *Audio
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, audioHandler *Audio) *Router {
	return &Router{
		cfg:          cfg,
		audioHandler: audioHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAudioRoutes(v1)
}

// setupAudioRoutes configures audio analysis routes
func (rt *Router) setupAudioRoutes(g *echo.Group) {
	audioGroup := g.Group("/audio")

	audioGroup.POST("/input", rt.audioHandler.SubmitAudio)
	audioGroup.GET("/results/:id", rt.audioHandler.GetResults)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
