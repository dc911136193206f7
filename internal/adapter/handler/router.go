package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/convo-coach/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg     *config.Config
	console *Console
	hub     *Hub
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, console *Console, hub *Hub) *Router {
	return &Router{
		cfg:     cfg,
		console: console,
		hub:     hub,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupConsoleRoutes(v1)
	if rt.hub != nil {
		v1.GET("/ws", rt.hub.ServeWS)
	}
}

// setupConsoleRoutes configures report and replay routes
func (rt *Router) setupConsoleRoutes(g *echo.Group) {
	g.GET("/session", rt.console.Session)
	g.GET("/report", rt.console.Report)

	actions := g.Group("/actions")
	actions.GET("", rt.console.Actions)
	actions.POST("/:index/replay", rt.console.Replay)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := ""
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
