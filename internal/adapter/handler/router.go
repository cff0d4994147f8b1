package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetbrief-team/meetbrief/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	authHandler       *Auth
	roomHandler       *Room
	transcriptHandler *Transcript
	webhookHandler    *Webhook
	authMiddleware    echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	roomHandler *Room,
	transcriptHandler *Transcript,
	webhookHandler *Webhook,
	authMiddleware echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:               cfg,
		authHandler:       authHandler,
		roomHandler:       roomHandler,
		transcriptHandler: transcriptHandler,
		webhookHandler:    webhookHandler,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupRoomRoutes(v1)
	rt.setupTranscriptRoutes(v1)
	rt.setupWebhookRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.GET("/google/login", rt.authHandler.GoogleLogin)
	authGroup.GET("/google/callback", rt.authHandler.GoogleCallback)
	authGroup.GET("/me", rt.authHandler.Me, rt.authMiddleware)
}

// setupRoomRoutes configures room and token routes, all session-gated
func (rt *Router) setupRoomRoutes(g *echo.Group) {
	roomGroup := g.Group("/rooms", rt.authMiddleware)

	roomGroup.POST("", rt.roomHandler.Create)
	roomGroup.POST("/token", rt.roomHandler.IssueToken)
}

// setupTranscriptRoutes configures transcript read routes, all session-gated
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	transcriptGroup := g.Group("/transcripts", rt.authMiddleware)

	transcriptGroup.GET("", rt.transcriptHandler.List)
	transcriptGroup.GET("/:id", rt.transcriptHandler.Get)
	transcriptGroup.GET("/:id/entries", rt.transcriptHandler.Entries)
	transcriptGroup.GET("/:id/export", rt.transcriptHandler.Export)
}

// setupWebhookRoutes configures the platform event endpoint. No session: the
// sender is the video platform, not a user.
func (rt *Router) setupWebhookRoutes(g *echo.Group) {
	webhookGroup := g.Group("/webhooks")

	webhookGroup.POST("/daily", rt.webhookHandler.Handle)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
