package router

import (
	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/handler"
	"shopsphere/internal/adapter/api/middleware"
)

type Handlers struct {
	Auth           *handler.AuthHandler
	Product        *handler.ProductHandler
	Chat           *handler.ChatHandler
	Admin          *handler.AdminHandler
	Recommendation *handler.RecommendationHandler
	WebSocket      *handler.WebSocketHandler
	Health         *handler.HealthHandler
}

// Setup mounts every route group on the echo instance.
func Setup(e *echo.Echo, h Handlers, authMw *middleware.AuthMiddleware) {
	SetupHealthRoutes(e, h.Health)
	SetupWebSocketRoutes(e, h.WebSocket)

	v1 := e.Group("/v1")
	SetupAuthRoutes(v1, h.Auth)
	SetupProductRoutes(v1, h.Product, authMw)
	SetupChatRoutes(v1, h.Chat, authMw)
	SetupAdminRoutes(v1, h.Admin, authMw)
	SetupRecommendationRoutes(v1, h.Recommendation, authMw)
}
