package router

import (
	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/handler"
	"shopsphere/internal/adapter/api/middleware"
	"shopsphere/internal/domain/entity"
)

func SetupRecommendationRoutes(g *echo.Group, h *handler.RecommendationHandler, authMw *middleware.AuthMiddleware) {
	recommendations := g.Group("/recommendations",
		authMw.Authenticate, authMw.RequireRoles(entity.RoleBuyer))

	recommendations.POST("/product", h.RecommendProduct)
}
