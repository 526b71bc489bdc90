package router

import (
	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/handler"
	"shopsphere/internal/adapter/api/middleware"
	"shopsphere/internal/domain/entity"
)

func SetupProductRoutes(g *echo.Group, h *handler.ProductHandler, authMw *middleware.AuthMiddleware) {
	products := g.Group("/products")

	// Catalog reads are public.
	products.GET("", h.List)
	products.GET("/:id", h.Get)

	products.POST("", h.Create,
		authMw.Authenticate, authMw.RequireRoles(entity.RoleSeller))
	products.GET("/seller/:sellerId", h.ListBySeller,
		authMw.Authenticate, authMw.RequireRoles(entity.RoleSeller, entity.RoleAdmin))
	products.PUT("/:id", h.Update,
		authMw.Authenticate, authMw.RequireRoles(entity.RoleSeller, entity.RoleAdmin))
	products.DELETE("/:id", h.Delete,
		authMw.Authenticate, authMw.RequireRoles(entity.RoleSeller, entity.RoleAdmin))
}
