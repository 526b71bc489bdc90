package router

import (
	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/handler"
)

func SetupAuthRoutes(g *echo.Group, h *handler.AuthHandler) {
	auth := g.Group("/auth")
	auth.POST("/register", h.RegisterBuyer)
	auth.POST("/seller/register", h.RegisterSeller)
	auth.POST("/login", h.Login)
}
