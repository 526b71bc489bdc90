package router

import (
	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/handler"
	"shopsphere/internal/adapter/api/middleware"
	"shopsphere/internal/domain/entity"
)

func SetupChatRoutes(g *echo.Group, h *handler.ChatHandler, authMw *middleware.AuthMiddleware) {
	chat := g.Group("/chat",
		authMw.Authenticate, authMw.RequireRoles(entity.RoleBuyer, entity.RoleSeller))

	chat.POST("/initiate", h.Initiate)
	chat.GET("/list", h.List)
	chat.GET("/messages/:chatId", h.Messages)
	chat.POST("/:chatId/mark-read", h.MarkRead)
}
