package router

import (
	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/handler"
)

func SetupWebSocketRoutes(e *echo.Echo, h *handler.WebSocketHandler) {
	e.GET("/ws", h.Connect)
}
