package router

import (
	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/handler"
)

func SetupHealthRoutes(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/health", h.Check)
}
