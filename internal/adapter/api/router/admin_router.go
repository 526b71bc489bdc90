package router

import (
	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/handler"
	"shopsphere/internal/adapter/api/middleware"
	"shopsphere/internal/domain/entity"
)

func SetupAdminRoutes(g *echo.Group, h *handler.AdminHandler, authMw *middleware.AuthMiddleware) {
	admin := g.Group("/admin")

	// Open bootstrap route for creating the first admin.
	admin.POST("/register", h.Register)

	protected := admin.Group("",
		authMw.Authenticate, authMw.RequireRoles(entity.RoleAdmin))
	protected.GET("/sellers/pending", h.ListPendingSellers)
	protected.GET("/sellers", h.ListSellers)
	protected.PUT("/sellers/:id/approve", h.ApproveSeller)
	protected.PUT("/sellers/:id/reject", h.RejectSeller)
	protected.GET("/customers", h.ListCustomers)
	protected.DELETE("/users/:id", h.DeleteUser)
	protected.GET("/users/total-count", h.CountUsers)

	super := admin.Group("/admins",
		authMw.Authenticate, authMw.RequireRoles(entity.RoleSuperAdmin))
	super.GET("", h.ListAdmins)
	super.PUT("/:id/role", h.UpdateAdminRole)
	super.DELETE("/:id", h.DeleteAdmin)
}
