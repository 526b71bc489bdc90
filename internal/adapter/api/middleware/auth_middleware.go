package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"shopsphere/internal/domain/entity"
	"shopsphere/internal/infrastructure/auth"
	"shopsphere/pkg/errors"
	"shopsphere/pkg/response"
)

const (
	ContextUserID = "uid"
	ContextRole   = "role"
)

type AuthMiddleware struct {
	tokens *auth.JWTManager
}

func NewAuthMiddleware(tokens *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate requires a bearer token and stashes the caller's identity in
// the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return response.Error(c, errors.Unauthorized("Not authorized, no token", nil))
		}

		claims, err := m.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return response.Error(c, err)
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		return next(c)
	}
}

// RequireRoles allows only the listed roles through. An empty list admits any
// authenticated caller. A superadmin satisfies an admin requirement.
func (m *AuthMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(roles) == 0 {
				return next(c)
			}

			role := GetRole(c)
			for _, allowed := range roles {
				if role == allowed || (allowed == entity.RoleAdmin && role == entity.RoleSuperAdmin) {
					return next(c)
				}
			}
			return response.Error(c, errors.Forbidden("You do not have permission to access this resource", nil))
		}
	}
}

func GetUserID(c echo.Context) string {
	if uid, ok := c.Get(ContextUserID).(string); ok {
		return uid
	}
	return ""
}

func GetRole(c echo.Context) entity.Role {
	if role, ok := c.Get(ContextRole).(entity.Role); ok {
		return role
	}
	return ""
}
